package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// Customer is a subscriber whose meals are tracked and billed.
type Customer struct {
	ID              snowflake.ID `gorm:"primaryKey" json:"id"`
	Name            string       `gorm:"not null" json:"name"`
	Email           string       `gorm:"index" json:"email,omitempty"`
	BillingStartDay int          `gorm:"not null;default:1" json:"billing_start_day"`
	PhoneNumber     string       `json:"phone_number,omitempty"`
	PhoneVerified   bool         `gorm:"not null;default:false" json:"phone_verified"`
	CreatedAt       time.Time    `gorm:"not null" json:"created_at"`
	UpdatedAt       time.Time    `gorm:"not null" json:"updated_at"`
}

// TableName sets the database table name.
func (Customer) TableName() string { return "customers" }
