package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// Entry is one customer-day of recorded meal quantities.
type Entry struct {
	ID         snowflake.ID `gorm:"primaryKey" json:"id"`
	CustomerID snowflake.ID `gorm:"not null;uniqueIndex:ux_meal_entry_day,priority:1" json:"customer_id"`
	Date       string       `gorm:"not null;uniqueIndex:ux_meal_entry_day,priority:2" json:"date"`
	Breakfast  int          `gorm:"not null;default:0" json:"breakfast"`
	Lunch      int          `gorm:"not null;default:0" json:"lunch"`
	Dinner     int          `gorm:"not null;default:0" json:"dinner"`
	CreatedAt  time.Time    `gorm:"not null" json:"created_at"`
	UpdatedAt  time.Time    `gorm:"not null" json:"updated_at"`
}

// TableName sets the database table name.
func (Entry) TableName() string { return "meal_entries" }
