package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/datatypes"
)

// InvoiceStatus tracks an invoice through its delivery lifecycle.
type InvoiceStatus string

const (
	InvoiceStatusDraft InvoiceStatus = "DRAFT"
	InvoiceStatusSent  InvoiceStatus = "SENT"
)

// Invoice is a generated bill for one customer and cycle, including the
// rendered document bytes and the message that accompanies it.
type Invoice struct {
	ID          snowflake.ID      `gorm:"primaryKey" json:"id"`
	CustomerID  snowflake.ID      `gorm:"not null;index" json:"customer_id"`
	Number      string            `gorm:"not null;uniqueIndex" json:"number"`
	PeriodStart time.Time         `gorm:"not null" json:"period_start"`
	PeriodEnd   time.Time         `gorm:"not null" json:"period_end"`
	TotalPaise  int64             `gorm:"not null" json:"total_paise"`
	Status      InvoiceStatus     `gorm:"type:text;not null;default:'DRAFT'" json:"status"`
	Document    []byte            `gorm:"type:blob" json:"-"`
	MessageText string            `gorm:"type:text" json:"message_text"`
	SentAt      *time.Time        `json:"sent_at,omitempty"`
	Metadata    datatypes.JSONMap `gorm:"type:json" json:"metadata,omitempty"`
	CreatedAt   time.Time         `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time         `gorm:"not null" json:"updated_at"`
}

// TableName sets the database table name.
func (Invoice) TableName() string { return "invoices" }
