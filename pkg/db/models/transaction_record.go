package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ainnoce10/ebf-backend/pkg/enums"
)

// TransactionRecord is an accounting entry tagged as income or expense.
type TransactionRecord struct {
	ID        uuid.UUID             `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Date      string                `gorm:"column:date;size:10;index;not null" json:"date"`
	Site      *string               `gorm:"column:site;size:64" json:"site,omitempty"`
	Type      enums.TransactionType `gorm:"column:type;size:16;not null" json:"type"`
	Label     string                `gorm:"column:label;size:255;not null" json:"label"`
	Amount    decimal.Decimal       `gorm:"column:amount;type:decimal(20,4);not null" json:"amount"`
	CreatedAt time.Time             `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time             `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

// TableName overrides the default pluralization.
func (TransactionRecord) TableName() string {
	return "transaction_records"
}
