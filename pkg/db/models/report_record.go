package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ReportRecord is a technician's dated account of work.
//
// Date is stored as an ISO YYYY-MM-DD string: the aggregator orders rows by
// lexical comparison and the period classifier parses the same format, so a
// single textual representation travels end to end. Site, revenue and
// expenses are optional; missing values fall into the "Global" bucket and
// zero amounts respectively.
type ReportRecord struct {
	ID           uuid.UUID        `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Date         string           `gorm:"column:date;size:10;index;not null" json:"date"`
	Site         *string          `gorm:"column:site;size:64" json:"site,omitempty"`
	TechnicianID *uuid.UUID       `gorm:"column:technician_id;type:uuid;index" json:"technician_id,omitempty"`
	Content      string           `gorm:"column:content;type:text;not null" json:"content"`
	Revenue      *decimal.Decimal `gorm:"column:revenue;type:decimal(20,4)" json:"revenue,omitempty"`
	Expenses     *decimal.Decimal `gorm:"column:expenses;type:decimal(20,4)" json:"expenses,omitempty"`
	CreatedAt    time.Time        `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time        `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

// TableName overrides the default pluralization.
func (ReportRecord) TableName() string {
	return "report_records"
}
