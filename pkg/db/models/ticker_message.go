package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/ainnoce10/ebf-backend/pkg/enums"
)

// TickerMessage is a short severity-tagged notice scrolled on the dashboard.
type TickerMessage struct {
	ID        uuid.UUID            `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Text      string               `gorm:"column:text;size:512;not null" json:"text"`
	Severity  enums.TickerSeverity `gorm:"column:severity;size:16;not null;default:'info'" json:"severity"`
	CreatedAt time.Time            `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time            `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

// TableName overrides the default pluralization.
func (TickerMessage) TableName() string {
	return "ticker_messages"
}
