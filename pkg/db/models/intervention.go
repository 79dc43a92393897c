package models

import (
	"time"

	"github.com/google/uuid"
)

// Intervention is a scheduled or completed on-site job.
type Intervention struct {
	ID           uuid.UUID  `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Date         string     `gorm:"column:date;size:10;index;not null" json:"date"`
	Site         *string    `gorm:"column:site;size:64" json:"site,omitempty"`
	TechnicianID *uuid.UUID `gorm:"column:technician_id;type:uuid;index" json:"technician_id,omitempty"`
	Client       string     `gorm:"column:client;size:255;not null" json:"client"`
	Description  *string    `gorm:"column:description;type:text" json:"description,omitempty"`
	Done         bool       `gorm:"column:done;not null;default:false" json:"done"`
	CreatedAt    time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time  `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

// TableName overrides the default pluralization.
func (Intervention) TableName() string {
	return "interventions"
}
