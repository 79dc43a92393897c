package models

import (
	"time"

	"github.com/google/uuid"
)

// Technician is a field worker attached to a site.
type Technician struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	FullName  string    `gorm:"column:full_name;size:255;not null" json:"full_name"`
	Phone     *string   `gorm:"column:phone;size:32" json:"phone,omitempty"`
	Site      *string   `gorm:"column:site;size:64" json:"site,omitempty"`
	Specialty *string   `gorm:"column:specialty;size:128" json:"specialty,omitempty"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

// TableName overrides the default pluralization.
func (Technician) TableName() string {
	return "technicians"
}
