package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/ainnoce10/ebf-backend/pkg/enums"
)

// User is an authenticated operator of the dashboard.
type User struct {
	ID           uuid.UUID  `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Email        string     `gorm:"column:email;size:255;uniqueIndex;not null" json:"email"`
	PasswordHash string     `gorm:"column:password_hash;size:255;not null" json:"-"`
	FullName     string     `gorm:"column:full_name;size:255;not null" json:"full_name"`
	Role         enums.Role `gorm:"column:role;size:32;not null" json:"role"`
	CreatedAt    time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time  `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

// TableName overrides the default pluralization.
func (User) TableName() string {
	return "users"
}
