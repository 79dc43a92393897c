package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is a catalog item sold through the boutique.
type Product struct {
	ID          uuid.UUID       `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name        string          `gorm:"column:name;size:255;not null" json:"name"`
	Description *string         `gorm:"column:description;type:text" json:"description,omitempty"`
	Category    string          `gorm:"column:category;size:64;index;not null" json:"category"`
	UnitPrice   decimal.Decimal `gorm:"column:unit_price;type:decimal(20,4);not null" json:"unit_price"`
	Quantity    int             `gorm:"column:quantity;not null;default:0" json:"quantity"`
	Site        *string         `gorm:"column:site;size:64" json:"site,omitempty"`
	ImageURL    *string         `gorm:"column:image_url;size:512" json:"image_url,omitempty"`
	CreatedAt   time.Time       `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

// TableName overrides the default pluralization.
func (Product) TableName() string {
	return "products"
}

// InStock reports whether at least one unit is available.
func (p Product) InStock() bool {
	return p.Quantity > 0
}
