package catalog

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/ainnoce10/ebf-backend/pkg/db/models"
	"github.com/ainnoce10/ebf-backend/pkg/enums"
)

// Criteria holds the active catalog filters. Zero values mean "not active":
// every active criterion must hold for an item to pass.
type Criteria struct {
	Site        enums.Site       `json:"site,omitempty"`
	Query       string           `json:"q,omitempty"`
	Category    string           `json:"category,omitempty"`
	MaxPrice    *decimal.Decimal `json:"max_price,omitempty"`
	InStockOnly bool             `json:"in_stock_only,omitempty"`
}

// Filter returns the items satisfying every active criterion, preserving the
// source order. The source slice is never mutated.
func Filter(items []models.Product, criteria Criteria) []models.Product {
	filtered := make([]models.Product, 0, len(items))
	for _, item := range items {
		if matches(item, criteria) {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

func matches(item models.Product, criteria Criteria) bool {
	if criteria.Site != "" && !criteria.Site.IsWildcard() {
		if item.Site == nil || *item.Site != string(criteria.Site) {
			return false
		}
	}

	if query := strings.TrimSpace(criteria.Query); query != "" {
		haystack := strings.ToLower(searchText(item))
		if !strings.Contains(haystack, strings.ToLower(query)) {
			return false
		}
	}

	if criteria.Category != "" && item.Category != criteria.Category {
		return false
	}

	if criteria.MaxPrice != nil && item.UnitPrice.GreaterThan(*criteria.MaxPrice) {
		return false
	}

	if criteria.InStockOnly && !item.InStock() {
		return false
	}

	return true
}

func searchText(item models.Product) string {
	parts := []string{item.Name, item.Category}
	if item.Description != nil {
		parts = append(parts, *item.Description)
	}
	return strings.Join(parts, " ")
}
