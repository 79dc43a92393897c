package catalog

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ainnoce10/ebf-backend/pkg/db/models"
	"github.com/ainnoce10/ebf-backend/pkg/enums"
)

func strPtr(s string) *string {
	return &s
}

func fixtureCatalog() []models.Product {
	return []models.Product{
		{ID: uuid.New(), Name: "Routeur WiFi", Category: "Réseau", UnitPrice: decimal.NewFromInt(25000), Quantity: 3, Site: strPtr("Abidjan")},
		{ID: uuid.New(), Name: "Switch 24 ports", Category: "Réseau", UnitPrice: decimal.NewFromInt(80000), Quantity: 0, Site: strPtr("Abidjan")},
		{ID: uuid.New(), Name: "Onduleur 1500VA", Category: "Énergie", UnitPrice: decimal.NewFromInt(45000), Quantity: 5, Site: strPtr("Bouaké")},
		{ID: uuid.New(), Name: "Câble RJ45", Category: "Réseau", UnitPrice: decimal.NewFromInt(1500), Quantity: 120, Site: strPtr("Bouaké"), Description: strPtr("Bobine de câble catégorie 6")},
		{ID: uuid.New(), Name: "Batterie solaire", Category: "Énergie", UnitPrice: decimal.NewFromInt(150000), Quantity: 2, Site: strPtr("Abidjan")},
	}
}

func TestFilterByCategoryKeepsOrder(t *testing.T) {
	items := fixtureCatalog()

	got := Filter(items, Criteria{Category: "Énergie"})
	if len(got) != 2 {
		t.Fatalf("expected 2 Énergie items, got %d", len(got))
	}
	if got[0].Name != "Onduleur 1500VA" || got[1].Name != "Batterie solaire" {
		t.Fatalf("source order not preserved: %s, %s", got[0].Name, got[1].Name)
	}
}

func TestFilterSearchIsCaseInsensitiveAcrossFields(t *testing.T) {
	items := fixtureCatalog()

	got := Filter(items, Criteria{Query: "CÂBLE"})
	if len(got) != 1 || got[0].Name != "Câble RJ45" {
		t.Fatalf("expected the cable by name, got %d items", len(got))
	}

	// Matches inside the description too.
	got = Filter(items, Criteria{Query: "catégorie 6"})
	if len(got) != 1 || got[0].Name != "Câble RJ45" {
		t.Fatalf("expected the cable by description, got %d items", len(got))
	}
}

func TestFilterMaxPriceExcludesStrictlyAbove(t *testing.T) {
	items := fixtureCatalog()
	ceiling := decimal.NewFromInt(45000)

	got := Filter(items, Criteria{MaxPrice: &ceiling})
	for _, item := range got {
		if item.UnitPrice.GreaterThan(ceiling) {
			t.Fatalf("%s is above the ceiling", item.Name)
		}
	}
	// 45000 itself is kept: the bound is strict.
	found := false
	for _, item := range got {
		if item.Name == "Onduleur 1500VA" {
			found = true
		}
	}
	if !found {
		t.Fatalf("items priced exactly at the ceiling must pass")
	}
}

func TestFilterInStockOnly(t *testing.T) {
	got := Filter(fixtureCatalog(), Criteria{InStockOnly: true})
	for _, item := range got {
		if item.Quantity <= 0 {
			t.Fatalf("%s is out of stock", item.Name)
		}
	}
	if len(got) != 4 {
		t.Fatalf("expected 4 in-stock items, got %d", len(got))
	}
}

func TestFilterSiteWildcardPassesAll(t *testing.T) {
	items := fixtureCatalog()
	if got := Filter(items, Criteria{Site: enums.SiteGlobal}); len(got) != len(items) {
		t.Fatalf("wildcard must not filter anything")
	}
}

func TestFilterCombinesCriteriaWithAnd(t *testing.T) {
	got := Filter(fixtureCatalog(), Criteria{
		Site:        enums.SiteAbidjan,
		Category:    "Réseau",
		InStockOnly: true,
	})
	if len(got) != 1 || got[0].Name != "Routeur WiFi" {
		t.Fatalf("expected only the in-stock Abidjan router, got %d items", len(got))
	}
}

func TestFilterDoesNotMutateSource(t *testing.T) {
	items := fixtureCatalog()
	before := make([]models.Product, len(items))
	copy(before, items)

	Filter(items, Criteria{Category: "Réseau", InStockOnly: true})

	for i := range items {
		if items[i].ID != before[i].ID {
			t.Fatalf("source slice was reordered")
		}
	}
}
