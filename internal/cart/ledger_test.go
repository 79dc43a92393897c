package cart

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ainnoce10/ebf-backend/pkg/db/models"
)

func product(name string, price int64, stock int) models.Product {
	return models.Product{
		ID:        uuid.New(),
		Name:      name,
		Category:  "Informatique",
		UnitPrice: decimal.NewFromInt(price),
		Quantity:  stock,
	}
}

func TestAddTwiceIncrementsQuantity(t *testing.T) {
	ledger := NewLedger()
	item := product("Routeur", 25000, 4)

	ledger.Add(item)
	ledger.Add(item)

	if ledger.Len() != 1 {
		t.Fatalf("expected a single entry, got %d", ledger.Len())
	}
	if ledger.ItemCount() != 2 {
		t.Fatalf("item count = %d, want 2", ledger.ItemCount())
	}
	if !ledger.Total().Equal(decimal.NewFromInt(50000)) {
		t.Fatalf("total = %s", ledger.Total())
	}
}

func TestRemoveDeletesWholeEntry(t *testing.T) {
	ledger := NewLedger()
	item := product("Câble", 1500, 10)
	ledger.Add(item)
	ledger.Add(item)
	ledger.Add(item)

	ledger.Remove(item.ID)

	if ledger.Len() != 0 {
		t.Fatalf("entry should be gone")
	}
	if !ledger.Total().Equal(decimal.Zero) {
		t.Fatalf("total = %s, want 0", ledger.Total())
	}
}

func TestAddOutOfStockIsNoOp(t *testing.T) {
	ledger := NewLedger()
	ledger.Add(product("Rupture", 100, 0))
	ledger.Add(product("Négatif", 100, -2))

	if ledger.Len() != 0 {
		t.Fatalf("out-of-stock items must not enter the cart")
	}
}

func TestAddInReadOnlyModeIsNoOp(t *testing.T) {
	ledger := NewLedger()
	ledger.SetReadOnly(true)
	ledger.Add(product("Interdit", 100, 5))

	if ledger.Len() != 0 {
		t.Fatalf("read-only ledger must reject adds")
	}

	ledger.SetReadOnly(false)
	ledger.Add(product("Permis", 100, 5))
	if ledger.Len() != 1 {
		t.Fatalf("writable ledger should accept adds")
	}
}

func TestClearEmptiesEverything(t *testing.T) {
	ledger := NewLedger()
	ledger.Add(product("A", 10, 1))
	ledger.Add(product("B", 20, 1))

	ledger.Clear()

	if ledger.Len() != 0 || ledger.ItemCount() != 0 {
		t.Fatalf("clear should empty the ledger")
	}
	if !ledger.Total().Equal(decimal.Zero) {
		t.Fatalf("total after clear = %s", ledger.Total())
	}
}

func TestEntriesPreserveInsertionOrder(t *testing.T) {
	ledger := NewLedger()
	first := product("Premier", 10, 5)
	second := product("Deuxième", 20, 5)
	third := product("Troisième", 30, 5)
	ledger.Add(first)
	ledger.Add(second)
	ledger.Add(third)
	ledger.Remove(second.ID)

	entries := ledger.Entries()
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Item.ID != first.ID || entries[1].Item.ID != third.ID {
		t.Fatalf("entries out of order")
	}
}
