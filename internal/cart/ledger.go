package cart

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ainnoce10/ebf-backend/pkg/db/models"
)

// Entry pairs a product snapshot with the quantity in the cart.
// Quantity is always >= 1: an entry that would reach zero is removed instead.
type Entry struct {
	Item     models.Product `json:"item"`
	Quantity int            `json:"quantity"`
}

// Ledger accumulates cart actions keyed by product ID. Insertion order is
// preserved so repeated renders and snapshots list entries identically.
type Ledger struct {
	entries  map[uuid.UUID]*Entry
	order    []uuid.UUID
	readOnly bool
}

// NewLedger returns an empty cart ledger.
func NewLedger() *Ledger {
	return &Ledger{entries: map[uuid.UUID]*Entry{}}
}

// SetReadOnly toggles read-only mode; Add becomes a no-op while set.
func (l *Ledger) SetReadOnly(readOnly bool) {
	l.readOnly = readOnly
}

// Add inserts the item with quantity 1 or increments an existing entry.
// Silently rejected when the ledger is read-only or the item is out of
// stock; neither case is an error.
func (l *Ledger) Add(item models.Product) {
	if l.readOnly || item.Quantity <= 0 {
		return
	}
	if entry, ok := l.entries[item.ID]; ok {
		entry.Quantity++
		return
	}
	l.entries[item.ID] = &Entry{Item: item, Quantity: 1}
	l.order = append(l.order, item.ID)
}

// Remove deletes the entry entirely regardless of its quantity.
func (l *Ledger) Remove(itemID uuid.UUID) {
	if _, ok := l.entries[itemID]; !ok {
		return
	}
	delete(l.entries, itemID)
	for i, id := range l.order {
		if id == itemID {
			l.order = append(l.order[:i], l.order[i+1:]...)
			break
		}
	}
}

// Clear empties the ledger.
func (l *Ledger) Clear() {
	l.entries = map[uuid.UUID]*Entry{}
	l.order = nil
}

// Total sums quantity times unit price over every entry.
func (l *Ledger) Total() decimal.Decimal {
	total := decimal.Zero
	for _, entry := range l.entries {
		line := entry.Item.UnitPrice.Mul(decimal.NewFromInt(int64(entry.Quantity)))
		total = total.Add(line)
	}
	return total
}

// ItemCount sums the quantities of all entries, not the number of distinct
// entries.
func (l *Ledger) ItemCount() int {
	count := 0
	for _, entry := range l.entries {
		count += entry.Quantity
	}
	return count
}

// Len returns the number of distinct entries.
func (l *Ledger) Len() int {
	return len(l.entries)
}

// Entries returns the cart content in insertion order.
func (l *Ledger) Entries() []Entry {
	out := make([]Entry, 0, len(l.order))
	for _, id := range l.order {
		if entry, ok := l.entries[id]; ok {
			out = append(out, *entry)
		}
	}
	return out
}
