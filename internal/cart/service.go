package cart

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/ainnoce10/ebf-backend/pkg/db/models"
	"github.com/ainnoce10/ebf-backend/pkg/enums"
	pkgerrors "github.com/ainnoce10/ebf-backend/pkg/errors"
)

type productLoader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
}

// Quote is the synchronous view of a cart after an operation.
type Quote struct {
	Entries   []Entry         `json:"entries"`
	Total     decimal.Decimal `json:"total"`
	ItemCount int             `json:"item_count"`
}

// Service exposes cart operations persisted per user.
type Service interface {
	Get(ctx context.Context, userID uuid.UUID) (*Quote, error)
	AddItem(ctx context.Context, userID uuid.UUID, role enums.Role, productID uuid.UUID) (*Quote, error)
	RemoveItem(ctx context.Context, userID uuid.UUID, productID uuid.UUID) (*Quote, error)
	Clear(ctx context.Context, userID uuid.UUID) error
}

type service struct {
	store    *Store
	products productLoader
}

// NewService builds a cart service backed by the snapshot store.
func NewService(store *Store, products productLoader) (Service, error) {
	if store == nil {
		return nil, fmt.Errorf("cart store required")
	}
	if products == nil {
		return nil, fmt.Errorf("product loader required")
	}
	return &service{store: store, products: products}, nil
}

func (s *service) Get(ctx context.Context, userID uuid.UUID) (*Quote, error) {
	ledger, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	return quoteOf(ledger), nil
}

// AddItem loads the product, applies the ledger's add semantics, and saves
// the snapshot. A rejected add (read-only role, out of stock) is not an
// error: the unchanged quote is returned.
func (s *service) AddItem(ctx context.Context, userID uuid.UUID, role enums.Role, productID uuid.UUID) (*Quote, error) {
	if productID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product id is required")
	}

	item, err := s.products.GetByID(ctx, productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load product")
	}

	ledger, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}

	ledger.SetReadOnly(role == enums.RoleVisiteur)
	ledger.Add(*item)

	if err := s.store.Save(ctx, userID.String(), ledger); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "save cart")
	}
	return quoteOf(ledger), nil
}

func (s *service) RemoveItem(ctx context.Context, userID uuid.UUID, productID uuid.UUID) (*Quote, error) {
	ledger, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}

	ledger.Remove(productID)

	if err := s.store.Save(ctx, userID.String(), ledger); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "save cart")
	}
	return quoteOf(ledger), nil
}

func (s *service) Clear(ctx context.Context, userID uuid.UUID) error {
	if err := s.store.Drop(ctx, userID.String()); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "clear cart")
	}
	return nil
}

func (s *service) load(ctx context.Context, userID uuid.UUID) (*Ledger, error) {
	if userID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "user id is required")
	}
	ledger, err := s.store.Load(ctx, userID.String())
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load cart")
	}
	return ledger, nil
}

func quoteOf(ledger *Ledger) *Quote {
	return &Quote{
		Entries:   ledger.Entries(),
		Total:     ledger.Total(),
		ItemCount: ledger.ItemCount(),
	}
}
