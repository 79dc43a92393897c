package catalog

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/ainnoce10/ebf-backend/pkg/db/models"
	"github.com/ainnoce10/ebf-backend/pkg/enums"
	pkgerrors "github.com/ainnoce10/ebf-backend/pkg/errors"
)

type fakeRepo struct {
	items map[uuid.UUID]models.Product
	order []uuid.UUID
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{items: map[uuid.UUID]models.Product{}}
}

func (f *fakeRepo) List(context.Context) ([]models.Product, error) {
	out := make([]models.Product, 0, len(f.order))
	for _, id := range f.order {
		out = append(out, f.items[id])
	}
	return out, nil
}

func (f *fakeRepo) GetByID(_ context.Context, id uuid.UUID) (*models.Product, error) {
	if item, ok := f.items[id]; ok {
		return &item, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepo) Create(_ context.Context, item *models.Product) (*models.Product, error) {
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	f.items[item.ID] = *item
	f.order = append(f.order, item.ID)
	return item, nil
}

func (f *fakeRepo) Update(_ context.Context, item *models.Product) (*models.Product, error) {
	f.items[item.ID] = *item
	return item, nil
}

func (f *fakeRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.items, id)
	return nil
}

func TestCreateValidatesInput(t *testing.T) {
	svc, err := NewService(newFakeRepo())
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}

	cases := []struct {
		name  string
		input CreateProductInput
	}{
		{"missing name", CreateProductInput{Category: "Climatisation", UnitPrice: decimal.NewFromInt(100)}},
		{"missing category", CreateProductInput{Name: "Split 9000 BTU", UnitPrice: decimal.NewFromInt(100)}},
		{"negative price", CreateProductInput{Name: "Split", Category: "Climatisation", UnitPrice: decimal.NewFromInt(-1)}},
		{"negative quantity", CreateProductInput{Name: "Split", Category: "Climatisation", UnitPrice: decimal.NewFromInt(100), Quantity: -2}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tc.input)
			typed := pkgerrors.As(err)
			if typed == nil || typed.Code() != pkgerrors.CodeValidation {
				t.Errorf("expected validation error, got %v", err)
			}
		})
	}
}

func TestGetNotFound(t *testing.T) {
	svc, err := NewService(newFakeRepo())
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}

	_, err = svc.Get(context.Background(), uuid.New())
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Errorf("expected not found, got %v", err)
	}
}

func TestBrowseAppliesCriteria(t *testing.T) {
	repo := newFakeRepo()
	svc, err := NewService(repo)
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}

	abidjan := "Abidjan"
	for _, item := range []models.Product{
		{Name: "Split 9000 BTU", Category: "Climatisation", UnitPrice: decimal.NewFromInt(180000), Quantity: 3, Site: &abidjan},
		{Name: "Câble 2.5mm", Category: "Électricité", UnitPrice: decimal.NewFromInt(12000), Quantity: 0, Site: &abidjan},
	} {
		if _, err := repo.Create(context.Background(), &item); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	items, err := svc.Browse(context.Background(), Criteria{Site: enums.SiteAbidjan, InStockOnly: true})
	if err != nil {
		t.Fatalf("Browse: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 in-stock item, got %d", len(items))
	}
	if items[0].Name != "Split 9000 BTU" {
		t.Errorf("unexpected item %q", items[0].Name)
	}
}

func TestUpdateAppliesPartialMutation(t *testing.T) {
	repo := newFakeRepo()
	svc, err := NewService(repo)
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}

	created, err := svc.Create(context.Background(), CreateProductInput{
		Name:      "Split 9000 BTU",
		Category:  "Climatisation",
		UnitPrice: decimal.NewFromInt(180000),
		Quantity:  3,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	newQty := 10
	updated, err := svc.Update(context.Background(), created.ID, UpdateProductInput{Quantity: &newQty})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Quantity != 10 {
		t.Errorf("quantity = %d, want 10", updated.Quantity)
	}
	if updated.Name != "Split 9000 BTU" {
		t.Errorf("name mutated unexpectedly: %q", updated.Name)
	}
}
