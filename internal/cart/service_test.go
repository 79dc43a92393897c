package cart

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	redislib "github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/ainnoce10/ebf-backend/pkg/db/models"
	"github.com/ainnoce10/ebf-backend/pkg/enums"
	pkgerrors "github.com/ainnoce10/ebf-backend/pkg/errors"
)

type fakeRedis struct {
	values map[string]string
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{values: map[string]string{}}
}

func (f *fakeRedis) Set(_ context.Context, key string, value any, _ time.Duration) error {
	f.values[key] = value.(string)
	return nil
}

func (f *fakeRedis) Get(_ context.Context, key string) (string, error) {
	if val, ok := f.values[key]; ok {
		return val, nil
	}
	return "", redislib.Nil
}

func (f *fakeRedis) Del(_ context.Context, keys ...string) error {
	for _, key := range keys {
		delete(f.values, key)
	}
	return nil
}

func (f *fakeRedis) CartKey(userID string) string {
	return "ebf:cart:" + userID
}

type fakeProducts struct {
	byID map[uuid.UUID]models.Product
}

func (f *fakeProducts) GetByID(_ context.Context, id uuid.UUID) (*models.Product, error) {
	if item, ok := f.byID[id]; ok {
		return &item, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func newTestService(t *testing.T, items ...models.Product) Service {
	t.Helper()
	store, err := NewStore(newFakeRedis(), time.Hour)
	if err != nil {
		t.Fatalf("store: %v", err)
	}
	products := &fakeProducts{byID: map[uuid.UUID]models.Product{}}
	for _, item := range items {
		products.byID[item.ID] = item
	}
	svc, err := NewService(store, products)
	if err != nil {
		t.Fatalf("service: %v", err)
	}
	return svc
}

func TestAddItemPersistsAcrossLoads(t *testing.T) {
	item := product("Onduleur", 45000, 3)
	svc := newTestService(t, item)
	userID := uuid.New()

	if _, err := svc.AddItem(context.Background(), userID, enums.RoleCommercant, item.ID); err != nil {
		t.Fatalf("add: %v", err)
	}
	quote, err := svc.AddItem(context.Background(), userID, enums.RoleCommercant, item.ID)
	if err != nil {
		t.Fatalf("add again: %v", err)
	}

	if quote.ItemCount != 2 {
		t.Fatalf("item count = %d, want 2", quote.ItemCount)
	}
	if !quote.Total.Equal(decimal.NewFromInt(90000)) {
		t.Fatalf("total = %s", quote.Total)
	}

	reloaded, err := svc.Get(context.Background(), userID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if reloaded.ItemCount != 2 {
		t.Fatalf("persisted count = %d, want 2", reloaded.ItemCount)
	}
}

func TestAddItemUnknownProduct(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.AddItem(context.Background(), uuid.New(), enums.RoleAdmin, uuid.New())
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not-found, got %v", err)
	}
}

func TestAddItemVisitorIsSilentlyRejected(t *testing.T) {
	item := product("Switch", 30000, 5)
	svc := newTestService(t, item)
	userID := uuid.New()

	quote, err := svc.AddItem(context.Background(), userID, enums.RoleVisiteur, item.ID)
	if err != nil {
		t.Fatalf("visitor add should not error: %v", err)
	}
	if quote.ItemCount != 0 {
		t.Fatalf("visitor cart should stay empty, got %d", quote.ItemCount)
	}
}

func TestRemoveThenTotalZero(t *testing.T) {
	item := product("Serveur", 800000, 2)
	svc := newTestService(t, item)
	userID := uuid.New()

	if _, err := svc.AddItem(context.Background(), userID, enums.RoleAdmin, item.ID); err != nil {
		t.Fatalf("add: %v", err)
	}
	quote, err := svc.RemoveItem(context.Background(), userID, item.ID)
	if err != nil {
		t.Fatalf("remove: %v", err)
	}
	if quote.ItemCount != 0 || !quote.Total.Equal(decimal.Zero) {
		t.Fatalf("expected empty cart, got count=%d total=%s", quote.ItemCount, quote.Total)
	}
}

func TestClearDropsSnapshot(t *testing.T) {
	item := product("Clavier", 8000, 9)
	svc := newTestService(t, item)
	userID := uuid.New()

	if _, err := svc.AddItem(context.Background(), userID, enums.RoleAdmin, item.ID); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := svc.Clear(context.Background(), userID); err != nil {
		t.Fatalf("clear: %v", err)
	}

	quote, err := svc.Get(context.Background(), userID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if quote.ItemCount != 0 {
		t.Fatalf("cart should be empty after clear")
	}
}
