package transactions

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ainnoce10/ebf-backend/pkg/db/models"
)

// Repository exposes persistence operations for accounting entries.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a transaction repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// List returns every transaction ordered by date then creation time.
func (r *Repository) List(ctx context.Context) ([]models.TransactionRecord, error) {
	var records []models.TransactionRecord
	if err := r.db.WithContext(ctx).Order("date ASC, created_at ASC").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// GetByID loads a single transaction.
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*models.TransactionRecord, error) {
	var record models.TransactionRecord
	if err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

// Create inserts a new transaction and returns the persisted model.
func (r *Repository) Create(ctx context.Context, record *models.TransactionRecord) (*models.TransactionRecord, error) {
	if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
		return nil, err
	}
	return record, nil
}

// Update saves the provided transaction.
func (r *Repository) Update(ctx context.Context, record *models.TransactionRecord) (*models.TransactionRecord, error) {
	if err := r.db.WithContext(ctx).Save(record).Error; err != nil {
		return nil, err
	}
	return record, nil
}

// Delete removes a transaction by ID.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&models.TransactionRecord{}, "id = ?", id).Error
}
