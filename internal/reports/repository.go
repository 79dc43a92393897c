package reports

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ainnoce10/ebf-backend/pkg/db/models"
)

// Repository exposes persistence operations for technician reports.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a report repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// List returns every report ordered by date then creation time.
func (r *Repository) List(ctx context.Context) ([]models.ReportRecord, error) {
	var records []models.ReportRecord
	if err := r.db.WithContext(ctx).Order("date ASC, created_at ASC").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// GetByID loads a single report.
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*models.ReportRecord, error) {
	var record models.ReportRecord
	if err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

// Create inserts a new report and returns the persisted model.
func (r *Repository) Create(ctx context.Context, record *models.ReportRecord) (*models.ReportRecord, error) {
	if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
		return nil, err
	}
	return record, nil
}

// Update saves the provided report.
func (r *Repository) Update(ctx context.Context, record *models.ReportRecord) (*models.ReportRecord, error) {
	if err := r.db.WithContext(ctx).Save(record).Error; err != nil {
		return nil, err
	}
	return record, nil
}

// Delete removes a report by ID.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&models.ReportRecord{}, "id = ?", id).Error
}
