package interventions

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ainnoce10/ebf-backend/pkg/db/models"
)

// Repository exposes persistence operations for on-site jobs.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs an intervention repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// List returns every intervention ordered by date then creation time.
func (r *Repository) List(ctx context.Context) ([]models.Intervention, error) {
	var jobs []models.Intervention
	if err := r.db.WithContext(ctx).Order("date ASC, created_at ASC").Find(&jobs).Error; err != nil {
		return nil, err
	}
	return jobs, nil
}

// GetByID loads a single intervention.
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*models.Intervention, error) {
	var job models.Intervention
	if err := r.db.WithContext(ctx).First(&job, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &job, nil
}

// Create inserts a new intervention and returns the persisted model.
func (r *Repository) Create(ctx context.Context, job *models.Intervention) (*models.Intervention, error) {
	if err := r.db.WithContext(ctx).Create(job).Error; err != nil {
		return nil, err
	}
	return job, nil
}

// Update saves the provided intervention.
func (r *Repository) Update(ctx context.Context, job *models.Intervention) (*models.Intervention, error) {
	if err := r.db.WithContext(ctx).Save(job).Error; err != nil {
		return nil, err
	}
	return job, nil
}

// Delete removes an intervention by ID.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&models.Intervention{}, "id = ?", id).Error
}
