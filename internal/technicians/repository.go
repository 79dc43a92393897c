package technicians

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ainnoce10/ebf-backend/pkg/db/models"
)

// Repository exposes persistence operations for field technicians.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a technician repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// List returns every technician ordered by name.
func (r *Repository) List(ctx context.Context) ([]models.Technician, error) {
	var techs []models.Technician
	if err := r.db.WithContext(ctx).Order("full_name ASC").Find(&techs).Error; err != nil {
		return nil, err
	}
	return techs, nil
}

// GetByID loads a single technician.
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*models.Technician, error) {
	var tech models.Technician
	if err := r.db.WithContext(ctx).First(&tech, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &tech, nil
}

// Create inserts a new technician and returns the persisted model.
func (r *Repository) Create(ctx context.Context, tech *models.Technician) (*models.Technician, error) {
	if err := r.db.WithContext(ctx).Create(tech).Error; err != nil {
		return nil, err
	}
	return tech, nil
}

// Update saves the provided technician.
func (r *Repository) Update(ctx context.Context, tech *models.Technician) (*models.Technician, error) {
	if err := r.db.WithContext(ctx).Save(tech).Error; err != nil {
		return nil, err
	}
	return tech, nil
}

// Delete removes a technician by ID.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&models.Technician{}, "id = ?", id).Error
}
