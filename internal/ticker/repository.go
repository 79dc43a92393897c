package ticker

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ainnoce10/ebf-backend/pkg/db/models"
)

// Repository exposes persistence operations for ticker messages.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a ticker repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// List returns messages newest first.
func (r *Repository) List(ctx context.Context) ([]models.TickerMessage, error) {
	var messages []models.TickerMessage
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&messages).Error; err != nil {
		return nil, err
	}
	return messages, nil
}

// GetByID loads a single message.
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*models.TickerMessage, error) {
	var message models.TickerMessage
	if err := r.db.WithContext(ctx).First(&message, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &message, nil
}

// Create inserts a new message and returns the persisted model.
func (r *Repository) Create(ctx context.Context, message *models.TickerMessage) (*models.TickerMessage, error) {
	if err := r.db.WithContext(ctx).Create(message).Error; err != nil {
		return nil, err
	}
	return message, nil
}

// Delete removes a message by ID.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&models.TickerMessage{}, "id = ?", id).Error
}
