package ticker

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ainnoce10/ebf-backend/pkg/db/models"
	"github.com/ainnoce10/ebf-backend/pkg/enums"
	pkgerrors "github.com/ainnoce10/ebf-backend/pkg/errors"
)

type repository interface {
	List(ctx context.Context) ([]models.TickerMessage, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.TickerMessage, error)
	Create(ctx context.Context, message *models.TickerMessage) (*models.TickerMessage, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// CreateMessageInput holds the validated payload to publish a notice.
type CreateMessageInput struct {
	Text     string
	Severity enums.TickerSeverity
}

// Service exposes dashboard ticker operations.
type Service interface {
	List(ctx context.Context) ([]models.TickerMessage, error)
	Create(ctx context.Context, input CreateMessageInput) (*models.TickerMessage, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo repository
}

// NewService builds a ticker service backed by the repository.
func NewService(repo repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("ticker repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) List(ctx context.Context) ([]models.TickerMessage, error) {
	messages, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list ticker messages")
	}
	return messages, nil
}

func (s *service) Create(ctx context.Context, input CreateMessageInput) (*models.TickerMessage, error) {
	if strings.TrimSpace(input.Text) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "message text is required")
	}
	severity := input.Severity
	if severity == "" {
		severity = enums.TickerInfo
	}
	if !severity.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "unknown severity")
	}

	message := &models.TickerMessage{Text: input.Text, Severity: severity}
	created, err := s.repo.Create(ctx, message)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create ticker message")
	}
	return created, nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "ticker message not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load ticker message")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete ticker message")
	}
	return nil
}
