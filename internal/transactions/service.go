package transactions

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/ainnoce10/ebf-backend/pkg/db/models"
	"github.com/ainnoce10/ebf-backend/pkg/enums"
	pkgerrors "github.com/ainnoce10/ebf-backend/pkg/errors"
)

const dateLayout = "2006-01-02"

type repository interface {
	List(ctx context.Context) ([]models.TransactionRecord, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.TransactionRecord, error)
	Create(ctx context.Context, record *models.TransactionRecord) (*models.TransactionRecord, error)
	Update(ctx context.Context, record *models.TransactionRecord) (*models.TransactionRecord, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// CreateTransactionInput holds the validated payload to book an entry.
type CreateTransactionInput struct {
	Date   string
	Site   *string
	Type   enums.TransactionType
	Label  string
	Amount decimal.Decimal
}

// UpdateTransactionInput holds optional mutation values for an entry.
type UpdateTransactionInput struct {
	Date   *string
	Site   *string
	Type   *enums.TransactionType
	Label  *string
	Amount *decimal.Decimal
}

// Service exposes accounting ledger operations.
type Service interface {
	List(ctx context.Context) ([]models.TransactionRecord, error)
	Get(ctx context.Context, id uuid.UUID) (*models.TransactionRecord, error)
	Create(ctx context.Context, input CreateTransactionInput) (*models.TransactionRecord, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateTransactionInput) (*models.TransactionRecord, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo repository
}

// NewService builds a transaction service backed by the repository.
func NewService(repo repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("transaction repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) List(ctx context.Context) ([]models.TransactionRecord, error) {
	records, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list transactions")
	}
	return records, nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*models.TransactionRecord, error) {
	record, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "transaction not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load transaction")
	}
	return record, nil
}

func (s *service) Create(ctx context.Context, input CreateTransactionInput) (*models.TransactionRecord, error) {
	if err := validateDate(input.Date); err != nil {
		return nil, err
	}
	if !input.Type.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "unknown transaction type")
	}
	if strings.TrimSpace(input.Label) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "transaction label is required")
	}
	if input.Amount.IsNegative() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "amount cannot be negative")
	}

	record := &models.TransactionRecord{
		Date:   input.Date,
		Site:   input.Site,
		Type:   input.Type,
		Label:  input.Label,
		Amount: input.Amount,
	}
	created, err := s.repo.Create(ctx, record)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create transaction")
	}
	return created, nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, input UpdateTransactionInput) (*models.TransactionRecord, error) {
	record, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Date != nil {
		if err := validateDate(*input.Date); err != nil {
			return nil, err
		}
		record.Date = *input.Date
	}
	if input.Site != nil {
		record.Site = input.Site
	}
	if input.Type != nil {
		if !input.Type.IsValid() {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "unknown transaction type")
		}
		record.Type = *input.Type
	}
	if input.Label != nil {
		if strings.TrimSpace(*input.Label) == "" {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "transaction label cannot be blank")
		}
		record.Label = *input.Label
	}
	if input.Amount != nil {
		if input.Amount.IsNegative() {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "amount cannot be negative")
		}
		record.Amount = *input.Amount
	}

	updated, err := s.repo.Update(ctx, record)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update transaction")
	}
	return updated, nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete transaction")
	}
	return nil
}

func validateDate(date string) error {
	if strings.TrimSpace(date) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "date is required")
	}
	if _, err := time.Parse(dateLayout, date); err != nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "date must use the YYYY-MM-DD format")
	}
	return nil
}
