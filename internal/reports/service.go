package reports

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
	pkgerrors "github.com/ainnoce10/ebf-backend/pkg/errors"
)

// DateLayout is the wire and storage format for report dates.
const DateLayout = "2006-01-02"

type repository interface {
	List(ctx context.Context) ([]models.ReportRecord, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.ReportRecord, error)
	Create(ctx context.Context, record *models.ReportRecord) (*models.ReportRecord, error)
	Update(ctx context.Context, record *models.ReportRecord) (*models.ReportRecord, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// CreateReportInput holds the validated payload to file a report.
type CreateReportInput struct {
	Date         string
	Site         *string
	TechnicianID *uuid.UUID
	Content      string
	Revenue      *decimal.Decimal
	Expenses     *decimal.Decimal
}

// UpdateReportInput holds optional mutation values for a report.
type UpdateReportInput struct {
	Date         *string
	Site         *string
	TechnicianID *uuid.UUID
	Content      *string
	Revenue      *decimal.Decimal
	Expenses     *decimal.Decimal
}

// Service exposes report filing and browsing operations.
type Service interface {
	List(ctx context.Context) ([]models.ReportRecord, error)
	Get(ctx context.Context, id uuid.UUID) (*models.ReportRecord, error)
	Create(ctx context.Context, input CreateReportInput) (*models.ReportRecord, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateReportInput) (*models.ReportRecord, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo repository
}

// NewService builds a report service backed by the repository.
func NewService(repo repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("report repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) List(ctx context.Context) ([]models.ReportRecord, error) {
	records, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list reports")
	}
	return records, nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*models.ReportRecord, error) {
	record, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "report not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load report")
	}
	return record, nil
}

func (s *service) Create(ctx context.Context, input CreateReportInput) (*models.ReportRecord, error) {
	if err := validateDate(input.Date); err != nil {
		return nil, err
	}
	if strings.TrimSpace(input.Content) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "report content is required")
	}
	if input.Revenue != nil && input.Revenue.IsNegative() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "revenue cannot be negative")
	}
	if input.Expenses != nil && input.Expenses.IsNegative() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "expenses cannot be negative")
	}

	record := &models.ReportRecord{
		Date:         input.Date,
		Site:         input.Site,
		TechnicianID: input.TechnicianID,
		Content:      input.Content,
		Revenue:      input.Revenue,
		Expenses:     input.Expenses,
	}
	created, err := s.repo.Create(ctx, record)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create report")
	}
	return created, nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, input UpdateReportInput) (*models.ReportRecord, error) {
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
	if input.TechnicianID != nil {
		record.TechnicianID = input.TechnicianID
	}
	if input.Content != nil {
		if strings.TrimSpace(*input.Content) == "" {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "report content cannot be blank")
		}
		record.Content = *input.Content
	}
	if input.Revenue != nil {
		if input.Revenue.IsNegative() {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "revenue cannot be negative")
		}
		record.Revenue = input.Revenue
	}
	if input.Expenses != nil {
		if input.Expenses.IsNegative() {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "expenses cannot be negative")
		}
		record.Expenses = input.Expenses
	}

	updated, err := s.repo.Update(ctx, record)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update report")
	}
	return updated, nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete report")
	}
	return nil
}

func validateDate(date string) error {
	if strings.TrimSpace(date) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "date is required")
	}
	if _, err := time.Parse(DateLayout, date); err != nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "date must use the YYYY-MM-DD format")
	}
	return nil
}
