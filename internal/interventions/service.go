package interventions

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ainnoce10/ebf-backend/pkg/db/models"
	pkgerrors "github.com/ainnoce10/ebf-backend/pkg/errors"
)

const dateLayout = "2006-01-02"

type repository interface {
	List(ctx context.Context) ([]models.Intervention, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Intervention, error)
	Create(ctx context.Context, job *models.Intervention) (*models.Intervention, error)
	Update(ctx context.Context, job *models.Intervention) (*models.Intervention, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// CreateInterventionInput holds the validated payload to plan a job.
type CreateInterventionInput struct {
	Date         string
	Site         *string
	TechnicianID *uuid.UUID
	Client       string
	Description  *string
}

// UpdateInterventionInput holds optional mutation values for a job.
type UpdateInterventionInput struct {
	Date         *string
	Site         *string
	TechnicianID *uuid.UUID
	Client       *string
	Description  *string
	Done         *bool
}

// Service exposes intervention planning operations.
type Service interface {
	List(ctx context.Context) ([]models.Intervention, error)
	Get(ctx context.Context, id uuid.UUID) (*models.Intervention, error)
	Create(ctx context.Context, input CreateInterventionInput) (*models.Intervention, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateInterventionInput) (*models.Intervention, error)
	MarkDone(ctx context.Context, id uuid.UUID) (*models.Intervention, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo repository
}

// NewService builds an intervention service backed by the repository.
func NewService(repo repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("intervention repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) List(ctx context.Context) ([]models.Intervention, error) {
	jobs, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list interventions")
	}
	return jobs, nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*models.Intervention, error) {
	job, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "intervention not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load intervention")
	}
	return job, nil
}

func (s *service) Create(ctx context.Context, input CreateInterventionInput) (*models.Intervention, error) {
	if err := validateDate(input.Date); err != nil {
		return nil, err
	}
	if strings.TrimSpace(input.Client) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "client name is required")
	}

	job := &models.Intervention{
		Date:         input.Date,
		Site:         input.Site,
		TechnicianID: input.TechnicianID,
		Client:       input.Client,
		Description:  input.Description,
	}
	created, err := s.repo.Create(ctx, job)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create intervention")
	}
	return created, nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, input UpdateInterventionInput) (*models.Intervention, error) {
	job, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Date != nil {
		if err := validateDate(*input.Date); err != nil {
			return nil, err
		}
		job.Date = *input.Date
	}
	if input.Site != nil {
		job.Site = input.Site
	}
	if input.TechnicianID != nil {
		job.TechnicianID = input.TechnicianID
	}
	if input.Client != nil {
		if strings.TrimSpace(*input.Client) == "" {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "client name cannot be blank")
		}
		job.Client = *input.Client
	}
	if input.Description != nil {
		job.Description = input.Description
	}
	if input.Done != nil {
		job.Done = *input.Done
	}

	updated, err := s.repo.Update(ctx, job)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update intervention")
	}
	return updated, nil
}

// MarkDone flags the intervention as completed. Already completed jobs are a
// no-op rather than an error.
func (s *service) MarkDone(ctx context.Context, id uuid.UUID) (*models.Intervention, error) {
	job, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if job.Done {
		return job, nil
	}
	job.Done = true
	updated, err := s.repo.Update(ctx, job)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update intervention")
	}
	return updated, nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete intervention")
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
