package technicians

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ainnoce10/ebf-backend/pkg/db/models"
	pkgerrors "github.com/ainnoce10/ebf-backend/pkg/errors"
)

type repository interface {
	List(ctx context.Context) ([]models.Technician, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Technician, error)
	Create(ctx context.Context, tech *models.Technician) (*models.Technician, error)
	Update(ctx context.Context, tech *models.Technician) (*models.Technician, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// CreateTechnicianInput holds the validated payload to register a technician.
type CreateTechnicianInput struct {
	FullName  string
	Phone     *string
	Site      *string
	Specialty *string
}

// UpdateTechnicianInput holds optional mutation values for a technician.
type UpdateTechnicianInput struct {
	FullName  *string
	Phone     *string
	Site      *string
	Specialty *string
}

// Service exposes technician roster operations.
type Service interface {
	List(ctx context.Context) ([]models.Technician, error)
	Get(ctx context.Context, id uuid.UUID) (*models.Technician, error)
	Create(ctx context.Context, input CreateTechnicianInput) (*models.Technician, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateTechnicianInput) (*models.Technician, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo repository
}

// NewService builds a technician service backed by the repository.
func NewService(repo repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("technician repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) List(ctx context.Context) ([]models.Technician, error) {
	techs, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list technicians")
	}
	return techs, nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*models.Technician, error) {
	tech, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "technician not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load technician")
	}
	return tech, nil
}

func (s *service) Create(ctx context.Context, input CreateTechnicianInput) (*models.Technician, error) {
	if strings.TrimSpace(input.FullName) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "technician name is required")
	}

	tech := &models.Technician{
		FullName:  input.FullName,
		Phone:     input.Phone,
		Site:      input.Site,
		Specialty: input.Specialty,
	}
	created, err := s.repo.Create(ctx, tech)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create technician")
	}
	return created, nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, input UpdateTechnicianInput) (*models.Technician, error) {
	tech, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.FullName != nil {
		if strings.TrimSpace(*input.FullName) == "" {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "technician name cannot be blank")
		}
		tech.FullName = *input.FullName
	}
	if input.Phone != nil {
		tech.Phone = input.Phone
	}
	if input.Site != nil {
		tech.Site = input.Site
	}
	if input.Specialty != nil {
		tech.Specialty = input.Specialty
	}

	updated, err := s.repo.Update(ctx, tech)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update technician")
	}
	return updated, nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete technician")
	}
	return nil
}
