package services

import (
	"context"

	"github.com/olamide/gradekeeper/internal/app/models"
	"github.com/olamide/gradekeeper/internal/app/models/dto"
	"github.com/olamide/gradekeeper/internal/pkg/auth"
)

// GuardianStore is the guardian persistence surface the services consume.
// Satisfied by repositories.GuardianRepository.
type GuardianStore interface {
	Create(ctx context.Context, guardian *models.Guardian, childStudentIDs []string) error
	GetByID(ctx context.Context, id int64) (*models.Guardian, error)
	GetAll(ctx context.Context) ([]*models.Guardian, error)
	Delete(ctx context.Context, id int64) error
}

// GuardianService defines the interface for guardian management
type GuardianService interface {
	// Register creates a guardian and points the named children at it.
	// Unknown child registration numbers are skipped, not failed.
	Register(ctx context.Context, req *dto.RegisterGuardianRequest) (*models.Guardian, error)
	Delete(ctx context.Context, id int64) error
	GetAll(ctx context.Context) ([]*models.Guardian, error)
}

// guardianServiceImpl implements the GuardianService interface
type guardianServiceImpl struct {
	guardians GuardianStore
}

// NewGuardianService creates a new guardian service instance
func NewGuardianService(guardians GuardianStore) GuardianService {
	return &guardianServiceImpl{guardians: guardians}
}

func (s *guardianServiceImpl) Register(ctx context.Context, req *dto.RegisterGuardianRequest) (*models.Guardian, error) {
	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	guardian := &models.Guardian{
		Title:    req.Title,
		Name:     req.Name,
		Email:    req.Email,
		Gender:   req.Gender,
		Address:  req.Address,
		MobileNo: req.MobileNo,
		Password: hash,
	}
	if err := s.guardians.Create(ctx, guardian, req.Children); err != nil {
		return nil, err
	}
	return guardian, nil
}

func (s *guardianServiceImpl) Delete(ctx context.Context, id int64) error {
	return s.guardians.Delete(ctx, id)
}

func (s *guardianServiceImpl) GetAll(ctx context.Context) ([]*models.Guardian, error) {
	return s.guardians.GetAll(ctx)
}
