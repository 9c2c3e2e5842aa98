package services

import (
	"context"
	"fmt"

	"github.com/olamide/gradekeeper/internal/app/models"
	"github.com/olamide/gradekeeper/internal/app/models/dto"
	"github.com/olamide/gradekeeper/internal/pkg/apperrors"
	"github.com/olamide/gradekeeper/internal/pkg/auth"
	"github.com/olamide/gradekeeper/internal/pkg/catalog"
)

// AdminStore is the admin persistence surface the services consume.
// Satisfied by repositories.AdminRepository.
type AdminStore interface {
	Create(ctx context.Context, admin *models.Admin) error
	Count(ctx context.Context) (int, error)
}

// AdminService defines the interface for admin management and the
// admin-facing read operations
type AdminService interface {
	Register(ctx context.Context, req *dto.RegisterAdminRequest) (*models.Admin, error)
	// Classes returns the class catalog.
	Classes() []string
	// ClassMembers resolves the roster of a class: teacher names sorted,
	// then students rendered "lastname firstname", sorted.
	ClassMembers(ctx context.Context, class string) ([]string, error)
	// UserProfile looks up a teacher or student profile by class and
	// display name.
	UserProfile(ctx context.Context, member, class, name string) (interface{}, error)
}

// adminServiceImpl implements the AdminService interface
type adminServiceImpl struct {
	admins   AdminStore
	teachers TeacherStore
	students StudentStore
	catalog  *catalog.Catalog
}

// NewAdminService creates a new admin service instance
func NewAdminService(admins AdminStore, teachers TeacherStore, students StudentStore, cat *catalog.Catalog) AdminService {
	return &adminServiceImpl{
		admins:   admins,
		teachers: teachers,
		students: students,
		catalog:  cat,
	}
}

func (s *adminServiceImpl) Register(ctx context.Context, req *dto.RegisterAdminRequest) (*models.Admin, error) {
	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	admin := &models.Admin{
		Name:     req.Name,
		Email:    req.Email,
		Password: hash,
	}
	if err := s.admins.Create(ctx, admin); err != nil {
		return nil, err
	}
	return admin, nil
}

func (s *adminServiceImpl) Classes() []string {
	return s.catalog.Classes
}

func (s *adminServiceImpl) ClassMembers(ctx context.Context, class string) ([]string, error) {
	if !s.catalog.ValidClass(class) {
		return nil, apperrors.NewCatalogError(fmt.Sprintf("%q is not a recognized class", class))
	}

	names, err := s.teachers.GetNamesByClass(ctx, class)
	if err != nil {
		return nil, err
	}

	students, err := s.students.GetByClass(ctx, class)
	if err != nil {
		return nil, err
	}

	members := make([]string, 0, len(names)+len(students))
	members = append(members, names...)
	for _, st := range students {
		members = append(members, st.DisplayName())
	}
	return members, nil
}

func (s *adminServiceImpl) UserProfile(ctx context.Context, member, class, name string) (interface{}, error) {
	if !s.catalog.ValidClass(class) {
		return nil, apperrors.NewCatalogError(fmt.Sprintf("%q is not a recognized class", class))
	}

	switch member {
	case "teacher":
		teachers, err := s.teachers.GetAll(ctx)
		if err != nil {
			return nil, err
		}
		for _, t := range teachers {
			if t.Name == name && t.Teaches(class) {
				return dto.NewTeacherResponse(t), nil
			}
		}
		return nil, apperrors.ErrTeacherNotFound
	case "student":
		students, err := s.students.GetByClass(ctx, class)
		if err != nil {
			return nil, err
		}
		for _, st := range students {
			if st.DisplayName() == name {
				return dto.NewStudentResponse(st), nil
			}
		}
		return nil, apperrors.ErrStudentNotFound
	default:
		return nil, apperrors.NewValidationError(fmt.Sprintf("%q is not a profile kind, expected teacher or student", member))
	}
}
