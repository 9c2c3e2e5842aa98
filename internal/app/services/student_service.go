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

// StudentStore is the student persistence surface the services consume.
// Satisfied by repositories.StudentRepository.
type StudentStore interface {
	Create(ctx context.Context, student *models.Student) error
	GetByStudentID(ctx context.Context, studentID string) (*models.Student, error)
	GetByID(ctx context.Context, id int64) (*models.Student, error)
	GetAll(ctx context.Context) ([]*models.Student, error)
	GetByClass(ctx context.Context, class string) ([]*models.Student, error)
	GetByTeacher(ctx context.Context, teacherID int64) ([]*models.Student, error)
	GetByParent(ctx context.Context, parentID int64) ([]*models.Student, error)
	GetByClassAndSubject(ctx context.Context, class, subjectName string) ([]*models.Student, error)
	Delete(ctx context.Context, id int64) error
}

// StudentService defines the interface for student management
type StudentService interface {
	// Register creates a student; parentID optionally links an existing
	// guardian at creation time.
	Register(ctx context.Context, req *dto.RegisterStudentRequest, parentID *int64) (*models.Student, error)
	Delete(ctx context.Context, id int64) error
	GetAll(ctx context.Context) ([]*models.Student, error)
	// Children lists a guardian's students.
	Children(ctx context.Context, guardian *models.Guardian) ([]*models.Student, error)
}

// studentServiceImpl implements the StudentService interface
type studentServiceImpl struct {
	students StudentStore
	catalog  *catalog.Catalog
}

// NewStudentService creates a new student service instance
func NewStudentService(students StudentStore, cat *catalog.Catalog) StudentService {
	return &studentServiceImpl{
		students: students,
		catalog:  cat,
	}
}

func (s *studentServiceImpl) Register(ctx context.Context, req *dto.RegisterStudentRequest, parentID *int64) (*models.Student, error) {
	if !s.catalog.ValidClass(req.StudentClass) {
		return nil, apperrors.NewCatalogError(fmt.Sprintf("%q is not a recognized class", req.StudentClass))
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	student := &models.Student{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		MiddleName:   req.MiddleName,
		Email:        req.Email,
		Address:      req.Address,
		Gender:       req.Gender,
		StudentClass: req.StudentClass,
		Password:     hash,
		Department:   req.Department,
		ParentID:     parentID,
	}
	if err := s.students.Create(ctx, student); err != nil {
		return nil, err
	}
	return student, nil
}

func (s *studentServiceImpl) Delete(ctx context.Context, id int64) error {
	return s.students.Delete(ctx, id)
}

func (s *studentServiceImpl) GetAll(ctx context.Context) ([]*models.Student, error) {
	return s.students.GetAll(ctx)
}

func (s *studentServiceImpl) Children(ctx context.Context, guardian *models.Guardian) ([]*models.Student, error) {
	return s.students.GetByParent(ctx, guardian.ID)
}
