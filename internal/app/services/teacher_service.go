package services

import (
	"context"
	"fmt"

	"github.com/olamide/gradekeeper/internal/app/models"
	"github.com/olamide/gradekeeper/internal/app/models/dto"
	"github.com/olamide/gradekeeper/internal/pkg/apperrors"
	"github.com/olamide/gradekeeper/internal/pkg/auth"
	"github.com/olamide/gradekeeper/internal/pkg/catalog"
	"github.com/olamide/gradekeeper/internal/pkg/logger"
)

// TeacherStore is the teacher persistence surface the services consume.
// Satisfied by repositories.TeacherRepository.
type TeacherStore interface {
	Create(ctx context.Context, teacher *models.Teacher, subjectNames []string) error
	GetByID(ctx context.Context, id int64) (*models.Teacher, error)
	GetByClass(ctx context.Context, class string) (*models.Teacher, error)
	GetAll(ctx context.Context) ([]*models.Teacher, error)
	GetNamesByClass(ctx context.Context, class string) ([]string, error)
	Delete(ctx context.Context, id int64) error
}

// EnrollmentStore is the enrollment-link surface the services consume.
// Satisfied by repositories.SubjectRepository.
type EnrollmentStore interface {
	EnrollStudent(ctx context.Context, studentID string, subjectNames []string) error
	GetSubjectsByTeacher(ctx context.Context, teacherID int64) ([]*models.Subject, error)
}

// TeacherService defines the interface for teacher management and the
// teacher-side enrollment operations
type TeacherService interface {
	Register(ctx context.Context, req *dto.RegisterTeacherRequest) (*models.Teacher, error)
	Delete(ctx context.Context, id int64) error
	GetAll(ctx context.Context) ([]*models.Teacher, error)
	// Students lists the students assigned to the teacher.
	Students(ctx context.Context, teacher *models.Teacher) ([]*models.Student, error)
	// StudentsBySubject lists the students of a class enrolled in a subject.
	StudentsBySubject(ctx context.Context, teacher *models.Teacher, subjectName, class string) ([]*models.Student, error)
	// Subjects lists the subjects the teacher is linked to.
	Subjects(ctx context.Context, teacher *models.Teacher) ([]*models.Subject, error)
	// RegisterStudentSubjects enrolls a student of the teacher's own class
	// in the named subjects.
	RegisterStudentSubjects(ctx context.Context, teacher *models.Teacher, class, studentID string, subjectNames []string) error
}

// teacherServiceImpl implements the TeacherService interface
type teacherServiceImpl struct {
	teachers    TeacherStore
	students    StudentStore
	enrollments EnrollmentStore
	catalog     *catalog.Catalog
}

// NewTeacherService creates a new teacher service instance
func NewTeacherService(teachers TeacherStore, students StudentStore, enrollments EnrollmentStore, cat *catalog.Catalog) TeacherService {
	return &teacherServiceImpl{
		teachers:    teachers,
		students:    students,
		enrollments: enrollments,
		catalog:     cat,
	}
}

// validateSubjects checks every name against the subject catalog.
func (s *teacherServiceImpl) validateSubjects(subjectNames []string) error {
	for _, name := range subjectNames {
		if !s.catalog.ValidSubject(name) {
			return apperrors.NewCatalogError(fmt.Sprintf("%q is not a recognized subject", name))
		}
	}
	return nil
}

func (s *teacherServiceImpl) Register(ctx context.Context, req *dto.RegisterTeacherRequest) (*models.Teacher, error) {
	if err := s.validateSubjects(req.Subjects); err != nil {
		return nil, err
	}
	if req.ClassTaught != nil {
		if !s.catalog.ValidClass(*req.ClassTaught) {
			return nil, apperrors.NewCatalogError(fmt.Sprintf("%q is not a recognized class", *req.ClassTaught))
		}
		// A second claim on the same class wins silently; surface it in
		// the logs at least.
		if prev, err := s.teachers.GetByClass(ctx, *req.ClassTaught); err == nil {
			logger.Warn().
				Str("class", *req.ClassTaught).
				Str("previousTeacher", prev.TeacherID).
				Msg("Class already claimed by another teacher, reassigning")
		}
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	teacher := &models.Teacher{
		Title:       req.Title,
		Name:        req.Name,
		Email:       req.Email,
		Gender:      req.Gender,
		Address:     req.Address,
		MobileNo:    req.MobileNo,
		Password:    hash,
		ClassTaught: req.ClassTaught,
	}
	if err := s.teachers.Create(ctx, teacher, req.Subjects); err != nil {
		return nil, err
	}
	return teacher, nil
}

func (s *teacherServiceImpl) Delete(ctx context.Context, id int64) error {
	return s.teachers.Delete(ctx, id)
}

func (s *teacherServiceImpl) GetAll(ctx context.Context) ([]*models.Teacher, error) {
	return s.teachers.GetAll(ctx)
}

func (s *teacherServiceImpl) Students(ctx context.Context, teacher *models.Teacher) ([]*models.Student, error) {
	return s.students.GetByTeacher(ctx, teacher.ID)
}

func (s *teacherServiceImpl) StudentsBySubject(ctx context.Context, teacher *models.Teacher, subjectName, class string) ([]*models.Student, error) {
	if !s.catalog.ValidSubject(subjectName) {
		return nil, apperrors.NewCatalogError(fmt.Sprintf("%q is not a recognized subject", subjectName))
	}
	if !s.catalog.ValidClass(class) {
		return nil, apperrors.NewCatalogError(fmt.Sprintf("%q is not a recognized class", class))
	}
	return s.students.GetByClassAndSubject(ctx, class, subjectName)
}

func (s *teacherServiceImpl) Subjects(ctx context.Context, teacher *models.Teacher) ([]*models.Subject, error) {
	return s.enrollments.GetSubjectsByTeacher(ctx, teacher.ID)
}

func (s *teacherServiceImpl) RegisterStudentSubjects(ctx context.Context, teacher *models.Teacher, class, studentID string, subjectNames []string) error {
	if !teacher.Teaches(class) {
		return apperrors.ErrNotClassTeacher
	}
	if err := s.validateSubjects(subjectNames); err != nil {
		return err
	}

	student, err := s.students.GetByStudentID(ctx, studentID)
	if err != nil {
		return err
	}
	if student.StudentClass != class {
		return apperrors.ErrNotClassTeacher
	}

	return s.enrollments.EnrollStudent(ctx, student.StudentID, subjectNames)
}
