package services

import (
	"context"
	"fmt"
	"regexp"

	"github.com/olamide/gradekeeper/internal/app/models"
	"github.com/olamide/gradekeeper/internal/app/models/dto"
	"github.com/olamide/gradekeeper/internal/pkg/apperrors"
	"github.com/olamide/gradekeeper/internal/pkg/catalog"
)

// GradeLinkStore resolves the enrollment links grades attach to.
// Satisfied by repositories.SubjectRepository.
type GradeLinkStore interface {
	GetTeacherSubject(ctx context.Context, teacherID int64, subjectName string) (*models.TeacherSubject, error)
	GetStudentSubject(ctx context.Context, studentID string, subjectID int64) (*models.StudentSubject, error)
}

// ResultStore is the grade record persistence surface.
// Satisfied by repositories.ResultRepository.
type ResultStore interface {
	CreateBatch(ctx context.Context, results []*models.Result) error
	GetByStudent(ctx context.Context, studentID, term, session string) ([]*models.StudentResult, error)
}

// sessionPattern matches an academic session like "2023-2024".
var sessionPattern = regexp.MustCompile(`^\d{4}-\d{4}$`)

// GradeService defines the interface for posting and reading grade records
type GradeService interface {
	// PostGrades records a batch of scores for one subject, class, term
	// and session. The whole batch lands or none of it does.
	PostGrades(ctx context.Context, teacher *models.Teacher, subjectName, class, term, session string, entries []dto.GradeEntry) error
	// Grades returns a student's results for a term and session. The
	// student must exist and be in the caller's class.
	Grades(ctx context.Context, teacher *models.Teacher, studentID, class, term, session string) ([]*models.StudentResult, error)
}

// gradeServiceImpl implements the GradeService interface
type gradeServiceImpl struct {
	links    GradeLinkStore
	results  ResultStore
	students StudentStore
	catalog  *catalog.Catalog
}

// NewGradeService creates a new grade service instance
func NewGradeService(links GradeLinkStore, results ResultStore, students StudentStore, cat *catalog.Catalog) GradeService {
	return &gradeServiceImpl{
		links:    links,
		results:  results,
		students: students,
		catalog:  cat,
	}
}

// validateTermSession checks the term against the catalog and the session
// against the YYYY-YYYY form.
func (s *gradeServiceImpl) validateTermSession(term, session string) error {
	if !s.catalog.ValidTerm(term) {
		return apperrors.NewCatalogError(fmt.Sprintf("%q is not a recognized term", term))
	}
	if !sessionPattern.MatchString(session) {
		return apperrors.NewCatalogError(fmt.Sprintf("%q is not a valid session, expected e.g. 2023-2024", session))
	}
	return nil
}

func (s *gradeServiceImpl) PostGrades(ctx context.Context, teacher *models.Teacher, subjectName, class, term, session string, entries []dto.GradeEntry) error {
	if !s.catalog.ValidSubject(subjectName) {
		return apperrors.NewCatalogError(fmt.Sprintf("%q is not a recognized subject", subjectName))
	}
	if !s.catalog.ValidClass(class) {
		return apperrors.NewCatalogError(fmt.Sprintf("%q is not a recognized class", class))
	}
	if err := s.validateTermSession(term, session); err != nil {
		return err
	}

	teacherSubject, err := s.links.GetTeacherSubject(ctx, teacher.ID, subjectName)
	if err != nil {
		return err
	}

	// Resolve every enrollment before writing anything, so a bad entry
	// cannot leave a partial batch behind.
	results := make([]*models.Result, 0, len(entries))
	for _, entry := range entries {
		studentSubject, err := s.links.GetStudentSubject(ctx, entry.StudentID, teacherSubject.SubjectID)
		if err != nil {
			return err
		}
		results = append(results, &models.Result{
			StudentSubjectID: studentSubject.ID,
			TeacherSubjectID: teacherSubject.ID,
			CAScore:          entry.CAScore,
			ExamScore:        entry.ExamScore,
			Term:             term,
			Session:          session,
		})
	}

	return s.results.CreateBatch(ctx, results)
}

func (s *gradeServiceImpl) Grades(ctx context.Context, teacher *models.Teacher, studentID, class, term, session string) ([]*models.StudentResult, error) {
	if !s.catalog.ValidClass(class) {
		return nil, apperrors.NewCatalogError(fmt.Sprintf("%q is not a recognized class", class))
	}
	if err := s.validateTermSession(term, session); err != nil {
		return nil, err
	}

	student, err := s.students.GetByStudentID(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if student.StudentClass != class || !teacher.Teaches(student.StudentClass) {
		return nil, apperrors.ErrNotClassTeacher
	}

	return s.results.GetByStudent(ctx, student.StudentID, term, session)
}
