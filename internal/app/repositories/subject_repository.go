package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/olamide/gradekeeper/internal/app/models"
	"github.com/olamide/gradekeeper/internal/pkg/apperrors"
)

// SubjectRepository handles subject and enrollment-link database operations
type SubjectRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewSubjectRepository creates a new SubjectRepository
func NewSubjectRepository(db *pgxpool.Pool) *SubjectRepository {
	return &SubjectRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// ensureSubject resolves a subject row by name inside tx, creating it if
// absent. The no-op DO UPDATE makes the RETURNING clause yield the id on
// both the insert and the conflict path.
func ensureSubject(ctx context.Context, tx pgx.Tx, name string) (int64, error) {
	var id int64
	err := tx.QueryRow(ctx,
		`INSERT INTO subjects (subject) VALUES ($1)
		 ON CONFLICT (subject) DO UPDATE SET subject = EXCLUDED.subject
		 RETURNING id`,
		name,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to resolve subject %q: %w", name, err)
	}
	return id, nil
}

// GetByName retrieves a subject by its unique name.
func (r *SubjectRepository) GetByName(ctx context.Context, name string) (*models.Subject, error) {
	sql, args, err := r.sb.Select("id", "subject").
		From("subjects").
		Where(squirrel.Eq{"subject": name}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get subject query: %w", err)
	}

	subject := &models.Subject{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(&subject.ID, &subject.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrSubjectNotFound
		}
		return nil, fmt.Errorf("error getting subject by name: %w", err)
	}
	return subject, nil
}

// GetTeacherSubject resolves the link proving a teacher teaches the named
// subject. Missing subject or missing link both surface as not-found; the
// grading service translates that into a Forbidden failure.
func (r *SubjectRepository) GetTeacherSubject(ctx context.Context, teacherID int64, subjectName string) (*models.TeacherSubject, error) {
	sql, args, err := r.sb.Select("ts.id", "ts.teacher_id", "ts.subject_id").
		From("teacher_subjects ts").
		Join("subjects s ON s.id = ts.subject_id").
		Where(squirrel.Eq{"ts.teacher_id": teacherID, "s.subject": subjectName}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get teacher subject query: %w", err)
	}

	link := &models.TeacherSubject{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(&link.ID, &link.TeacherID, &link.SubjectID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrSubjectNotTaught
		}
		return nil, fmt.Errorf("error getting teacher subject link: %w", err)
	}
	return link, nil
}

// GetStudentSubject resolves the enrollment link between a student (by
// registration number) and a subject.
func (r *SubjectRepository) GetStudentSubject(ctx context.Context, studentID string, subjectID int64) (*models.StudentSubject, error) {
	sql, args, err := r.sb.Select("id", "student_id", "subject_id").
		From("student_subjects").
		Where(squirrel.Eq{"student_id": studentID, "subject_id": subjectID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get student subject query: %w", err)
	}

	link := &models.StudentSubject{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(&link.ID, &link.StudentID, &link.SubjectID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotEnrolled
		}
		return nil, fmt.Errorf("error getting student subject link: %w", err)
	}
	return link, nil
}

// EnrollStudent links a student to each named subject in one transaction.
// Subject rows are resolved by name and created if absent; links already in
// place are left untouched, so re-registration is idempotent.
func (r *SubjectRepository) EnrollStudent(ctx context.Context, studentID string, subjectNames []string) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, name := range subjectNames {
		subjectID, err := ensureSubject(ctx, tx, name)
		if err != nil {
			return err
		}
		_, err = tx.Exec(ctx,
			`INSERT INTO student_subjects (student_id, subject_id) VALUES ($1, $2)
			 ON CONFLICT ON CONSTRAINT uq_student_subject DO NOTHING`,
			studentID, subjectID,
		)
		if err != nil {
			return fmt.Errorf("failed to enroll student %s in %q: %w", studentID, name, err)
		}
	}

	return tx.Commit(ctx)
}

// GetSubjectsByTeacher lists the subjects a teacher is linked to.
func (r *SubjectRepository) GetSubjectsByTeacher(ctx context.Context, teacherID int64) ([]*models.Subject, error) {
	sql, args, err := r.sb.Select("s.id", "s.subject").
		From("subjects s").
		Join("teacher_subjects ts ON ts.subject_id = s.id").
		Where(squirrel.Eq{"ts.teacher_id": teacherID}).
		OrderBy("s.subject").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build teacher subjects query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing teacher subjects: %w", err)
	}
	defer rows.Close()

	var subjects []*models.Subject
	for rows.Next() {
		subject := &models.Subject{}
		if err := rows.Scan(&subject.ID, &subject.Name); err != nil {
			return nil, fmt.Errorf("error scanning subject row: %w", err)
		}
		subjects = append(subjects, subject)
	}
	return subjects, rows.Err()
}
