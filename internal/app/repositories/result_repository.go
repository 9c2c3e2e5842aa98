package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/olamide/gradekeeper/internal/app/models"
)

// ResultRepository handles grade record database operations. Results are
// append-only: no update or delete method exists.
type ResultRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewResultRepository creates a new ResultRepository
func NewResultRepository(db *pgxpool.Pool) *ResultRepository {
	return &ResultRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// CreateBatch inserts a batch of results in one transaction. Either every
// entry lands or none does.
func (r *ResultRepository) CreateBatch(ctx context.Context, results []*models.Result) error {
	if len(results) == 0 {
		return nil
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, result := range results {
		err := tx.QueryRow(ctx,
			`INSERT INTO results (student_subject_id, teacher_subject_id, c_a_score, exam_score, term, session)
			 VALUES ($1, $2, $3, $4, $5, $6)
			 RETURNING id, time_logged`,
			result.StudentSubjectID, result.TeacherSubjectID,
			result.CAScore, result.ExamScore, result.Term, result.Session,
		).Scan(&result.ID, &result.TimeLogged)
		if err != nil {
			return fmt.Errorf("error inserting result: %w", err)
		}
	}

	return tx.Commit(ctx)
}

// GetByStudent retrieves a student's results joined to the subject name,
// filtered by term and session.
func (r *ResultRepository) GetByStudent(ctx context.Context, studentID, term, session string) ([]*models.StudentResult, error) {
	sql, args, err := r.sb.Select(
		"res.id", "res.student_subject_id", "res.teacher_subject_id",
		"res.c_a_score", "res.exam_score", "res.term", "res.session",
		"res.time_logged", "s.subject").
		From("results res").
		Join("student_subjects ss ON ss.id = res.student_subject_id").
		Join("subjects s ON s.id = ss.subject_id").
		Where(squirrel.Eq{"ss.student_id": studentID, "res.term": term, "res.session": session}).
		OrderBy("s.subject").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build student results query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing student results: %w", err)
	}
	defer rows.Close()

	var results []*models.StudentResult
	for rows.Next() {
		sr := &models.StudentResult{}
		err := rows.Scan(&sr.ID, &sr.StudentSubjectID, &sr.TeacherSubjectID,
			&sr.CAScore, &sr.ExamScore, &sr.Term, &sr.Session,
			&sr.TimeLogged, &sr.Subject)
		if err != nil {
			return nil, fmt.Errorf("error scanning result row: %w", err)
		}
		results = append(results, sr)
	}
	return results, rows.Err()
}
