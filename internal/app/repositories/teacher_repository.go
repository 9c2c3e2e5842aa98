package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/olamide/gradekeeper/internal/app/models"
	"github.com/olamide/gradekeeper/internal/pkg/apperrors"
	"github.com/olamide/gradekeeper/internal/pkg/dberrors"
	"github.com/olamide/gradekeeper/internal/pkg/identifier"
	"github.com/olamide/gradekeeper/internal/pkg/logger"
)

// TeacherRepository handles teacher database operations
type TeacherRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewTeacherRepository creates a new TeacherRepository
func NewTeacherRepository(db *pgxpool.Pool) *TeacherRepository {
	return &TeacherRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

const teacherColumns = "id, title, name, email, teacher_id, gender, address, mobile_no, password, class_taught, reg_date"

func scanTeacher(row pgx.Row) (*models.Teacher, error) {
	teacher := &models.Teacher{}
	err := row.Scan(&teacher.ID, &teacher.Title, &teacher.Name, &teacher.Email,
		&teacher.TeacherID, &teacher.Gender, &teacher.Address, &teacher.MobileNo,
		&teacher.Password, &teacher.ClassTaught, &teacher.RegDate)
	if err != nil {
		return nil, err
	}
	return teacher, nil
}

// Create registers a teacher in one transaction: the registration number is
// minted from the row count, the teacher row inserted, subject links
// resolved (subject rows created if absent), and every existing student of
// the claimed class pointed at the new teacher.
func (r *TeacherRepository) Create(ctx context.Context, teacher *models.Teacher, subjectNames []string) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var count int
	if err := tx.QueryRow(ctx, `SELECT COUNT(*) FROM teachers`).Scan(&count); err != nil {
		return fmt.Errorf("failed to count teachers: %w", err)
	}
	teacher.TeacherID = identifier.Teacher(time.Now(), count+1)

	err = tx.QueryRow(ctx,
		`INSERT INTO teachers (title, name, email, teacher_id, gender, address, mobile_no, password, class_taught)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING id, reg_date`,
		teacher.Title, teacher.Name, teacher.Email, teacher.TeacherID,
		teacher.Gender, teacher.Address, teacher.MobileNo, teacher.Password,
		teacher.ClassTaught,
	).Scan(&teacher.ID, &teacher.RegDate)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "teachers_teacher_id_key") {
			return apperrors.NewConflictError("registration number already taken, retry the registration")
		}
		if dberrors.IsUniqueViolation(err) {
			return apperrors.NewConflictError("a teacher with this email already exists")
		}
		logger.Error().Err(err).Msg("Error inserting teacher")
		return fmt.Errorf("error creating teacher: %w", err)
	}

	for _, name := range subjectNames {
		subjectID, err := ensureSubject(ctx, tx, name)
		if err != nil {
			return err
		}
		_, err = tx.Exec(ctx,
			`INSERT INTO teacher_subjects (teacher_id, subject_id) VALUES ($1, $2)
			 ON CONFLICT ON CONSTRAINT uq_teacher_subject DO NOTHING`,
			teacher.ID, subjectID,
		)
		if err != nil {
			return fmt.Errorf("failed to link teacher to subject %q: %w", name, err)
		}
	}

	// Claiming a class re-points every student already in it.
	if teacher.ClassTaught != nil {
		_, err = tx.Exec(ctx,
			`UPDATE students SET teacher_id = $1 WHERE student_class = $2`,
			teacher.ID, *teacher.ClassTaught,
		)
		if err != nil {
			return fmt.Errorf("failed to assign class students to teacher: %w", err)
		}
	}

	return tx.Commit(ctx)
}

// GetByTeacherID retrieves a teacher by registration number
func (r *TeacherRepository) GetByTeacherID(ctx context.Context, teacherID string) (*models.Teacher, error) {
	return r.getOne(ctx, squirrel.Eq{"teacher_id": teacherID})
}

// GetByID retrieves a teacher by primary key
func (r *TeacherRepository) GetByID(ctx context.Context, id int64) (*models.Teacher, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id})
}

// GetByClass retrieves the teacher currently claiming a class, if any.
func (r *TeacherRepository) GetByClass(ctx context.Context, class string) (*models.Teacher, error) {
	return r.getOne(ctx, squirrel.Eq{"class_taught": class})
}

func (r *TeacherRepository) getOne(ctx context.Context, pred squirrel.Eq) (*models.Teacher, error) {
	sql, args, err := r.sb.Select(teacherColumns).
		From("teachers").
		Where(pred).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get teacher query: %w", err)
	}

	teacher, err := scanTeacher(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrTeacherNotFound
		}
		return nil, fmt.Errorf("error getting teacher: %w", err)
	}
	return teacher, nil
}

// GetAll retrieves all teachers ordered by name.
func (r *TeacherRepository) GetAll(ctx context.Context) ([]*models.Teacher, error) {
	sql, args, err := r.sb.Select(teacherColumns).
		From("teachers").
		OrderBy("name").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list teachers query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing teachers: %w", err)
	}
	defer rows.Close()

	var teachers []*models.Teacher
	for rows.Next() {
		teacher, err := scanTeacher(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning teacher row: %w", err)
		}
		teachers = append(teachers, teacher)
	}
	return teachers, rows.Err()
}

// GetNamesByClass lists the names of teachers claiming a class, sorted.
func (r *TeacherRepository) GetNamesByClass(ctx context.Context, class string) ([]string, error) {
	sql, args, err := r.sb.Select("name").
		From("teachers").
		Where(squirrel.Eq{"class_taught": class}).
		OrderBy("name").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build class teachers query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing class teachers: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("error scanning teacher name: %w", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// Delete removes a teacher. Subject links and their results cascade;
// students of the class are detached, not deleted.
func (r *TeacherRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM teachers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting teacher: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrTeacherNotFound
	}
	return nil
}

// UpdatePassword replaces the stored password hash.
func (r *TeacherRepository) UpdatePassword(ctx context.Context, id int64, hash string) error {
	tag, err := r.db.Exec(ctx, `UPDATE teachers SET password = $1 WHERE id = $2`, hash, id)
	if err != nil {
		return fmt.Errorf("error updating teacher password: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrTeacherNotFound
	}
	return nil
}
