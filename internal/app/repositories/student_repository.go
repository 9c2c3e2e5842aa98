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

// StudentRepository handles student database operations
type StudentRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

const studentColumns = "id, firstname, lastname, middlename, email, address, gender, student_class, student_id, password, department, reg_date, parent_id, teacher_id"

func scanStudent(row pgx.Row) (*models.Student, error) {
	student := &models.Student{}
	err := row.Scan(&student.ID, &student.FirstName, &student.LastName,
		&student.MiddleName, &student.Email, &student.Address, &student.Gender,
		&student.StudentClass, &student.StudentID, &student.Password,
		&student.Department, &student.RegDate, &student.ParentID, &student.TeacherID)
	if err != nil {
		return nil, err
	}
	return student, nil
}

// Create registers a student in one transaction: the registration number is
// minted from the row count and the student is attached to the teacher
// already claiming the class, when one exists.
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var count int
	if err := tx.QueryRow(ctx, `SELECT COUNT(*) FROM students`).Scan(&count); err != nil {
		return fmt.Errorf("failed to count students: %w", err)
	}
	student.StudentID = identifier.Student(time.Now(), count+1)

	if student.TeacherID == nil {
		var teacherID int64
		err := tx.QueryRow(ctx,
			`SELECT id FROM teachers WHERE class_taught = $1 LIMIT 1`,
			student.StudentClass,
		).Scan(&teacherID)
		switch {
		case err == nil:
			student.TeacherID = &teacherID
		case errors.Is(err, pgx.ErrNoRows):
			// No teacher has claimed the class yet; a later claim re-points
			// this student retroactively.
		default:
			return fmt.Errorf("failed to look up class teacher: %w", err)
		}
	}

	err = tx.QueryRow(ctx,
		`INSERT INTO students (firstname, lastname, middlename, email, address, gender, student_class, student_id, password, department, parent_id, teacher_id)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		 RETURNING id, reg_date`,
		student.FirstName, student.LastName, student.MiddleName, student.Email,
		student.Address, student.Gender, student.StudentClass, student.StudentID,
		student.Password, student.Department, student.ParentID, student.TeacherID,
	).Scan(&student.ID, &student.RegDate)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "students_student_id_key") {
			return apperrors.NewConflictError("registration number already taken, retry the registration")
		}
		if dberrors.IsUniqueViolation(err) {
			return apperrors.NewConflictError("a student with this email already exists")
		}
		logger.Error().Err(err).Msg("Error inserting student")
		return fmt.Errorf("error creating student: %w", err)
	}

	return tx.Commit(ctx)
}

// GetByStudentID retrieves a student by registration number
func (r *StudentRepository) GetByStudentID(ctx context.Context, studentID string) (*models.Student, error) {
	return r.getOne(ctx, squirrel.Eq{"student_id": studentID})
}

// GetByID retrieves a student by primary key
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id})
}

func (r *StudentRepository) getOne(ctx context.Context, pred squirrel.Eq) (*models.Student, error) {
	sql, args, err := r.sb.Select(studentColumns).
		From("students").
		Where(pred).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get student query: %w", err)
	}

	student, err := scanStudent(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error getting student: %w", err)
	}
	return student, nil
}

// GetAll retrieves all students ordered by last name then first name.
func (r *StudentRepository) GetAll(ctx context.Context) ([]*models.Student, error) {
	return r.list(ctx, nil)
}

// GetByClass retrieves the students of a class ordered by last name then
// first name, the order the roster renders them in.
func (r *StudentRepository) GetByClass(ctx context.Context, class string) ([]*models.Student, error) {
	return r.list(ctx, squirrel.Eq{"student_class": class})
}

// GetByTeacher retrieves the students assigned to a teacher.
func (r *StudentRepository) GetByTeacher(ctx context.Context, teacherID int64) ([]*models.Student, error) {
	return r.list(ctx, squirrel.Eq{"teacher_id": teacherID})
}

// GetByParent retrieves a guardian's children.
func (r *StudentRepository) GetByParent(ctx context.Context, parentID int64) ([]*models.Student, error) {
	return r.list(ctx, squirrel.Eq{"parent_id": parentID})
}

func (r *StudentRepository) list(ctx context.Context, pred squirrel.Eq) ([]*models.Student, error) {
	builder := r.sb.Select(studentColumns).
		From("students").
		OrderBy("lastname", "firstname")
	if pred != nil {
		builder = builder.Where(pred)
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list students query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing students: %w", err)
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		student, err := scanStudent(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning student row: %w", err)
		}
		students = append(students, student)
	}
	return students, rows.Err()
}

// GetByClassAndSubject retrieves the students of a class enrolled in the
// named subject.
func (r *StudentRepository) GetByClassAndSubject(ctx context.Context, class, subjectName string) ([]*models.Student, error) {
	sql, args, err := r.sb.Select(prefixColumns("st", studentColumns)).
		From("students st").
		Join("student_subjects ss ON ss.student_id = st.student_id").
		Join("subjects s ON s.id = ss.subject_id").
		Where(squirrel.Eq{"st.student_class": class, "s.subject": subjectName}).
		OrderBy("st.lastname", "st.firstname").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build class subject students query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing students by class and subject: %w", err)
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		student, err := scanStudent(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning student row: %w", err)
		}
		students = append(students, student)
	}
	return students, rows.Err()
}

// Delete removes a student. Enrollment links and their results cascade.
func (r *StudentRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM students WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting student: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}
	return nil
}

// UpdatePassword replaces the stored password hash.
func (r *StudentRepository) UpdatePassword(ctx context.Context, id int64, hash string) error {
	tag, err := r.db.Exec(ctx, `UPDATE students SET password = $1 WHERE id = $2`, hash, id)
	if err != nil {
		return fmt.Errorf("error updating student password: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}
	return nil
}
