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
	"github.com/olamide/gradekeeper/internal/pkg/dberrors"
	"github.com/olamide/gradekeeper/internal/pkg/logger"
)

// GuardianRepository handles guardian database operations
type GuardianRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewGuardianRepository creates a new GuardianRepository
func NewGuardianRepository(db *pgxpool.Pool) *GuardianRepository {
	return &GuardianRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

const guardianColumns = "id, title, name, email, gender, address, mobile_no, password, reg_date"

func scanGuardian(row pgx.Row) (*models.Guardian, error) {
	guardian := &models.Guardian{}
	err := row.Scan(&guardian.ID, &guardian.Title, &guardian.Name, &guardian.Email,
		&guardian.Gender, &guardian.Address, &guardian.MobileNo, &guardian.Password,
		&guardian.RegDate)
	if err != nil {
		return nil, err
	}
	return guardian, nil
}

// Create inserts a guardian and points the named children at it in one
// transaction. Registration numbers unknown to the store are skipped
// silently rather than failing the registration.
func (r *GuardianRepository) Create(ctx context.Context, guardian *models.Guardian, childStudentIDs []string) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx,
		`INSERT INTO guardians (title, name, email, gender, address, mobile_no, password)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id, reg_date`,
		guardian.Title, guardian.Name, guardian.Email, guardian.Gender,
		guardian.Address, guardian.MobileNo, guardian.Password,
	).Scan(&guardian.ID, &guardian.RegDate)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.NewConflictError("a guardian with this email already exists")
		}
		logger.Error().Err(err).Msg("Error inserting guardian")
		return fmt.Errorf("error creating guardian: %w", err)
	}

	if len(childStudentIDs) > 0 {
		tag, err := tx.Exec(ctx,
			`UPDATE students SET parent_id = $1 WHERE student_id = ANY($2)`,
			guardian.ID, childStudentIDs,
		)
		if err != nil {
			return fmt.Errorf("failed to link guardian children: %w", err)
		}
		if int(tag.RowsAffected()) < len(childStudentIDs) {
			logger.Warn().
				Int64("guardianID", guardian.ID).
				Int64("linked", tag.RowsAffected()).
				Int("requested", len(childStudentIDs)).
				Msg("Some child registration numbers were unknown and skipped")
		}
	}

	return tx.Commit(ctx)
}

// GetByEmail retrieves a guardian by email, the guardian login key.
func (r *GuardianRepository) GetByEmail(ctx context.Context, email string) (*models.Guardian, error) {
	return r.getOne(ctx, squirrel.Eq{"email": email})
}

// GetByID retrieves a guardian by primary key
func (r *GuardianRepository) GetByID(ctx context.Context, id int64) (*models.Guardian, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id})
}

func (r *GuardianRepository) getOne(ctx context.Context, pred squirrel.Eq) (*models.Guardian, error) {
	sql, args, err := r.sb.Select(guardianColumns).
		From("guardians").
		Where(pred).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get guardian query: %w", err)
	}

	guardian, err := scanGuardian(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrGuardianNotFound
		}
		return nil, fmt.Errorf("error getting guardian: %w", err)
	}
	return guardian, nil
}

// GetAll retrieves all guardians ordered by name.
func (r *GuardianRepository) GetAll(ctx context.Context) ([]*models.Guardian, error) {
	sql, args, err := r.sb.Select(guardianColumns).
		From("guardians").
		OrderBy("name").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list guardians query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing guardians: %w", err)
	}
	defer rows.Close()

	var guardians []*models.Guardian
	for rows.Next() {
		guardian, err := scanGuardian(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning guardian row: %w", err)
		}
		guardians = append(guardians, guardian)
	}
	return guardians, rows.Err()
}

// Delete removes a guardian. Children are detached by the schema, never
// deleted.
func (r *GuardianRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM guardians WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting guardian: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrGuardianNotFound
	}
	return nil
}

// UpdatePassword replaces the stored password hash.
func (r *GuardianRepository) UpdatePassword(ctx context.Context, id int64, hash string) error {
	tag, err := r.db.Exec(ctx, `UPDATE guardians SET password = $1 WHERE id = $2`, hash, id)
	if err != nil {
		return fmt.Errorf("error updating guardian password: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrGuardianNotFound
	}
	return nil
}
