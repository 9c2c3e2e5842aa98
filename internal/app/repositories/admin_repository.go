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
	"github.com/olamide/gradekeeper/internal/pkg/identifier"
	"github.com/olamide/gradekeeper/internal/pkg/logger"
)

// AdminRepository handles admin database operations
type AdminRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewAdminRepository creates a new AdminRepository
func NewAdminRepository(db *pgxpool.Pool) *AdminRepository {
	return &AdminRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

const adminColumns = "id, name, email, admin_id, password, reg_date"

func scanAdmin(row pgx.Row) (*models.Admin, error) {
	admin := &models.Admin{}
	err := row.Scan(&admin.ID, &admin.Name, &admin.Email, &admin.AdminID, &admin.Password, &admin.RegDate)
	if err != nil {
		return nil, err
	}
	return admin, nil
}

// Create inserts a new admin. The registration number is derived from the
// current row count inside the same transaction. Concurrent creates can
// read the same count and mint the same number; the UNIQUE constraint
// rejects the loser, surfaced as a retryable conflict.
func (r *AdminRepository) Create(ctx context.Context, admin *models.Admin) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var count int
	if err := tx.QueryRow(ctx, `SELECT COUNT(*) FROM admins`).Scan(&count); err != nil {
		return fmt.Errorf("failed to count admins: %w", err)
	}
	admin.AdminID = identifier.Admin(count + 1)

	err = tx.QueryRow(ctx,
		`INSERT INTO admins (name, email, admin_id, password)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, reg_date`,
		admin.Name, admin.Email, admin.AdminID, admin.Password,
	).Scan(&admin.ID, &admin.RegDate)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "admins_admin_id_key") {
			return apperrors.NewConflictError("registration number already taken, retry the registration")
		}
		if dberrors.IsUniqueViolation(err) {
			return apperrors.NewConflictError("an admin with this email already exists")
		}
		logger.Error().Err(err).Msg("Error inserting admin")
		return fmt.Errorf("error creating admin: %w", err)
	}

	return tx.Commit(ctx)
}

// GetByAdminID retrieves an admin by registration number
func (r *AdminRepository) GetByAdminID(ctx context.Context, adminID string) (*models.Admin, error) {
	sql, args, err := r.sb.Select(adminColumns).
		From("admins").
		Where(squirrel.Eq{"admin_id": adminID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get admin query: %w", err)
	}

	admin, err := scanAdmin(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAdminNotFound
		}
		return nil, fmt.Errorf("error getting admin by registration number: %w", err)
	}
	return admin, nil
}

// GetByID retrieves an admin by primary key
func (r *AdminRepository) GetByID(ctx context.Context, id int64) (*models.Admin, error) {
	sql, args, err := r.sb.Select(adminColumns).
		From("admins").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get admin query: %w", err)
	}

	admin, err := scanAdmin(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAdminNotFound
		}
		return nil, fmt.Errorf("error getting admin by ID: %w", err)
	}
	return admin, nil
}

// Count returns the number of admins in the store.
func (r *AdminRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM admins`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count admins: %w", err)
	}
	return count, nil
}

// UpdatePassword replaces the stored password hash.
func (r *AdminRepository) UpdatePassword(ctx context.Context, id int64, hash string) error {
	tag, err := r.db.Exec(ctx, `UPDATE admins SET password = $1 WHERE id = $2`, hash, id)
	if err != nil {
		return fmt.Errorf("error updating admin password: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrAdminNotFound
	}
	return nil
}
