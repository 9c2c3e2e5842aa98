// Package seed creates the bootstrap admin account. Every other principal
// is created through admin-only endpoints, so without a seeded admin the
// API would be unreachable on a fresh database.
package seed

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/olamide/gradekeeper/internal/app/models"
	"github.com/olamide/gradekeeper/internal/app/repositories"
	"github.com/olamide/gradekeeper/internal/config"
	"github.com/olamide/gradekeeper/internal/pkg/auth"
)

// CreateDefaultData creates the bootstrap admin if no admin exists yet.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, cfg *config.Config, lgr zerolog.Logger) error {
	adminRepo := repositories.NewAdminRepository(dbPool)

	count, err := adminRepo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		lgr.Debug().Int("admins", count).Msg("Admin accounts present, skipping bootstrap")
		return nil
	}

	if cfg.Bootstrap.AdminPassword == "" {
		lgr.Warn().Msg("No bootstrap admin password configured and no admin exists; admin endpoints will be unreachable")
		return nil
	}

	hash, err := auth.HashPassword(cfg.Bootstrap.AdminPassword)
	if err != nil {
		return err
	}

	admin := &models.Admin{
		Name:     cfg.Bootstrap.AdminName,
		Email:    cfg.Bootstrap.AdminEmail,
		Password: hash,
	}
	if err := adminRepo.Create(ctx, admin); err != nil {
		return err
	}

	lgr.Info().Str("adminId", admin.AdminID).Str("email", admin.Email).Msg("Bootstrap admin created")
	return nil
}
