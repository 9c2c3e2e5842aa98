package repositories

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/olamide/gradekeeper/internal/app/models"
)

// prefixColumns qualifies a comma-separated column list with a table alias
// for use in joined queries.
func prefixColumns(alias, columns string) string {
	cols := strings.Split(columns, ", ")
	for i, c := range cols {
		cols[i] = alias + "." + c
	}
	return strings.Join(cols, ", ")
}

// Repositories holds all the repository instances
type Repositories struct {
	AdminRepository    *AdminRepository
	TeacherRepository  *TeacherRepository
	StudentRepository  *StudentRepository
	GuardianRepository *GuardianRepository
	SubjectRepository  *SubjectRepository
	ResultRepository   *ResultRepository
	NewsRepository     *NewsRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		AdminRepository:    NewAdminRepository(db),
		TeacherRepository:  NewTeacherRepository(db),
		StudentRepository:  NewStudentRepository(db),
		GuardianRepository: NewGuardianRepository(db),
		SubjectRepository:  NewSubjectRepository(db),
		ResultRepository:   NewResultRepository(db),
		NewsRepository:     NewNewsRepository(db),
	}
}

// ResolvePrincipal looks up the principal of the given role by its external
// identifier: the registration number, or the email for guardians.
func (r *Repositories) ResolvePrincipal(ctx context.Context, role models.Role, externalID string) (models.Principal, error) {
	switch role {
	case models.RoleAdmin:
		return r.AdminRepository.GetByAdminID(ctx, externalID)
	case models.RoleTeacher:
		return r.TeacherRepository.GetByTeacherID(ctx, externalID)
	case models.RoleStudent:
		return r.StudentRepository.GetByStudentID(ctx, externalID)
	case models.RoleGuardian:
		return r.GuardianRepository.GetByEmail(ctx, externalID)
	default:
		return nil, models.ErrUnknownRole
	}
}

// UpdatePassword rotates the stored password hash of the principal of the
// given role and primary key.
func (r *Repositories) UpdatePassword(ctx context.Context, role models.Role, id int64, hash string) error {
	switch role {
	case models.RoleAdmin:
		return r.AdminRepository.UpdatePassword(ctx, id, hash)
	case models.RoleTeacher:
		return r.TeacherRepository.UpdatePassword(ctx, id, hash)
	case models.RoleStudent:
		return r.StudentRepository.UpdatePassword(ctx, id, hash)
	case models.RoleGuardian:
		return r.GuardianRepository.UpdatePassword(ctx, id, hash)
	default:
		return models.ErrUnknownRole
	}
}
