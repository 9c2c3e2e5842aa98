// Package services holds the domain logic: registration and its enrollment
// side effects, grade posting invariants, roster resolution, authentication.
// Each service is an interface consumed by the controllers; tests substitute
// in-memory fakes for the store interfaces.
package services

import (
	"github.com/olamide/gradekeeper/internal/app/repositories"
	"github.com/olamide/gradekeeper/internal/pkg/auth"
	"github.com/olamide/gradekeeper/internal/pkg/catalog"
	"github.com/olamide/gradekeeper/internal/pkg/filestorage"
)

// Services holds all the service instances
type Services struct {
	AuthService     AuthService
	AdminService    AdminService
	StudentService  StudentService
	TeacherService  TeacherService
	GuardianService GuardianService
	GradeService    GradeService
	NewsService     NewsService
}

// NewServices wires all services to the repositories and shared
// collaborators.
func NewServices(repos *repositories.Repositories, jwtService *auth.JWTService, cat *catalog.Catalog, storage *filestorage.LocalStorage) *Services {
	return &Services{
		AuthService:     NewAuthService(repos, jwtService),
		AdminService:    NewAdminService(repos.AdminRepository, repos.TeacherRepository, repos.StudentRepository, cat),
		StudentService:  NewStudentService(repos.StudentRepository, cat),
		TeacherService:  NewTeacherService(repos.TeacherRepository, repos.StudentRepository, repos.SubjectRepository, cat),
		GuardianService: NewGuardianService(repos.GuardianRepository),
		GradeService:    NewGradeService(repos.SubjectRepository, repos.ResultRepository, repos.StudentRepository, cat),
		NewsService:     NewNewsService(repos.NewsRepository, storage),
	}
}
