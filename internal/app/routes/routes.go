// Package routes mounts the HTTP surface: the public sign-in and newsletter
// reads, and the role-gated admin, student, teacher and guardian groups.
package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/olamide/gradekeeper/internal/app/controllers"
	"github.com/olamide/gradekeeper/internal/app/models"
	"github.com/olamide/gradekeeper/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	adminController *controllers.AdminController,
	studentController *controllers.StudentController,
	teacherController *controllers.TeacherController,
	guardianController *controllers.GuardianController,
	newsController *controllers.NewsController,
	authMiddleware *middleware.AuthMiddleware,
) {
	requireAdmin := authMiddleware.Require(models.RoleAdmin)
	requireTeacher := authMiddleware.Require(models.RoleTeacher)
	requireStudent := authMiddleware.Require(models.RoleStudent)
	requireGuardian := authMiddleware.Require(models.RoleGuardian)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// The only unauthenticated mutation entry point.
	router.POST("/auth/token/sign-in", authController.SignIn)

	admin := router.Group("/admin", requireAdmin)
	{
		admin.POST("/register", adminController.Register)
		admin.GET("/teachers", adminController.GetTeachers)
		admin.GET("/students", adminController.GetStudents)
		admin.GET("/get-classes", adminController.GetClasses)
		admin.GET("/user-profile/:member/:class/:name", adminController.UserProfile)
		admin.GET("/:class/members", adminController.ClassMembers)
		admin.PUT("/password", authController.ChangePassword)
	}

	student := router.Group("/student")
	{
		student.POST("/register", requireAdmin, studentController.Register)
		student.DELETE("/:id", requireAdmin, studentController.Delete)
		student.PUT("/password", requireStudent, authController.ChangePassword)
	}

	teacher := router.Group("/teacher")
	{
		teacher.POST("/register", requireAdmin, teacherController.Register)
		teacher.DELETE("/:id", requireAdmin, teacherController.Delete)
		teacher.PUT("/password", requireTeacher, authController.ChangePassword)
		teacher.GET("/all-students", requireTeacher, teacherController.Students)
		teacher.GET("/get-classes", requireTeacher, teacherController.GetClasses)
		teacher.GET("/get-subjects", requireTeacher, teacherController.GetSubjects)
		teacher.GET("/students/:subject/:class", requireTeacher, teacherController.StudentsBySubject)
		teacher.POST("/register-subject/:class/:studentId", requireTeacher, teacherController.RegisterStudentSubjects)
		teacher.POST("/grades/:session/:term/:class/:subject", requireTeacher, teacherController.PostGrades)
		teacher.GET("/grades/:session/:term/:class/:studentId", requireTeacher, teacherController.GetGrades)
	}

	guardian := router.Group("/guardian")
	{
		guardian.POST("/register", requireAdmin, guardianController.Register)
		guardian.DELETE("/:id", requireAdmin, guardianController.Delete)
		guardian.PUT("/password", requireGuardian, authController.ChangePassword)
		guardian.GET("/", requireAdmin, adminController.GetGuardians)
		guardian.GET("/children", requireGuardian, guardianController.Children)
	}

	newsletter := router.Group("/newsletter")
	{
		newsletter.POST("", requireAdmin, newsController.Create)
		newsletter.GET("", newsController.List)
		newsletter.GET("/:id", newsController.Get)
		newsletter.DELETE("/:id", requireAdmin, newsController.Delete)
	}
}
