package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/olamide/gradekeeper/internal/app/models/dto"
	"github.com/olamide/gradekeeper/internal/app/services"
	"github.com/olamide/gradekeeper/internal/middleware"
)

// AdminController handles admin registration and the admin dashboards
type AdminController struct {
	adminService    services.AdminService
	teacherService  services.TeacherService
	studentService  services.StudentService
	guardianService services.GuardianService
}

// NewAdminController creates a new AdminController
func NewAdminController(
	adminService services.AdminService,
	teacherService services.TeacherService,
	studentService services.StudentService,
	guardianService services.GuardianService,
) *AdminController {
	return &AdminController{
		adminService:    adminService,
		teacherService:  teacherService,
		studentService:  studentService,
		guardianService: guardianService,
	}
}

// Register creates a new admin account.
func (c *AdminController) Register(ctx *gin.Context) {
	var req dto.RegisterAdminRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "invalid admin data", err)
		return
	}

	admin, err := c.adminService.Register(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"id":      admin.ID,
		"adminId": admin.AdminID,
		"name":    admin.Name,
		"email":   admin.Email,
	})
}

// GetTeachers lists all teachers.
func (c *AdminController) GetTeachers(ctx *gin.Context) {
	teachers, err := c.teacherService.GetAll(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewTeacherResponses(teachers))
}

// GetStudents lists all students.
func (c *AdminController) GetStudents(ctx *gin.Context) {
	students, err := c.studentService.GetAll(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewStudentResponses(students))
}

// GetGuardians lists all guardians.
func (c *AdminController) GetGuardians(ctx *gin.Context) {
	guardians, err := c.guardianService.GetAll(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewGuardianResponses(guardians))
}

// GetClasses returns the class catalog.
func (c *AdminController) GetClasses(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"classes": c.adminService.Classes()})
}

// ClassMembers returns the roster of a class: teachers first, then
// students, each group sorted.
func (c *AdminController) ClassMembers(ctx *gin.Context) {
	members, err := c.adminService.ClassMembers(ctx, ctx.Param("class"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"members": members})
}

// UserProfile looks up a teacher or student profile by class and name.
func (c *AdminController) UserProfile(ctx *gin.Context) {
	profile, err := c.adminService.UserProfile(ctx,
		ctx.Param("member"), ctx.Param("class"), ctx.Param("name"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, profile)
}
