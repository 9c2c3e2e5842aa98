package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/olamide/gradekeeper/internal/app/models"
	"github.com/olamide/gradekeeper/internal/app/models/dto"
	"github.com/olamide/gradekeeper/internal/app/services"
	"github.com/olamide/gradekeeper/internal/middleware"
	"github.com/olamide/gradekeeper/internal/pkg/catalog"
)

// TeacherController handles teacher registration, the teacher-side
// enrollment operations and the grade ledger endpoints
type TeacherController struct {
	teacherService services.TeacherService
	gradeService   services.GradeService
	catalog        *catalog.Catalog
}

// NewTeacherController creates a new TeacherController
func NewTeacherController(teacherService services.TeacherService, gradeService services.GradeService, cat *catalog.Catalog) *TeacherController {
	return &TeacherController{
		teacherService: teacherService,
		gradeService:   gradeService,
		catalog:        cat,
	}
}

// teacherFromContext unwraps the authenticated teacher or writes a 401.
func teacherFromContext(ctx *gin.Context) (*models.Teacher, bool) {
	teacher, ok := middleware.TeacherFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "authentication required")))
		return nil, false
	}
	return teacher, true
}

// Register creates a teacher, links its subjects and claims its class.
func (c *TeacherController) Register(ctx *gin.Context) {
	var req dto.RegisterTeacherRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "invalid teacher data", err)
		return
	}

	teacher, err := c.teacherService.Register(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewTeacherResponse(teacher))
}

// Delete removes a teacher by primary key. Subject links and their results
// cascade; students are detached.
func (c *TeacherController) Delete(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		badRequest(ctx, "id must be numeric", err)
		return
	}

	if err := c.teacherService.Delete(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "teacher deleted"})
}

// Students lists the students assigned to the authenticated teacher.
func (c *TeacherController) Students(ctx *gin.Context) {
	teacher, ok := teacherFromContext(ctx)
	if !ok {
		return
	}

	students, err := c.teacherService.Students(ctx, teacher)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewStudentResponses(students))
}

// StudentsBySubject lists the students of a class enrolled in a subject.
func (c *TeacherController) StudentsBySubject(ctx *gin.Context) {
	teacher, ok := teacherFromContext(ctx)
	if !ok {
		return
	}

	students, err := c.teacherService.StudentsBySubject(ctx, teacher,
		ctx.Param("subject"), ctx.Param("class"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewStudentResponses(students))
}

// GetClasses returns the class catalog.
func (c *TeacherController) GetClasses(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"classes": c.catalog.Classes})
}

// GetSubjects lists the subjects the authenticated teacher is linked to.
func (c *TeacherController) GetSubjects(ctx *gin.Context) {
	teacher, ok := teacherFromContext(ctx)
	if !ok {
		return
	}

	subjects, err := c.teacherService.Subjects(ctx, teacher)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	names := make([]string, 0, len(subjects))
	for _, s := range subjects {
		names = append(names, s.Name)
	}
	ctx.JSON(http.StatusOK, gin.H{"subjects": names})
}

// RegisterStudentSubjects enrolls a student of the teacher's own class in
// the named subjects.
func (c *TeacherController) RegisterStudentSubjects(ctx *gin.Context) {
	teacher, ok := teacherFromContext(ctx)
	if !ok {
		return
	}

	var req dto.RegisterSubjectsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "invalid subject registration data", err)
		return
	}

	err := c.teacherService.RegisterStudentSubjects(ctx, teacher,
		ctx.Param("class"), ctx.Param("studentId"), req.Subjects)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.SuccessResponse{Message: "subjects registered"})
}

// PostGrades records a batch of scores for one subject, term and session.
// The batch is atomic: a single bad entry persists nothing.
func (c *TeacherController) PostGrades(ctx *gin.Context) {
	teacher, ok := teacherFromContext(ctx)
	if !ok {
		return
	}

	var req dto.PostGradesRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "invalid grade data", err)
		return
	}

	err := c.gradeService.PostGrades(ctx, teacher,
		ctx.Param("subject"), ctx.Param("class"), ctx.Param("term"), ctx.Param("session"), req.Grades)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.SuccessResponse{Message: "grades recorded"})
}

// GetGrades returns a student's results for a term and session. The student
// must be in the caller's class.
func (c *TeacherController) GetGrades(ctx *gin.Context) {
	teacher, ok := teacherFromContext(ctx)
	if !ok {
		return
	}

	results, err := c.gradeService.Grades(ctx, teacher,
		ctx.Param("studentId"), ctx.Param("class"), ctx.Param("term"), ctx.Param("session"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewStudentResultResponses(results))
}
