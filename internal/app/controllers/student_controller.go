package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/olamide/gradekeeper/internal/app/models/dto"
	"github.com/olamide/gradekeeper/internal/app/services"
	"github.com/olamide/gradekeeper/internal/middleware"
)

// StudentController handles student registration and removal
type StudentController struct {
	studentService services.StudentService
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService services.StudentService) *StudentController {
	return &StudentController{studentService: studentService}
}

// Register creates a student. An optional parentID query parameter links an
// existing guardian at creation time.
func (c *StudentController) Register(ctx *gin.Context) {
	var req dto.RegisterStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "invalid student data", err)
		return
	}

	var parentID *int64
	if raw := ctx.Query("parentID"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			badRequest(ctx, "parentID must be numeric", err)
			return
		}
		parentID = &id
	}

	student, err := c.studentService.Register(ctx, &req, parentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewStudentResponse(student))
}

// Delete removes a student by primary key. Enrollment links and results
// cascade.
func (c *StudentController) Delete(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		badRequest(ctx, "id must be numeric", err)
		return
	}

	if err := c.studentService.Delete(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "student deleted"})
}
