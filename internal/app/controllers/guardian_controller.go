package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/olamide/gradekeeper/internal/app/models/dto"
	"github.com/olamide/gradekeeper/internal/app/services"
	"github.com/olamide/gradekeeper/internal/middleware"
)

// GuardianController handles guardian registration and removal
type GuardianController struct {
	guardianService services.GuardianService
	studentService  services.StudentService
}

// NewGuardianController creates a new GuardianController
func NewGuardianController(guardianService services.GuardianService, studentService services.StudentService) *GuardianController {
	return &GuardianController{
		guardianService: guardianService,
		studentService:  studentService,
	}
}

// Register creates a guardian and links the named children.
func (c *GuardianController) Register(ctx *gin.Context) {
	var req dto.RegisterGuardianRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "invalid guardian data", err)
		return
	}

	guardian, err := c.guardianService.Register(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewGuardianResponse(guardian))
}

// Delete removes a guardian by primary key. Children are detached, not
// deleted.
func (c *GuardianController) Delete(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		badRequest(ctx, "id must be numeric", err)
		return
	}

	if err := c.guardianService.Delete(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "guardian deleted"})
}

// Children lists the authenticated guardian's students.
func (c *GuardianController) Children(ctx *gin.Context) {
	guardian, ok := middleware.GuardianFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "authentication required")))
		return
	}

	children, err := c.studentService.Children(ctx, guardian)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewStudentResponses(children))
}
