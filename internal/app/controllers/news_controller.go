package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/olamide/gradekeeper/internal/app/models/dto"
	"github.com/olamide/gradekeeper/internal/app/services"
	"github.com/olamide/gradekeeper/internal/middleware"
)

// NewsController handles newsletter endpoints
type NewsController struct {
	newsService services.NewsService
}

// NewNewsController creates a new NewsController
func NewNewsController(newsService services.NewsService) *NewsController {
	return &NewsController{newsService: newsService}
}

// Create stores a newsletter entry. Fields travel as multipart form values;
// the image part is optional.
func (c *NewsController) Create(ctx *gin.Context) {
	admin, ok := middleware.AdminFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "authentication required")))
		return
	}

	var req dto.CreateNewsRequest
	if err := ctx.ShouldBind(&req); err != nil {
		badRequest(ctx, "invalid newsletter data", err)
		return
	}

	// Image part is optional; only a present part is validated and stored.
	image, err := ctx.FormFile("image")
	if err != nil {
		image = nil
	}

	news, err := c.newsService.Create(ctx, admin, &req, image)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewNewsResponse(news))
}

// Get returns one newsletter entry. Public read.
func (c *NewsController) Get(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		badRequest(ctx, "id must be numeric", err)
		return
	}

	news, err := c.newsService.Get(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewNewsResponse(news))
}

// List returns newsletter entries, optionally filtered by category.
func (c *NewsController) List(ctx *gin.Context) {
	items, err := c.newsService.List(ctx, ctx.Query("category"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewNewsResponses(items))
}

// Delete removes a newsletter entry and its stored image.
func (c *NewsController) Delete(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		badRequest(ctx, "id must be numeric", err)
		return
	}

	if err := c.newsService.Delete(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "newsletter deleted"})
}
