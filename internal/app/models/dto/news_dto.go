package dto

import (
	"time"

	"github.com/olamide/gradekeeper/internal/app/models"
)

// CreateNewsRequest represents newsletter form fields; the optional image
// travels as a multipart file part.
type CreateNewsRequest struct {
	Title    string `form:"title" binding:"required"`
	Content  string `form:"content" binding:"required"`
	Category string `form:"category" binding:"required"`
}

// NewsResponse represents a newsletter entry
type NewsResponse struct {
	ID       int64     `json:"id"`
	Title    string    `json:"title"`
	Content  string    `json:"content"`
	Category string    `json:"category"`
	Image    *string   `json:"image,omitempty"`
	Date     time.Time `json:"date"`
}

// NewNewsResponse maps a news model to its response shape.
func NewNewsResponse(n *models.News) *NewsResponse {
	return &NewsResponse{
		ID:       n.ID,
		Title:    n.Title,
		Content:  n.Content,
		Category: n.Category,
		Image:    n.Image,
		Date:     n.Date,
	}
}

// NewNewsResponses maps a slice of news models.
func NewNewsResponses(items []*models.News) []*NewsResponse {
	out := make([]*NewsResponse, 0, len(items))
	for _, n := range items {
		out = append(out, NewNewsResponse(n))
	}
	return out
}
