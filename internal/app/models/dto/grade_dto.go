package dto

import (
	"time"

	"github.com/olamide/gradekeeper/internal/app/models"
)

// GradeEntry represents one student's scores inside a grade batch
type GradeEntry struct {
	StudentID string  `json:"studentId" binding:"required"`
	CAScore   float64 `json:"caScore" binding:"min=0,max=40"`
	ExamScore float64 `json:"examScore" binding:"min=0,max=60"`
}

// PostGradesRequest represents a batch of grades for one subject, term and
// session. Subject, term, session and class travel in the path.
type PostGradesRequest struct {
	Grades []GradeEntry `json:"grades" binding:"required,min=1,dive"`
}

// StudentResultResponse represents one grade record joined to its subject
type StudentResultResponse struct {
	Subject    string    `json:"subject"`
	CAScore    float64   `json:"caScore"`
	ExamScore  float64   `json:"examScore"`
	Total      float64   `json:"total"`
	Term       string    `json:"term"`
	Session    string    `json:"session"`
	TimeLogged time.Time `json:"timeLogged"`
}

// NewStudentResultResponses maps joined result rows to the response shape.
func NewStudentResultResponses(results []*models.StudentResult) []*StudentResultResponse {
	out := make([]*StudentResultResponse, 0, len(results))
	for _, r := range results {
		out = append(out, &StudentResultResponse{
			Subject:    r.Subject,
			CAScore:    r.CAScore,
			ExamScore:  r.ExamScore,
			Total:      r.CAScore + r.ExamScore,
			Term:       r.Term,
			Session:    r.Session,
			TimeLogged: r.TimeLogged,
		})
	}
	return out
}
