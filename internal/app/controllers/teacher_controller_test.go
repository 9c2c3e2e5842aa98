package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olamide/gradekeeper/internal/app/models"
	"github.com/olamide/gradekeeper/internal/app/models/dto"
	"github.com/olamide/gradekeeper/internal/pkg/apperrors"
	"github.com/olamide/gradekeeper/internal/pkg/catalog"
)

// stubGradeService records the call it receives and returns canned errors.
type stubGradeService struct {
	postErr     error
	gradesErr   error
	results     []*models.StudentResult
	postedCalls int
	lastEntries []dto.GradeEntry
}

func (s *stubGradeService) PostGrades(_ context.Context, _ *models.Teacher, _, _, _, _ string, entries []dto.GradeEntry) error {
	s.postedCalls++
	s.lastEntries = entries
	return s.postErr
}

func (s *stubGradeService) Grades(_ context.Context, _ *models.Teacher, _, _, _, _ string) ([]*models.StudentResult, error) {
	return s.results, s.gradesErr
}

// stubTeacherService satisfies the interface; the grade endpoints under test
// never reach it.
type stubTeacherService struct{}

func (s *stubTeacherService) Register(_ context.Context, _ *dto.RegisterTeacherRequest) (*models.Teacher, error) {
	return nil, nil
}
func (s *stubTeacherService) Delete(_ context.Context, _ int64) error { return nil }
func (s *stubTeacherService) GetAll(_ context.Context) ([]*models.Teacher, error) {
	return nil, nil
}
func (s *stubTeacherService) Students(_ context.Context, _ *models.Teacher) ([]*models.Student, error) {
	return nil, nil
}
func (s *stubTeacherService) StudentsBySubject(_ context.Context, _ *models.Teacher, _, _ string) ([]*models.Student, error) {
	return nil, nil
}
func (s *stubTeacherService) Subjects(_ context.Context, _ *models.Teacher) ([]*models.Subject, error) {
	return nil, nil
}
func (s *stubTeacherService) RegisterStudentSubjects(_ context.Context, _ *models.Teacher, _, _ string, _ []string) error {
	return nil
}

// asTeacher injects an authenticated teacher the way the auth middleware
// does.
func asTeacher(teacher *models.Teacher) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("principal", teacher)
		c.Next()
	}
}

func gradeRouter(svc *stubGradeService, teacher *models.Teacher) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	controller := NewTeacherController(&stubTeacherService{}, svc, catalog.Default())
	router.POST("/teacher/grades/:session/:term/:class/:subject", asTeacher(teacher), controller.PostGrades)
	router.GET("/teacher/grades/:session/:term/:class/:studentId", asTeacher(teacher), controller.GetGrades)
	return router
}

func TestPostGradesEndpoint(t *testing.T) {
	teacher := &models.Teacher{ID: 1, Name: "Mr Bello", TeacherID: "TCH24001"}

	postBody := func(t *testing.T, req dto.PostGradesRequest) *bytes.Reader {
		t.Helper()
		body, err := json.Marshal(req)
		require.NoError(t, err)
		return bytes.NewReader(body)
	}

	t.Run("valid batch returns 201", func(t *testing.T) {
		svc := &stubGradeService{}
		router := gradeRouter(svc, teacher)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/teacher/grades/2023-2024/First%20Term/JSS1/Mathematics",
			postBody(t, dto.PostGradesRequest{Grades: []dto.GradeEntry{{StudentID: "STU24001", CAScore: 32, ExamScore: 51}}}))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, 1, svc.postedCalls)
		require.Len(t, svc.lastEntries, 1)
		assert.Equal(t, "STU24001", svc.lastEntries[0].StudentID)
	})

	t.Run("empty batch fails binding", func(t *testing.T) {
		svc := &stubGradeService{}
		router := gradeRouter(svc, teacher)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/teacher/grades/2023-2024/First%20Term/JSS1/Mathematics",
			postBody(t, dto.PostGradesRequest{Grades: []dto.GradeEntry{}}))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Zero(t, svc.postedCalls)
	})

	t.Run("ca score above 40 fails binding", func(t *testing.T) {
		svc := &stubGradeService{}
		router := gradeRouter(svc, teacher)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/teacher/grades/2023-2024/First%20Term/JSS1/Mathematics",
			postBody(t, dto.PostGradesRequest{Grades: []dto.GradeEntry{{StudentID: "STU24001", CAScore: 41, ExamScore: 50}}}))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Zero(t, svc.postedCalls)
	})

	t.Run("unenrolled student maps to 403", func(t *testing.T) {
		svc := &stubGradeService{postErr: apperrors.ErrStudentNotEnrolled}
		router := gradeRouter(svc, teacher)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/teacher/grades/2023-2024/First%20Term/JSS1/Mathematics",
			postBody(t, dto.PostGradesRequest{Grades: []dto.GradeEntry{{StudentID: "STU24099", CAScore: 30, ExamScore: 50}}}))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestGetGradesEndpoint(t *testing.T) {
	teacher := &models.Teacher{ID: 1, Name: "Mr Bello", TeacherID: "TCH24001"}

	t.Run("results include the computed total", func(t *testing.T) {
		svc := &stubGradeService{results: []*models.StudentResult{
			{Result: models.Result{CAScore: 32, ExamScore: 51, Term: "First Term", Session: "2023-2024"}, Subject: "Mathematics"},
		}}
		router := gradeRouter(svc, teacher)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/teacher/grades/2023-2024/First%20Term/JSS1/STU24001", nil)
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var resp []dto.StudentResultResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp, 1)
		assert.Equal(t, "Mathematics", resp[0].Subject)
		assert.Equal(t, float64(83), resp[0].Total)
	})

	t.Run("unknown student maps to 404", func(t *testing.T) {
		svc := &stubGradeService{gradesErr: apperrors.ErrStudentNotFound}
		router := gradeRouter(svc, teacher)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/teacher/grades/2023-2024/First%20Term/JSS1/STU24999", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("foreign class maps to 403", func(t *testing.T) {
		svc := &stubGradeService{gradesErr: apperrors.ErrNotClassTeacher}
		router := gradeRouter(svc, teacher)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/teacher/grades/2023-2024/First%20Term/JSS2/STU24001", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}
