package dto

import (
	"time"

	"github.com/olamide/gradekeeper/internal/app/models"
)

// RegisterAdminRequest represents admin registration data
type RegisterAdminRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// RegisterStudentRequest represents student registration data
type RegisterStudentRequest struct {
	FirstName    string  `json:"firstname" binding:"required"`
	LastName     string  `json:"lastname" binding:"required"`
	MiddleName   *string `json:"middlename,omitempty"`
	Email        string  `json:"email" binding:"required,email"`
	Address      string  `json:"address" binding:"required"`
	Gender       string  `json:"gender" binding:"required"`
	StudentClass string  `json:"studentClass" binding:"required"`
	Password     string  `json:"password" binding:"required,min=8"`
	Department   *string `json:"department,omitempty"`
}

// RegisterTeacherRequest represents teacher registration data. Subjects and
// the optional class claim are validated against the catalog.
type RegisterTeacherRequest struct {
	Title       string   `json:"title" binding:"required"`
	Name        string   `json:"name" binding:"required"`
	Email       string   `json:"email" binding:"required,email"`
	Gender      string   `json:"gender" binding:"required"`
	Address     string   `json:"address" binding:"required"`
	MobileNo    string   `json:"mobileNo" binding:"required"`
	Password    string   `json:"password" binding:"required,min=8"`
	ClassTaught *string  `json:"classTaught,omitempty"`
	Subjects    []string `json:"subjects" binding:"required,min=1"`
}

// RegisterGuardianRequest represents guardian registration data. Children
// lists the registration numbers of the guardian's students.
type RegisterGuardianRequest struct {
	Title    string   `json:"title" binding:"required"`
	Name     string   `json:"name" binding:"required"`
	Email    string   `json:"email" binding:"required,email"`
	Gender   string   `json:"gender" binding:"required"`
	Address  string   `json:"address" binding:"required"`
	MobileNo string   `json:"mobileNo" binding:"required"`
	Password string   `json:"password" binding:"required,min=8"`
	Children []string `json:"children,omitempty"`
}

// RegisterSubjectsRequest represents the subjects a teacher registers for a
// student of their class.
type RegisterSubjectsRequest struct {
	Subjects []string `json:"subjects" binding:"required,min=1"`
}

// StudentResponse represents student information
type StudentResponse struct {
	ID           int64     `json:"id"`
	FirstName    string    `json:"firstname"`
	LastName     string    `json:"lastname"`
	MiddleName   *string   `json:"middlename,omitempty"`
	Email        string    `json:"email"`
	Address      string    `json:"address"`
	Gender       string    `json:"gender"`
	StudentClass string    `json:"studentClass"`
	StudentID    string    `json:"studentId"`
	Department   *string   `json:"department,omitempty"`
	RegDate      time.Time `json:"regDate"`
	ParentID     *int64    `json:"parentId,omitempty"`
	TeacherID    *int64    `json:"teacherId,omitempty"`
}

// NewStudentResponse maps a student model to its response shape.
func NewStudentResponse(s *models.Student) *StudentResponse {
	return &StudentResponse{
		ID:           s.ID,
		FirstName:    s.FirstName,
		LastName:     s.LastName,
		MiddleName:   s.MiddleName,
		Email:        s.Email,
		Address:      s.Address,
		Gender:       s.Gender,
		StudentClass: s.StudentClass,
		StudentID:    s.StudentID,
		Department:   s.Department,
		RegDate:      s.RegDate,
		ParentID:     s.ParentID,
		TeacherID:    s.TeacherID,
	}
}

// NewStudentResponses maps a slice of student models.
func NewStudentResponses(students []*models.Student) []*StudentResponse {
	out := make([]*StudentResponse, 0, len(students))
	for _, s := range students {
		out = append(out, NewStudentResponse(s))
	}
	return out
}

// TeacherResponse represents teacher information
type TeacherResponse struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	TeacherID   string    `json:"teacherId"`
	Gender      string    `json:"gender"`
	Address     string    `json:"address"`
	MobileNo    string    `json:"mobileNo"`
	ClassTaught *string   `json:"classTaught,omitempty"`
	RegDate     time.Time `json:"regDate"`
}

// NewTeacherResponse maps a teacher model to its response shape.
func NewTeacherResponse(t *models.Teacher) *TeacherResponse {
	return &TeacherResponse{
		ID:          t.ID,
		Title:       t.Title,
		Name:        t.Name,
		Email:       t.Email,
		TeacherID:   t.TeacherID,
		Gender:      t.Gender,
		Address:     t.Address,
		MobileNo:    t.MobileNo,
		ClassTaught: t.ClassTaught,
		RegDate:     t.RegDate,
	}
}

// NewTeacherResponses maps a slice of teacher models.
func NewTeacherResponses(teachers []*models.Teacher) []*TeacherResponse {
	out := make([]*TeacherResponse, 0, len(teachers))
	for _, t := range teachers {
		out = append(out, NewTeacherResponse(t))
	}
	return out
}

// GuardianResponse represents guardian information
type GuardianResponse struct {
	ID       int64     `json:"id"`
	Title    string    `json:"title"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	Gender   string    `json:"gender"`
	Address  string    `json:"address"`
	MobileNo string    `json:"mobileNo"`
	RegDate  time.Time `json:"regDate"`
}

// NewGuardianResponse maps a guardian model to its response shape.
func NewGuardianResponse(g *models.Guardian) *GuardianResponse {
	return &GuardianResponse{
		ID:       g.ID,
		Title:    g.Title,
		Name:     g.Name,
		Email:    g.Email,
		Gender:   g.Gender,
		Address:  g.Address,
		MobileNo: g.MobileNo,
		RegDate:  g.RegDate,
	}
}

// NewGuardianResponses maps a slice of guardian models.
func NewGuardianResponses(guardians []*models.Guardian) []*GuardianResponse {
	out := make([]*GuardianResponse, 0, len(guardians))
	for _, g := range guardians {
		out = append(out, NewGuardianResponse(g))
	}
	return out
}
