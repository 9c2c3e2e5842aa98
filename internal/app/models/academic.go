package models

import "time"

// Subject defines the subject model based on the 'subjects' table.
// Rows are created lazily from the configured catalog; the name is unique.
type Subject struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"subject" db:"subject"`
}

// StudentSubject links a student to a subject ('student_subjects' table).
// The student side is keyed by the external student_id, mirroring the
// results lookup path which always starts from a registration number.
type StudentSubject struct {
	ID        int64  `json:"id" db:"id"`
	StudentID string `json:"studentId" db:"student_id"`
	SubjectID int64  `json:"subjectId" db:"subject_id"`
}

// TeacherSubject links a teacher to a subject ('teacher_subjects' table)
type TeacherSubject struct {
	ID        int64 `json:"id" db:"id"`
	TeacherID int64 `json:"teacherId" db:"teacher_id"`
	SubjectID int64 `json:"subjectId" db:"subject_id"`
}

// Result is one immutable grade record scoped to a student-subject and
// teacher-subject pair for a term and session. No update or delete path
// exists once a row is written.
type Result struct {
	ID               int64     `json:"id" db:"id"`
	StudentSubjectID int64     `json:"studentSubjectId" db:"student_subject_id"`
	TeacherSubjectID int64     `json:"teacherSubjectId" db:"teacher_subject_id"`
	CAScore          float64   `json:"caScore" db:"c_a_score"`
	ExamScore        float64   `json:"examScore" db:"exam_score"`
	Term             string    `json:"term" db:"term"`
	Session          string    `json:"session" db:"session"`
	TimeLogged       time.Time `json:"timeLogged" db:"time_logged"`
}

// StudentResult is a Result joined to its subject name, the shape the
// grade lookup endpoint returns.
type StudentResult struct {
	Result
	Subject string `json:"subject" db:"subject"`
}

// News defines the newsletter model based on the 'news' table
type News struct {
	ID       int64     `json:"id" db:"id"`
	Title    string    `json:"title" db:"title"`
	Content  string    `json:"content" db:"content"`
	Category string    `json:"category" db:"category"`
	Image    *string   `json:"image,omitempty" db:"image"`
	AuthorID int64     `json:"authorId" db:"author_id"`
	Date     time.Time `json:"date" db:"date"`
}
