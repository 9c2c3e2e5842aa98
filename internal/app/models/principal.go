package models

import "time"

// Student defines the student model based on the 'students' table
type Student struct {
	ID           int64     `json:"id" db:"id"`
	FirstName    string    `json:"firstname" db:"firstname"`
	LastName     string    `json:"lastname" db:"lastname"`
	MiddleName   *string   `json:"middlename,omitempty" db:"middlename"`
	Email        string    `json:"email" db:"email"`
	Address      string    `json:"address" db:"address"`
	Gender       string    `json:"gender" db:"gender"`
	StudentClass string    `json:"studentClass" db:"student_class"`
	StudentID    string    `json:"studentId" db:"student_id"` // STU<yy><nnn>
	Password     string    `json:"-" db:"password"`
	Department   *string   `json:"department,omitempty" db:"department"`
	RegDate      time.Time `json:"regDate" db:"reg_date"`
	ParentID     *int64    `json:"parentId,omitempty" db:"parent_id"`
	TeacherID    *int64    `json:"teacherId,omitempty" db:"teacher_id"`
}

func (s *Student) Kind() Role           { return RoleStudent }
func (s *Student) PrimaryID() int64     { return s.ID }
func (s *Student) ExternalID() string   { return s.StudentID }
func (s *Student) PasswordHash() string { return s.Password }
func (s *Student) DisplayName() string  { return s.LastName + " " + s.FirstName }

// Guardian defines the guardian model based on the 'guardians' table.
// Guardians have no registration number; the email is the login key.
type Guardian struct {
	ID       int64     `json:"id" db:"id"`
	Title    string    `json:"title" db:"title"`
	Name     string    `json:"name" db:"name"`
	Email    string    `json:"email" db:"email"`
	Gender   string    `json:"gender" db:"gender"`
	Address  string    `json:"address" db:"address"`
	MobileNo string    `json:"mobileNo" db:"mobile_no"`
	Password string    `json:"-" db:"password"`
	RegDate  time.Time `json:"regDate" db:"reg_date"`
}

func (g *Guardian) Kind() Role           { return RoleGuardian }
func (g *Guardian) PrimaryID() int64     { return g.ID }
func (g *Guardian) ExternalID() string   { return g.Email }
func (g *Guardian) PasswordHash() string { return g.Password }
func (g *Guardian) DisplayName() string  { return g.Name }

// Teacher defines the teacher model based on the 'teachers' table
type Teacher struct {
	ID          int64     `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Name        string    `json:"name" db:"name"`
	Email       string    `json:"email" db:"email"`
	TeacherID   string    `json:"teacherId" db:"teacher_id"` // TCH<yy><nnn>
	Gender      string    `json:"gender" db:"gender"`
	Address     string    `json:"address" db:"address"`
	MobileNo    string    `json:"mobileNo" db:"mobile_no"`
	Password    string    `json:"-" db:"password"`
	ClassTaught *string   `json:"classTaught,omitempty" db:"class_taught"`
	RegDate     time.Time `json:"regDate" db:"reg_date"`
}

func (t *Teacher) Kind() Role           { return RoleTeacher }
func (t *Teacher) PrimaryID() int64     { return t.ID }
func (t *Teacher) ExternalID() string   { return t.TeacherID }
func (t *Teacher) PasswordHash() string { return t.Password }
func (t *Teacher) DisplayName() string  { return t.Name }

// Teaches reports whether the teacher has claimed the given class.
func (t *Teacher) Teaches(class string) bool {
	return t.ClassTaught != nil && *t.ClassTaught == class
}

// Admin defines the admin model based on the 'admins' table
type Admin struct {
	ID       int64     `json:"id" db:"id"`
	Name     string    `json:"name" db:"name"`
	Email    string    `json:"email" db:"email"`
	AdminID  string    `json:"adminId" db:"admin_id"` // ADM<nnn>
	Password string    `json:"-" db:"password"`
	RegDate  time.Time `json:"regDate" db:"reg_date"`
}

func (a *Admin) Kind() Role           { return RoleAdmin }
func (a *Admin) PrimaryID() int64     { return a.ID }
func (a *Admin) ExternalID() string   { return a.AdminID }
func (a *Admin) PasswordHash() string { return a.Password }
func (a *Admin) DisplayName() string  { return a.Name }
