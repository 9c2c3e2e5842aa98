package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/olamide/gradekeeper/internal/app/models"
	"github.com/olamide/gradekeeper/internal/pkg/apperrors"
)

// In-memory fakes of the store interfaces. Each test seeds only what it
// needs.

func strPtr(s string) *string { return &s }

type fakePrincipalStore struct {
	principals map[string]models.Principal // key role + "/" + externalID
	updated    map[string]string           // key role + "/" + id → new hash
}

func newFakePrincipalStore(ps ...models.Principal) *fakePrincipalStore {
	f := &fakePrincipalStore{
		principals: make(map[string]models.Principal),
		updated:    make(map[string]string),
	}
	for _, p := range ps {
		f.principals[string(p.Kind())+"/"+p.ExternalID()] = p
	}
	return f
}

func (f *fakePrincipalStore) ResolvePrincipal(_ context.Context, role models.Role, externalID string) (models.Principal, error) {
	p, ok := f.principals[string(role)+"/"+externalID]
	if !ok {
		return nil, apperrors.ErrResourceNotFound
	}
	return p, nil
}

func (f *fakePrincipalStore) UpdatePassword(_ context.Context, role models.Role, id int64, hash string) error {
	f.updated[fmt.Sprintf("%s/%d", role, id)] = hash
	return nil
}

type fakeStudentStore struct {
	students []*models.Student
	deleted  []int64
}

func (f *fakeStudentStore) Create(_ context.Context, student *models.Student) error {
	student.ID = int64(len(f.students) + 1)
	student.StudentID = fmt.Sprintf("STU24%03d", len(f.students)+1)
	f.students = append(f.students, student)
	return nil
}

func (f *fakeStudentStore) GetByStudentID(_ context.Context, studentID string) (*models.Student, error) {
	for _, s := range f.students {
		if s.StudentID == studentID {
			return s, nil
		}
	}
	return nil, apperrors.ErrStudentNotFound
}

func (f *fakeStudentStore) GetByID(_ context.Context, id int64) (*models.Student, error) {
	for _, s := range f.students {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, apperrors.ErrStudentNotFound
}

func (f *fakeStudentStore) GetAll(_ context.Context) ([]*models.Student, error) {
	return f.sorted(f.students), nil
}

func (f *fakeStudentStore) GetByClass(_ context.Context, class string) ([]*models.Student, error) {
	var out []*models.Student
	for _, s := range f.students {
		if s.StudentClass == class {
			out = append(out, s)
		}
	}
	return f.sorted(out), nil
}

func (f *fakeStudentStore) GetByTeacher(_ context.Context, teacherID int64) ([]*models.Student, error) {
	var out []*models.Student
	for _, s := range f.students {
		if s.TeacherID != nil && *s.TeacherID == teacherID {
			out = append(out, s)
		}
	}
	return f.sorted(out), nil
}

func (f *fakeStudentStore) GetByParent(_ context.Context, parentID int64) ([]*models.Student, error) {
	var out []*models.Student
	for _, s := range f.students {
		if s.ParentID != nil && *s.ParentID == parentID {
			out = append(out, s)
		}
	}
	return f.sorted(out), nil
}

func (f *fakeStudentStore) GetByClassAndSubject(_ context.Context, class, _ string) ([]*models.Student, error) {
	return f.GetByClass(context.Background(), class)
}

func (f *fakeStudentStore) Delete(_ context.Context, id int64) error {
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeStudentStore) sorted(in []*models.Student) []*models.Student {
	out := append([]*models.Student(nil), in...)
	sort.Slice(out, func(i, j int) bool {
		return out[i].DisplayName() < out[j].DisplayName()
	})
	return out
}

type fakeTeacherStore struct {
	teachers []*models.Teacher
	created  []*models.Teacher
	subjects map[int64][]string // teacher ID → subject names passed to Create
	deleted  []int64
}

func newFakeTeacherStore(teachers ...*models.Teacher) *fakeTeacherStore {
	return &fakeTeacherStore{
		teachers: teachers,
		subjects: make(map[int64][]string),
	}
}

func (f *fakeTeacherStore) Create(_ context.Context, teacher *models.Teacher, subjectNames []string) error {
	teacher.ID = int64(len(f.teachers) + 1)
	teacher.TeacherID = fmt.Sprintf("TCH24%03d", len(f.teachers)+1)
	f.teachers = append(f.teachers, teacher)
	f.created = append(f.created, teacher)
	f.subjects[teacher.ID] = subjectNames
	return nil
}

func (f *fakeTeacherStore) GetByID(_ context.Context, id int64) (*models.Teacher, error) {
	for _, t := range f.teachers {
		if t.ID == id {
			return t, nil
		}
	}
	return nil, apperrors.ErrTeacherNotFound
}

func (f *fakeTeacherStore) GetByClass(_ context.Context, class string) (*models.Teacher, error) {
	for _, t := range f.teachers {
		if t.Teaches(class) {
			return t, nil
		}
	}
	return nil, apperrors.ErrTeacherNotFound
}

func (f *fakeTeacherStore) GetAll(_ context.Context) ([]*models.Teacher, error) {
	return f.teachers, nil
}

func (f *fakeTeacherStore) GetNamesByClass(_ context.Context, class string) ([]string, error) {
	var names []string
	for _, t := range f.teachers {
		if t.Teaches(class) {
			names = append(names, t.Name)
		}
	}
	sort.Strings(names)
	return names, nil
}

func (f *fakeTeacherStore) Delete(_ context.Context, id int64) error {
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeEnrollmentStore struct {
	enrolled  map[string][]string // student external ID → subject names
	byTeacher map[int64][]*models.Subject
}

func newFakeEnrollmentStore() *fakeEnrollmentStore {
	return &fakeEnrollmentStore{
		enrolled:  make(map[string][]string),
		byTeacher: make(map[int64][]*models.Subject),
	}
}

func (f *fakeEnrollmentStore) EnrollStudent(_ context.Context, studentID string, subjectNames []string) error {
	f.enrolled[studentID] = append(f.enrolled[studentID], subjectNames...)
	return nil
}

func (f *fakeEnrollmentStore) GetSubjectsByTeacher(_ context.Context, teacherID int64) ([]*models.Subject, error) {
	return f.byTeacher[teacherID], nil
}

type fakeLinkStore struct {
	teacherSubjects map[string]*models.TeacherSubject // teacherID|subject name
	studentSubjects map[string]*models.StudentSubject // studentID|subjectID
}

func newFakeLinkStore() *fakeLinkStore {
	return &fakeLinkStore{
		teacherSubjects: make(map[string]*models.TeacherSubject),
		studentSubjects: make(map[string]*models.StudentSubject),
	}
}

func (f *fakeLinkStore) addTeacherSubject(teacherID int64, subjectName string, link *models.TeacherSubject) {
	f.teacherSubjects[fmt.Sprintf("%d|%s", teacherID, subjectName)] = link
}

func (f *fakeLinkStore) addStudentSubject(studentID string, subjectID int64, link *models.StudentSubject) {
	f.studentSubjects[fmt.Sprintf("%s|%d", studentID, subjectID)] = link
}

func (f *fakeLinkStore) GetTeacherSubject(_ context.Context, teacherID int64, subjectName string) (*models.TeacherSubject, error) {
	link, ok := f.teacherSubjects[fmt.Sprintf("%d|%s", teacherID, subjectName)]
	if !ok {
		return nil, apperrors.ErrSubjectNotTaught
	}
	return link, nil
}

func (f *fakeLinkStore) GetStudentSubject(_ context.Context, studentID string, subjectID int64) (*models.StudentSubject, error) {
	link, ok := f.studentSubjects[fmt.Sprintf("%s|%d", studentID, subjectID)]
	if !ok {
		return nil, apperrors.ErrStudentNotEnrolled
	}
	return link, nil
}

type fakeResultStore struct {
	batches [][]*models.Result
	results []*models.StudentResult
}

func (f *fakeResultStore) CreateBatch(_ context.Context, results []*models.Result) error {
	f.batches = append(f.batches, results)
	return nil
}

func (f *fakeResultStore) GetByStudent(_ context.Context, _, _, _ string) ([]*models.StudentResult, error) {
	return f.results, nil
}

type fakeGuardianStore struct {
	guardians []*models.Guardian
	children  map[int64][]string
	deleted   []int64
}

func newFakeGuardianStore() *fakeGuardianStore {
	return &fakeGuardianStore{children: make(map[int64][]string)}
}

func (f *fakeGuardianStore) Create(_ context.Context, guardian *models.Guardian, childStudentIDs []string) error {
	guardian.ID = int64(len(f.guardians) + 1)
	f.guardians = append(f.guardians, guardian)
	f.children[guardian.ID] = childStudentIDs
	return nil
}

func (f *fakeGuardianStore) GetByID(_ context.Context, id int64) (*models.Guardian, error) {
	for _, g := range f.guardians {
		if g.ID == id {
			return g, nil
		}
	}
	return nil, apperrors.ErrGuardianNotFound
}

func (f *fakeGuardianStore) GetAll(_ context.Context) ([]*models.Guardian, error) {
	return f.guardians, nil
}

func (f *fakeGuardianStore) Delete(_ context.Context, id int64) error {
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeAdminStore struct {
	admins []*models.Admin
}

func (f *fakeAdminStore) Create(_ context.Context, admin *models.Admin) error {
	admin.ID = int64(len(f.admins) + 1)
	admin.AdminID = fmt.Sprintf("ADM%03d", len(f.admins)+1)
	f.admins = append(f.admins, admin)
	return nil
}

func (f *fakeAdminStore) Count(_ context.Context) (int, error) {
	return len(f.admins), nil
}
