// internal/service/roster_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"campus-roster/internal/domain"
	"campus-roster/internal/repository"
	"campus-roster/internal/util"
	"campus-roster/pkg/db"
)

// Runner runs a unit of work in its own transaction.
// *db.Executor implements it.
type Runner interface {
	Run(ctx context.Context, op string, work db.UnitOfWork) db.Result
}

// RosterService defines the operations on students, courses and enrollments.
// Every method is exactly one executor invocation except AddCourses, which
// runs one per course.
type RosterService interface {
	DropSchema(ctx context.Context) error
	CreateSchema(ctx context.Context) error
	AddCourse(ctx context.Context, name string) (int64, error)
	AddCourses(ctx context.Context, names []string) ([]int64, error)
	AddStudent(ctx context.Context, student domain.NewStudent) (int64, error)
	EnrollStudent(ctx context.Context, studentID, courseID int64) error
	ImportStudents(ctx context.Context, courseID int64, students []domain.NewStudent) error
	GetStudent(ctx context.Context, id int64) ([]domain.Student, error)
	GetStudents(ctx context.Context, courseID int64) ([]domain.RosterEntry, error)
	CountRows(ctx context.Context, table string) (int64, error)
	DumpTable(ctx context.Context, table string) ([]db.Row, error)
}

// rosterService implements the RosterService interface.
type rosterService struct {
	runner  Runner
	dialect db.Dialect
	logger  *slog.Logger
}

// NewRosterService creates a new instance of RosterService.
func NewRosterService(runner Runner, dialect db.Dialect, logger *slog.Logger) RosterService {
	return &rosterService{
		runner:  runner,
		dialect: dialect,
		logger:  logger,
	}
}

func operationFailed(op string, res db.Result) error {
	return fmt.Errorf("%s: %w: %w", op, util.ErrOperationFailed, res.Err())
}

// DropSchema drops all tables in one transaction.
func (s *rosterService) DropSchema(ctx context.Context) error {
	res := s.runner.Run(ctx, "drop schema", repository.DropAll())
	if !res.OK() {
		return operationFailed("drop schema", res)
	}
	return nil
}

// CreateSchema creates all missing tables in one transaction.
func (s *rosterService) CreateSchema(ctx context.Context) error {
	res := s.runner.Run(ctx, "create schema", repository.CreateAll(s.dialect))
	if !res.OK() {
		return operationFailed("create schema", res)
	}
	return nil
}

// AddCourse inserts a course and returns its generated id.
func (s *rosterService) AddCourse(ctx context.Context, name string) (int64, error) {
	if name == "" {
		return 0, util.ErrInvalidInput
	}
	res := s.runner.Run(ctx, "add course", repository.AddCourse(name))
	if !res.OK() {
		return 0, operationFailed("add course", res)
	}
	return firstID("add course", res)
}

// AddCourses inserts each course in its own transaction. A failed course
// does not stop the rest: ids[i] is the id of names[i], or 0 when that
// insert failed, and the failures are returned joined.
func (s *rosterService) AddCourses(ctx context.Context, names []string) ([]int64, error) {
	ids := make([]int64, len(names))
	var errs []error
	for i, name := range names {
		id, err := s.AddCourse(ctx, name)
		if err != nil {
			errs = append(errs, fmt.Errorf("course %q: %w", name, err))
			continue
		}
		ids[i] = id
	}
	return ids, errors.Join(errs...)
}

// AddStudent inserts a student and returns the generated id.
func (s *rosterService) AddStudent(ctx context.Context, student domain.NewStudent) (int64, error) {
	if student.Name == "" {
		return 0, util.ErrInvalidInput
	}
	res := s.runner.Run(ctx, "add student", repository.AddStudent(student))
	if !res.OK() {
		return 0, operationFailed("add student", res)
	}
	return firstID("add student", res)
}

// EnrollStudent enrolls a student in a course; enrolling twice is a no-op.
func (s *rosterService) EnrollStudent(ctx context.Context, studentID, courseID int64) error {
	res := s.runner.Run(ctx, "enroll student", repository.AddStudentToCourse(studentID, courseID))
	if !res.OK() {
		return operationFailed("enroll student", res)
	}
	return nil
}

// ImportStudents inserts and enrolls a batch of students atomically.
func (s *rosterService) ImportStudents(ctx context.Context, courseID int64, students []domain.NewStudent) error {
	res := s.runner.Run(ctx, "import students", repository.AddStudents(courseID, students))
	if !res.OK() {
		return operationFailed("import students", res)
	}
	s.logger.Debug("Students imported", "course_id", courseID, "count", len(students))
	return nil
}

// GetStudent returns the matching student, or an empty slice when there is none.
func (s *rosterService) GetStudent(ctx context.Context, id int64) ([]domain.Student, error) {
	res := s.runner.Run(ctx, "get student", repository.GetStudent(id))
	rows, ok := res.Rows()
	if !ok {
		return nil, operationFailed("get student", res)
	}
	students := make([]domain.Student, 0, len(rows))
	for _, row := range rows {
		students = append(students, studentFromRow(row))
	}
	return students, nil
}

// GetStudents returns the roster of a course ordered by student id.
func (s *rosterService) GetStudents(ctx context.Context, courseID int64) ([]domain.RosterEntry, error) {
	res := s.runner.Run(ctx, "get students", repository.GetStudents(courseID))
	rows, ok := res.Rows()
	if !ok {
		return nil, operationFailed("get students", res)
	}
	entries := make([]domain.RosterEntry, 0, len(rows))
	for _, row := range rows {
		rowCourseID, _ := row.Int64(4)
		entries = append(entries, domain.RosterEntry{
			Student:    studentFromRow(row),
			CourseID:   rowCourseID,
			CourseName: row.String(5),
		})
	}
	return entries, nil
}

// CountRows returns the number of rows in one of the schema tables.
func (s *rosterService) CountRows(ctx context.Context, table string) (int64, error) {
	if err := repository.ValidateTable(table); err != nil {
		return 0, err
	}
	res := s.runner.Run(ctx, "count rows", repository.CountRows(table))
	if !res.OK() {
		return 0, operationFailed("count rows", res)
	}
	return firstID("count rows", res)
}

// DumpTable returns every row of one of the schema tables.
func (s *rosterService) DumpTable(ctx context.Context, table string) ([]db.Row, error) {
	if err := repository.ValidateTable(table); err != nil {
		return nil, err
	}
	res := s.runner.Run(ctx, "dump table", repository.DumpTable(table))
	rows, ok := res.Rows()
	if !ok {
		return nil, operationFailed("dump table", res)
	}
	return rows, nil
}

// firstID reads the integer in the first column of the first row.
func firstID(op string, res db.Result) (int64, error) {
	row, ok := res.First()
	if !ok {
		return 0, fmt.Errorf("%s: %w", op, util.ErrNoRowReturned)
	}
	id, ok := row.Int64(0)
	if !ok {
		return 0, fmt.Errorf("%s: %w", op, util.ErrNoRowReturned)
	}
	return id, nil
}

func studentFromRow(row db.Row) domain.Student {
	id, _ := row.Int64(0)
	return domain.Student{
		ID:    id,
		Name:  row.String(1),
		GPA:   row.Decimal(2),
		Birth: row.Time(3),
	}
}
