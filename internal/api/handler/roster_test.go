// internal/api/handler/roster_test.go
package handler

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"campus-roster/internal/domain"
	"campus-roster/internal/service"
	"campus-roster/internal/util"
	"campus-roster/pkg/db"
)

// MockRosterService is a mock of service.RosterService.
type MockRosterService struct {
	mock.Mock
}

var _ service.RosterService = (*MockRosterService)(nil)

func (m *MockRosterService) DropSchema(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockRosterService) CreateSchema(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockRosterService) AddCourse(ctx context.Context, name string) (int64, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRosterService) AddCourses(ctx context.Context, names []string) ([]int64, error) {
	args := m.Called(ctx, names)
	return args.Get(0).([]int64), args.Error(1)
}

func (m *MockRosterService) AddStudent(ctx context.Context, student domain.NewStudent) (int64, error) {
	args := m.Called(ctx, student)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRosterService) EnrollStudent(ctx context.Context, studentID, courseID int64) error {
	return m.Called(ctx, studentID, courseID).Error(0)
}

func (m *MockRosterService) ImportStudents(ctx context.Context, courseID int64, students []domain.NewStudent) error {
	return m.Called(ctx, courseID, students).Error(0)
}

func (m *MockRosterService) GetStudent(ctx context.Context, id int64) ([]domain.Student, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Student), args.Error(1)
}

func (m *MockRosterService) GetStudents(ctx context.Context, courseID int64) ([]domain.RosterEntry, error) {
	args := m.Called(ctx, courseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RosterEntry), args.Error(1)
}

func (m *MockRosterService) CountRows(ctx context.Context, table string) (int64, error) {
	args := m.Called(ctx, table)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRosterService) DumpTable(ctx context.Context, table string) ([]db.Row, error) {
	args := m.Called(ctx, table)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]db.Row), args.Error(1)
}

func newTestRouter(svc service.RosterService) http.Handler {
	h := NewRosterHandler(svc, slog.New(slog.NewTextHandler(io.Discard, nil)))
	r := chi.NewRouter()
	r.Get("/students/{studentID}", h.GetStudent)
	r.Get("/courses/{courseID}/students", h.GetCourseStudents)
	return r
}

func serve(h http.Handler, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestGetStudent(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc := new(MockRosterService)
		svc.On("GetStudent", mock.Anything, int64(3)).
			Return([]domain.Student{{ID: 3, Name: "Sidorov Alexey"}}, nil).Once()

		rec := serve(newTestRouter(svc), "/students/3")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
		assert.JSONEq(t, `{"id":3,"name":"Sidorov Alexey","gpa":null,"birth":null}`, rec.Body.String())
		svc.AssertExpectations(t)
	})

	t.Run("EmptyResultIsNotFound", func(t *testing.T) {
		svc := new(MockRosterService)
		svc.On("GetStudent", mock.Anything, int64(42)).Return([]domain.Student{}, nil).Once()

		rec := serve(newTestRouter(svc), "/students/42")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"error":"Resource not found"}`, rec.Body.String())
		svc.AssertExpectations(t)
	})

	t.Run("InvalidID", func(t *testing.T) {
		svc := new(MockRosterService)

		for _, path := range []string{"/students/abc", "/students/0", "/students/-1"} {
			rec := serve(newTestRouter(svc), path)
			assert.Equal(t, http.StatusBadRequest, rec.Code, path)
		}
		svc.AssertNotCalled(t, "GetStudent", mock.Anything, mock.Anything)
	})

	t.Run("DatabaseFailure", func(t *testing.T) {
		svc := new(MockRosterService)
		svc.On("GetStudent", mock.Anything, int64(1)).
			Return(nil, fmt.Errorf("get student: %w", util.ErrOperationFailed)).Once()

		rec := serve(newTestRouter(svc), "/students/1")

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.JSONEq(t, `{"error":"Database operation failed"}`, rec.Body.String())
		svc.AssertExpectations(t)
	})
}

func TestGetCourseStudents(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc := new(MockRosterService)
		svc.On("GetStudents", mock.Anything, int64(1)).Return([]domain.RosterEntry{
			{Student: domain.Student{ID: 1, Name: "Ivanov Ivan"}, CourseID: 1, CourseName: "Python Development"},
		}, nil).Once()

		rec := serve(newTestRouter(svc), "/courses/1/students")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"count":1`)
		assert.Contains(t, rec.Body.String(), `"course_name":"Python Development"`)
		svc.AssertExpectations(t)
	})

	t.Run("UnexpectedError", func(t *testing.T) {
		svc := new(MockRosterService)
		svc.On("GetStudents", mock.Anything, int64(1)).Return(nil, assert.AnError).Once()

		rec := serve(newTestRouter(svc), "/courses/1/students")

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		svc.AssertExpectations(t)
	})
}
