// internal/service/roster_service_integration_test.go
package service

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campus-roster/internal/domain"
	"campus-roster/internal/util"
	"campus-roster/pkg/db"
)

// newStore returns a service over a fresh SQLite database, or over the
// PostgreSQL database described by ROSTER_TEST_PG_DSN when it is set.
func newStore(t *testing.T) RosterService {
	t.Helper()
	cfg := db.Config{Driver: db.DriverSQLite, Path: filepath.Join(t.TempDir(), "roster.db")}
	if os.Getenv("ROSTER_TEST_PG_HOST") != "" {
		cfg = db.Config{
			Driver:   db.DriverPostgres,
			Host:     os.Getenv("ROSTER_TEST_PG_HOST"),
			Port:     5432,
			User:     os.Getenv("ROSTER_TEST_PG_USER"),
			Password: os.Getenv("ROSTER_TEST_PG_PASSWORD"),
			DBName:   os.Getenv("ROSTER_TEST_PG_DB"),
			SSLMode:  "disable",
		}
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	exec := db.NewExecutor(db.NewProvisioner(cfg), db.WithLogger(logger))
	svc := NewRosterService(exec, cfg.Dialect(), logger)

	ctx := context.Background()
	require.NoError(t, svc.DropSchema(ctx))
	require.NoError(t, svc.CreateSchema(ctx))
	return svc
}

func TestRosterScenario(t *testing.T) {
	ctx := context.Background()
	svc := newStore(t)

	courseID, err := svc.AddCourse(ctx, "Math")
	require.NoError(t, err)
	assert.Positive(t, courseID)

	students := []domain.NewStudent{
		{Name: "Ivanov Ivan", Birth: "1990-05-14"},
		{Name: "Petrova Maria", Birth: "1992-11-02"},
	}
	require.NoError(t, svc.ImportStudents(ctx, courseID, students))

	entries, err := svc.GetStudents(ctx, courseID)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	for i, e := range entries {
		assert.Equal(t, students[i].Name, e.Name)
		require.NotNil(t, e.Birth)
		assert.Equal(t, students[i].Birth, e.Birth.Format("2006-01-02"))
		assert.Equal(t, courseID, e.CourseID)
		assert.Equal(t, "Math", e.CourseName)
	}
}

func TestRejectedBirthIsRolledBack(t *testing.T) {
	ctx := context.Background()
	svc := newStore(t)

	id, err := svc.AddStudent(ctx, domain.NewStudent{Name: "Nobody", Birth: "not a date"})

	assert.ErrorIs(t, err, util.ErrOperationFailed)
	assert.Zero(t, id)
	n, err := svc.CountRows(ctx, "student")
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)
}

func TestEnrollTwiceKeepsOneRow(t *testing.T) {
	ctx := context.Background()
	svc := newStore(t)

	courseID, err := svc.AddCourse(ctx, "Math")
	require.NoError(t, err)
	studentID, err := svc.AddStudent(ctx, domain.NewStudent{Name: "Sokolov Vasily", Birth: "1979-03-04"})
	require.NoError(t, err)

	require.NoError(t, svc.EnrollStudent(ctx, studentID, courseID))
	require.NoError(t, svc.EnrollStudent(ctx, studentID, courseID))

	n, err := svc.CountRows(ctx, "student_course")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestCreateSchemaTwice(t *testing.T) {
	ctx := context.Background()
	svc := newStore(t)

	_, err := svc.AddCourse(ctx, "Math")
	require.NoError(t, err)
	require.NoError(t, svc.CreateSchema(ctx))

	rows, err := svc.DumpTable(ctx, "course")
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestMissingStudent(t *testing.T) {
	svc := newStore(t)

	students, err := svc.GetStudent(context.Background(), 12345)

	assert.NoError(t, err)
	assert.NotNil(t, students)
	assert.Empty(t, students)
}
