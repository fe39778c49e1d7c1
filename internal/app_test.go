// internal/app_test.go
package app

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campus-roster/internal/config"
	"campus-roster/pkg/db"
)

func newTestApplication(t *testing.T, dbCfg db.Config) *Application {
	t.Helper()
	application := NewApplication()
	cfg := &config.AppConfig{ServerPort: "0", LogLevel: "error", DB: dbCfg}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	require.NoError(t, application.InitializeWithConfig(context.Background(), cfg, logger))
	return application
}

func TestPopulate(t *testing.T) {
	application := newTestApplication(t, db.Config{
		Driver: db.DriverSQLite,
		Path:   filepath.Join(t.TempDir(), "roster.db"),
	})
	var out bytes.Buffer

	require.NoError(t, application.Populate(context.Background(), &out))

	want := "" +
		"Adding student Sokolov Vasily...\n" +
		"Id of Sokolov Vasily = 6\n" +
		"Students of course 1:\n" +
		"1. Ivanov Ivan, 05/14/1990\n" +
		"2. Petrova Maria, 11/02/1992\n" +
		"3. Sidorov Alexey, 01/23/1988\n" +
		"Students of course 2:\n" +
		"4. Kuznetsova Olga, 07/30/1995\n" +
		"5. Smirnov Pavel, 03/09/1991\n" +
		"Student with id=2:\n" +
		"2. Petrova Maria, 11/02/1992\n"
	assert.Equal(t, want, out.String())

	// A second run starts from scratch.
	out.Reset()
	require.NoError(t, application.Populate(context.Background(), &out))
	assert.Contains(t, out.String(), "Id of Sokolov Vasily = 6\n")
}

func TestPopulateAbortsWhenSchemaSetupFails(t *testing.T) {
	application := newTestApplication(t, db.Config{
		Driver: db.DriverSQLite,
		Path:   filepath.Join(t.TempDir(), "missing-dir", "roster.db"),
	})
	var out bytes.Buffer

	err := application.Populate(context.Background(), &out)

	assert.Error(t, err)
	assert.Empty(t, out.String())
}

func TestPrintTable(t *testing.T) {
	application := newTestApplication(t, db.Config{
		Driver: db.DriverSQLite,
		Path:   filepath.Join(t.TempDir(), "roster.db"),
	})
	ctx := context.Background()
	require.NoError(t, application.Populate(ctx, io.Discard))

	var out bytes.Buffer
	require.NoError(t, application.PrintTable(ctx, &out, "course"))
	assert.Equal(t, "course (2 rows)\n(1, Python Development)\n(2, Go Development)\n", out.String())

	assert.Error(t, application.PrintTable(ctx, &out, "wallets"))
}
