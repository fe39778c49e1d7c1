// internal/repository/schema.go
package repository

import (
	"context"
	"fmt"

	"campus-roster/pkg/db"
)

// Tables in dependency order: student_course holds the foreign keys and is
// dropped first.
var dropOrder = []string{"student_course", "course", "student"}

var createStatements = map[db.Dialect][]string{
	db.DialectPostgres: {
		`CREATE TABLE IF NOT EXISTS student (
			id SERIAL PRIMARY KEY,
			name VARCHAR(100) NOT NULL,
			gpa NUMERIC(10,2),
			birth TIMESTAMP WITH TIME ZONE)`,
		`CREATE TABLE IF NOT EXISTS course (
			id SERIAL PRIMARY KEY,
			name VARCHAR(100) NOT NULL)`,
		`CREATE TABLE IF NOT EXISTS student_course (
			id SERIAL PRIMARY KEY,
			student_id INTEGER REFERENCES student(id),
			course_id INTEGER REFERENCES course(id))`,
	},
	// SQLite does not validate timestamps, so the CHECK rejects text that
	// julianday cannot parse, matching PostgreSQL's input validation.
	db.DialectSQLite: {
		`CREATE TABLE IF NOT EXISTS student (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name VARCHAR(100) NOT NULL,
			gpa NUMERIC(10,2),
			birth TIMESTAMP CHECK (birth IS NULL OR julianday(birth) IS NOT NULL))`,
		`CREATE TABLE IF NOT EXISTS course (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name VARCHAR(100) NOT NULL)`,
		`CREATE TABLE IF NOT EXISTS student_course (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			student_id INTEGER REFERENCES student(id),
			course_id INTEGER REFERENCES course(id))`,
	},
}

// DropAll drops every table of the schema.
func DropAll() db.UnitOfWork {
	return func(ctx context.Context, tx *db.Tx) error {
		for _, table := range dropOrder {
			if err := tx.Exec(ctx, "DROP TABLE IF EXISTS "+table); err != nil {
				return fmt.Errorf("failed to drop table %s: %w", table, err)
			}
		}
		return nil
	}
}

// CreateAll creates every table of the schema that does not exist yet.
func CreateAll(dialect db.Dialect) db.UnitOfWork {
	return func(ctx context.Context, tx *db.Tx) error {
		statements, ok := createStatements[dialect]
		if !ok {
			return fmt.Errorf("no schema for dialect %q", dialect)
		}
		for _, stmt := range statements {
			if err := tx.Exec(ctx, stmt); err != nil {
				return fmt.Errorf("failed to create schema: %w", err)
			}
		}
		return nil
	}
}
