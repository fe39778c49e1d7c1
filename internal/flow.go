// internal/flow.go
package app

import (
	"context"
	"fmt"
	"io"

	"campus-roster/internal/report"
	"campus-roster/internal/seed"
)

// Populate drops and recreates the schema, then loads the seed data and
// prints the course rosters to w. Only a schema failure aborts the run;
// entity failures are logged and the run continues.
func (app *Application) Populate(ctx context.Context, w io.Writer) error {
	svc := app.RosterService

	if err := svc.DropSchema(ctx); err != nil {
		return fmt.Errorf("failed to drop schema: %w", err)
	}
	if err := svc.CreateSchema(ctx); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	courseIDs, err := svc.AddCourses(ctx, seed.Courses)
	if err != nil {
		app.Logger.Error("Some courses could not be added", "error", err)
	}
	for i, courseID := range courseIDs {
		if courseID == 0 {
			continue
		}
		if err := svc.ImportStudents(ctx, courseID, seed.StudentsByCourse[i+1]); err != nil {
			app.Logger.Error("Failed to import students", "course_id", courseID, "error", err)
		}
	}

	fmt.Fprintf(w, "Adding student %s...\n", seed.LateStudent.Name)
	lateID, err := svc.AddStudent(ctx, seed.LateStudent)
	if err != nil {
		app.Logger.Error("Failed to add student", "name", seed.LateStudent.Name, "error", err)
	} else {
		fmt.Fprintf(w, "Id of %s = %d\n", seed.LateStudent.Name, lateID)
	}

	for _, courseID := range courseIDs {
		if courseID == 0 {
			continue
		}
		if err := app.PrintCourse(ctx, w, courseID); err != nil {
			app.Logger.Error("Failed to report course", "course_id", courseID, "error", err)
		}
	}

	if err := app.PrintStudent(ctx, w, 2); err != nil {
		app.Logger.Error("Failed to report student", "student_id", 2, "error", err)
	}
	return nil
}

// PrintCourse prints the roster of one course.
func (app *Application) PrintCourse(ctx context.Context, w io.Writer, courseID int64) error {
	entries, err := app.RosterService.GetStudents(ctx, courseID)
	if err != nil {
		return err
	}
	return report.Roster(w, fmt.Sprintf("Students of course %d:", courseID), entries)
}

// PrintStudent prints the student with the given id; no match prints only
// the caption.
func (app *Application) PrintStudent(ctx context.Context, w io.Writer, studentID int64) error {
	students, err := app.RosterService.GetStudent(ctx, studentID)
	if err != nil {
		return err
	}
	return report.StudentList(w, fmt.Sprintf("Student with id=%d:", studentID), students)
}

// PrintTable prints every row of one schema table.
func (app *Application) PrintTable(ctx context.Context, w io.Writer, table string) error {
	rows, err := app.RosterService.DumpTable(ctx, table)
	if err != nil {
		return err
	}
	return report.Table(w, table, rows)
}
