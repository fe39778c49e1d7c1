// internal/repository/student.go
package repository

import (
	"context"
	"fmt"

	"campus-roster/internal/domain"
	"campus-roster/pkg/db"
)

const insertStudent = `INSERT INTO student (name, gpa, birth) VALUES (?, ?, ?) RETURNING id`

// AddStudent inserts one student. The new id is left pending as a single
// one-column row.
func AddStudent(student domain.NewStudent) db.UnitOfWork {
	return func(ctx context.Context, tx *db.Tx) error {
		if err := tx.Query(ctx, insertStudent, student.Name, student.GPA, student.BirthArg()); err != nil {
			return fmt.Errorf("failed to insert student %q: %w", student.Name, err)
		}
		return nil
	}
}

// AddStudents inserts every student and enrolls each one in courseID, all
// in the caller's transaction: a failure part-way undoes the whole batch.
func AddStudents(courseID int64, students []domain.NewStudent) db.UnitOfWork {
	return func(ctx context.Context, tx *db.Tx) error {
		for _, student := range students {
			if err := tx.Query(ctx, insertStudent, student.Name, student.GPA, student.BirthArg()); err != nil {
				return fmt.Errorf("failed to insert student %q: %w", student.Name, err)
			}
			row, err := tx.FetchOne()
			if err != nil {
				return fmt.Errorf("failed to read id of student %q: %w", student.Name, err)
			}
			studentID, ok := row.Int64(0)
			if !ok {
				continue
			}
			if err := tx.Exec(ctx, insertEnrollment, studentID, courseID); err != nil {
				return fmt.Errorf("failed to enroll student %d in course %d: %w", studentID, courseID, err)
			}
		}
		return nil
	}
}

// GetStudent selects the student with the given id. No match leaves an
// empty result set, which is not an error.
func GetStudent(id int64) db.UnitOfWork {
	return func(ctx context.Context, tx *db.Tx) error {
		query := `SELECT id, name, gpa, birth FROM student WHERE id = ?`
		if err := tx.Query(ctx, query, id); err != nil {
			return fmt.Errorf("failed to get student by ID %d: %w", id, err)
		}
		return nil
	}
}

// GetStudents selects the roster of a course: student columns followed by
// the course id and name.
func GetStudents(courseID int64) db.UnitOfWork {
	return func(ctx context.Context, tx *db.Tx) error {
		query := `
		SELECT s.id, s.name, s.gpa, s.birth, c.id, c.name
		FROM student_course sc
		JOIN student s ON s.id = sc.student_id
		JOIN course c ON c.id = sc.course_id
		WHERE c.id = ?
		ORDER BY s.id`
		if err := tx.Query(ctx, query, courseID); err != nil {
			return fmt.Errorf("failed to fetch students for course %d: %w", courseID, err)
		}
		return nil
	}
}
