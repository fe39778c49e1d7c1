// internal/repository/enrollment.go
package repository

import (
	"context"
	"fmt"

	"campus-roster/pkg/db"
)

const insertEnrollment = `INSERT INTO student_course (student_id, course_id) VALUES (?, ?)`

// AddStudentToCourse enrolls a student unless the pair is already enrolled.
// The existence check and the insert are not atomic against other writers;
// duplicates are only prevented for a single caller.
func AddStudentToCourse(studentID, courseID int64) db.UnitOfWork {
	return func(ctx context.Context, tx *db.Tx) error {
		query := `SELECT id FROM student_course WHERE student_id = ? AND course_id = ?`
		if err := tx.Query(ctx, query, studentID, courseID); err != nil {
			return fmt.Errorf("failed to check enrollment: %w", err)
		}
		existing, err := tx.FetchAll()
		if err != nil {
			return fmt.Errorf("failed to read enrollment check: %w", err)
		}
		if len(existing) > 0 {
			return nil
		}
		if err := tx.Exec(ctx, insertEnrollment, studentID, courseID); err != nil {
			return fmt.Errorf("failed to enroll student %d in course %d: %w", studentID, courseID, err)
		}
		return nil
	}
}
