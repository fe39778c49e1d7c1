// internal/repository/course.go
package repository

import (
	"context"
	"fmt"

	"campus-roster/pkg/db"
)

// AddCourse inserts a course and leaves its new id pending.
func AddCourse(name string) db.UnitOfWork {
	return func(ctx context.Context, tx *db.Tx) error {
		if err := tx.Query(ctx, `INSERT INTO course (name) VALUES (?) RETURNING id`, name); err != nil {
			return fmt.Errorf("failed to insert course %q: %w", name, err)
		}
		return nil
	}
}
