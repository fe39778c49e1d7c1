// internal/domain/course.go
package domain

// Course represents a row of the course table.
type Course struct {
	ID   int64  `db:"id" json:"id"`     // Primary key, SERIAL in DB
	Name string `db:"name" json:"name"` // Course name, required
}
