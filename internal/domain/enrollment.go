// internal/domain/enrollment.go
package domain

// Enrollment links a student to a course (student_course table).
// At most one row exists per (StudentID, CourseID) pair.
type Enrollment struct {
	ID        int64 `db:"id" json:"id"`
	StudentID int64 `db:"student_id" json:"student_id"` // Foreign key to Student
	CourseID  int64 `db:"course_id" json:"course_id"`   // Foreign key to Course
}

// RosterEntry is a student joined with one of the courses they attend.
type RosterEntry struct {
	Student
	CourseID   int64  `json:"course_id"`
	CourseName string `json:"course_name"`
}
