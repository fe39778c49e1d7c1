// internal/domain/student.go
package domain

import (
	"time"

	"github.com/shopspring/decimal" // GPA is NUMERIC(10,2) in DB
)

// Student represents a row of the student table.
type Student struct {
	ID    int64               `db:"id" json:"id"`       // Primary key, SERIAL in DB
	Name  string              `db:"name" json:"name"`   // Full name, required
	GPA   decimal.NullDecimal `db:"gpa" json:"gpa"`     // Optional grade-point average
	Birth *time.Time          `db:"birth" json:"birth"` // Optional birth date
}

// NewStudent is the input for a student insert. Birth is passed to the
// database as text and parsed there, so malformed dates fail the insert.
type NewStudent struct {
	Name  string              `yaml:"name" json:"name"`
	Birth string              `yaml:"birth" json:"birth"`
	GPA   decimal.NullDecimal `yaml:"-" json:"gpa"`
}

// BirthArg returns the value bound for the birth column: nil when unset.
func (s NewStudent) BirthArg() any {
	if s.Birth == "" {
		return nil
	}
	return s.Birth
}

