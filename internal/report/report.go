// Package report renders already-fetched rows for the console.
package report

import (
	"fmt"
	"io"
	"strings"

	"campus-roster/internal/domain"
	"campus-roster/pkg/db"
)

// BirthLayout is the date format used in student listings.
const BirthLayout = "01/02/2006"

// StudentList writes the caption followed by one "<id>. <name>, <birth>"
// line per student. A missing birth date prints as an empty field.
func StudentList(w io.Writer, caption string, students []domain.Student) error {
	if _, err := fmt.Fprintln(w, caption); err != nil {
		return err
	}
	for _, s := range students {
		birth := ""
		if s.Birth != nil {
			birth = s.Birth.Format(BirthLayout)
		}
		if _, err := fmt.Fprintf(w, "%d. %s, %s\n", s.ID, s.Name, birth); err != nil {
			return err
		}
	}
	return nil
}

// Roster writes a course roster in the StudentList format.
func Roster(w io.Writer, caption string, entries []domain.RosterEntry) error {
	students := make([]domain.Student, len(entries))
	for i, e := range entries {
		students[i] = e.Student
	}
	return StudentList(w, caption, students)
}

// Table writes raw rows, one per line, with NULL shown as "NULL".
func Table(w io.Writer, table string, rows []db.Row) error {
	if _, err := fmt.Fprintf(w, "%s (%d rows)\n", table, len(rows)); err != nil {
		return err
	}
	for _, row := range rows {
		cells := make([]string, len(row))
		for i := range row {
			if row[i] == nil {
				cells[i] = "NULL"
				continue
			}
			cells[i] = row.String(i)
		}
		if _, err := fmt.Fprintf(w, "(%s)\n", strings.Join(cells, ", ")); err != nil {
			return err
		}
	}
	return nil
}
