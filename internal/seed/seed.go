// Package seed holds the fixed data the run command loads into a fresh schema.
package seed

import "campus-roster/internal/domain"

// Courses are inserted in order, so they receive ids 1..n on a fresh schema.
var Courses = []string{
	"Python Development",
	"Go Development",
}

// StudentsByCourse maps a course position (1-based, matching Courses) to the
// students imported into it.
var StudentsByCourse = map[int][]domain.NewStudent{
	1: {
		{Name: "Ivanov Ivan", Birth: "1990-05-14"},
		{Name: "Petrova Maria", Birth: "1992-11-02"},
		{Name: "Sidorov Alexey", Birth: "1988-01-23"},
	},
	2: {
		{Name: "Kuznetsova Olga", Birth: "1995-07-30"},
		{Name: "Smirnov Pavel", Birth: "1991-03-09"},
	},
}

// LateStudent is added on its own after the bulk imports.
var LateStudent = domain.NewStudent{Name: "Sokolov Vasily", Birth: "1979-03-04"}
