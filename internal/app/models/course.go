package models

import "strconv"

// Term values used by course offerings.
const (
	TermFall   = 1
	TermSpring = 2
	TermSummer = 3
)

var termNames = map[int]string{
	TermFall:   "Fall",
	TermSpring: "Spring",
	TermSummer: "Summer",
}

// TermName returns the display name for a term value. Unknown values fall
// back to the numeric value so stored data never fails to render.
func TermName(term int) string {
	if name, ok := termNames[term]; ok {
		return name
	}
	return strconv.Itoa(term)
}

// Course represents a course offering that study sessions may reference.
// A course is unique by (title, section, year, term), compared
// case-insensitively.
type Course struct {
	ID            int64  `json:"id"`
	Title         string `json:"title"`
	Section       string `json:"section,omitempty"`
	Year          int    `json:"year"`
	Term          int    `json:"term"`
	ProfessorName string `json:"professorName"`
}
