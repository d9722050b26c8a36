package dto

import (
	"bytes"
	"strings"
)

// IntString accepts either a JSON number or a numeric string; clients have
// historically sent both. The raw text is kept so the service layer can
// produce the field-level validation message on parse failure.
type IntString string

// UnmarshalJSON implements json.Unmarshaler.
func (v *IntString) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if bytes.Equal(trimmed, []byte("null")) {
		*v = ""
		return nil
	}
	*v = IntString(strings.Trim(string(trimmed), `"`))
	return nil
}

// String returns the raw submitted text.
func (v IntString) String() string {
	return string(v)
}

// CreateCourseRequest carries the raw submitted fields for course creation.
// All validation happens in the service so failures map onto the shared
// error taxonomy.
type CreateCourseRequest struct {
	Title         string    `json:"title" example:"Algorithms"`
	Section       string    `json:"section" example:"A"`
	ProfessorName string    `json:"professor_name" example:"Dr. Reyes"`
	Year          IntString `json:"year" swaggertype:"string" example:"2025"`
	Term          IntString `json:"term" swaggertype:"string" example:"1"`
}
