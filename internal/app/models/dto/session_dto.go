package dto

import "github.com/chillstudy/backend/internal/app/models"

// CreateSessionRequest carries the raw submitted form fields for session
// creation. Course and location may come either as a record selection
// (CourseID/LocationID) or as free text (Course/Location). Numeric fields
// arrive as strings and are parsed defensively by the service.
type CreateSessionRequest struct {
	CourseID     string   `form:"course_id"`
	LocationID   string   `form:"location_id"`
	Course       string   `form:"course"`
	Location     string   `form:"location"`
	MaxAttendees string   `form:"max_attendees"`
	Description  string   `form:"description"`
	StartTime    string   `form:"start_time"`
	EndTime      string   `form:"end_time"`
	ChillLevel   string   `form:"chill_level"`
	RoomTypeID   string   `form:"room_type_id"`
	TagIDs       []string `form:"tag_ids"`
	ReminderTime string   `form:"reminder_time"`
}

// SessionDetail is the enriched session copy inside a view: the stored
// record plus the computed display strings and applied placeholders.
type SessionDetail struct {
	models.Session

	StartDisplay string `json:"startDisplay,omitempty"`
	EndDisplay   string `json:"endDisplay,omitempty"`
	TimeDisplay  string `json:"timeDisplay"`
}

// CourseSummary is the course slice of a session view. Term carries the
// display name (Fall/Spring/Summer) rather than the stored number.
type CourseSummary struct {
	Title     string `json:"title"`
	Section   string `json:"section,omitempty"`
	Year      int    `json:"year"`
	Term      string `json:"term"`
	Professor string `json:"professor"`
}

// LocationSummary is the location slice of a session view.
type LocationSummary struct {
	Label    string `json:"label"`
	MapQuery string `json:"mapQuery"`
}

// ReminderView is a reminder with its computed display time.
type ReminderView struct {
	models.Reminder

	ReminderDisplay string `json:"reminderDisplay"`
}

// SessionViewResponse is the denormalized, read-only aggregate for
// displaying one session.
type SessionViewResponse struct {
	Session         SessionDetail     `json:"session"`
	CourseDetails   *CourseSummary    `json:"courseDetails,omitempty"`
	LocationDetails *LocationSummary  `json:"locationDetails,omitempty"`
	RoomType        *models.RoomType  `json:"roomType,omitempty"`
	Tags            []models.Tag      `json:"tags"`
	Resources       []models.Resource `json:"resources"`
	Reminders       []ReminderView    `json:"reminders"`
	AttendeeList    []string          `json:"attendeeList"`
	AttendeeCount   int               `json:"attendeeCount"`
}

// TermOption is one entry of the dashboard's term filter.
type TermOption struct {
	Value int    `json:"value"`
	Label string `json:"label"`
}

// DashboardResponse is the home-page aggregate: both session buckets plus
// the distinct filter option lists.
type DashboardResponse struct {
	MySessions        []models.Session  `json:"mySessions"`
	JoinSessions      []models.Session  `json:"joinSessions"`
	Courses           []models.Course   `json:"courses"`
	Locations         []models.Location `json:"locations"`
	CourseTitles      []string          `json:"courseTitles"`
	LocationAddresses []string          `json:"locationAddresses"`
	CourseYears       []int             `json:"courseYears"`
	ProfessorNames    []string          `json:"professorNames"`
	TermOptions       []TermOption      `json:"termOptions"`
}
