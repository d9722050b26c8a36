package models

// Chill levels a session may advertise. Any other marker submitted at
// creation time is dropped to the empty string.
var ChillLevels = []string{"😎", "🤓", "😤"}

// IsChillLevel reports whether marker is one of the accepted chill levels.
func IsChillLevel(marker string) bool {
	for _, level := range ChillLevels {
		if marker == level {
			return true
		}
	}
	return false
}

// Session is a scheduled study gathering. It lives in exactly one of the two
// session stores: "my" sessions (organized or already joined by the current
// user) or "join" sessions (joinable, not yet joined).
//
// CourseID, LocationID and RoomTypeID may be nil; they are resolved at view
// time and a stale reference degrades to an absent relation rather than an
// error. ProfessorName, Year, Term and Section are denormalized from the
// selected course at creation time so the view keeps rendering them even if
// the course record later disappears.
type Session struct {
	ID           int64          `json:"id"`
	CourseID     *int64         `json:"courseId,omitempty"`
	LocationID   *int64         `json:"locationId,omitempty"`
	RoomTypeID   *int64         `json:"roomTypeId,omitempty"`
	Title        string         `json:"title"`
	Location     string         `json:"location,omitempty"`
	Time         string         `json:"time,omitempty"`
	StartTime    string         `json:"startTime,omitempty"`
	EndTime      string         `json:"endTime,omitempty"`
	Attendees    int            `json:"attendees"`
	MaxAttendees int            `json:"maxAttendees"`
	Description  string         `json:"description,omitempty"`
	Notes        string         `json:"notes,omitempty"`
	AttendeeList AttendeeRoster `json:"attendeeList,omitempty"`
	Organizer    string         `json:"organizer,omitempty"`
	ChillLevel   string         `json:"chillLevel,omitempty"`

	// CourseName keeps the free-text course input when no course record was
	// selected at creation time.
	CourseName string `json:"courseName,omitempty"`

	// Denormalized course fields.
	ProfessorName string `json:"professorName,omitempty"`
	Year          int    `json:"year,omitempty"`
	Term          int    `json:"term,omitempty"`
	Section       string `json:"section,omitempty"`

	TagIDs      []int64 `json:"tagIds,omitempty"`
	ResourceIDs []int64 `json:"resourceIds,omitempty"`
	ReminderIDs []int64 `json:"reminderIds,omitempty"`
}

// Clone returns a deep copy of the session so view building never mutates
// the stored record.
func (s Session) Clone() Session {
	clone := s
	if s.CourseID != nil {
		id := *s.CourseID
		clone.CourseID = &id
	}
	if s.LocationID != nil {
		id := *s.LocationID
		clone.LocationID = &id
	}
	if s.RoomTypeID != nil {
		id := *s.RoomTypeID
		clone.RoomTypeID = &id
	}
	clone.TagIDs = append([]int64(nil), s.TagIDs...)
	clone.ResourceIDs = append([]int64(nil), s.ResourceIDs...)
	clone.ReminderIDs = append([]int64(nil), s.ReminderIDs...)
	clone.AttendeeList = s.AttendeeList.clone()
	return clone
}
