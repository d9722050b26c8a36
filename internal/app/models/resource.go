package models

// Resource is an uploaded reference file belonging to exactly one session.
// ResourceURL points at the stored copy; ResourceName keeps the sanitized
// original filename for display.
type Resource struct {
	ID           int64  `json:"id"`
	SessionID    int64  `json:"sessionId"`
	ResourceName string `json:"resourceName"`
	ResourceURL  string `json:"resourceUrl"`
	UpdatedBy    string `json:"updatedBy"`
}

// Reminder is a scheduled notification tied to one session and one user.
type Reminder struct {
	ID           int64  `json:"id"`
	SessionID    int64  `json:"sessionId"`
	UserID       int64  `json:"userId"`
	ReminderTime string `json:"reminderTime"`
	ReminderSent bool   `json:"reminderSent"`
}
