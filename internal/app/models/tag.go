package models

// Tag is a free-form label attachable to sessions.
type Tag struct {
	ID    int64  `json:"id"`
	Label string `json:"label"`
}

// SessionTagLink joins sessions and tags many-to-many.
type SessionTagLink struct {
	SessionID int64 `json:"sessionId"`
	TagID     int64 `json:"tagId"`
}
