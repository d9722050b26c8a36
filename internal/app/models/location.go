package models

// Location represents a physical meeting place. A location is unique by
// (address, room_number), compared case-insensitively.
type Location struct {
	ID         int64  `json:"id"`
	Address    string `json:"address"`
	RoomNumber string `json:"roomNumber"`
}

// Label composes the display string for a location, appending the room
// number when present.
func (l Location) Label() string {
	label := l.Address
	if l.RoomNumber != "" {
		label += " - Room " + l.RoomNumber
	}
	return label
}

// RoomType is read-only reference data describing the kind of meeting place.
type RoomType struct {
	ID    int64  `json:"id"`
	Label string `json:"label"`
}
