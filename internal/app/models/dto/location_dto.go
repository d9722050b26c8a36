package dto

// CreateLocationRequest carries the raw submitted fields for location
// creation.
type CreateLocationRequest struct {
	Address    string `json:"address" example:"Main Library"`
	RoomNumber string `json:"room_number" example:"101"`
}
