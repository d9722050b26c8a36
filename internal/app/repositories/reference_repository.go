package repositories

import (
	"sync"

	"github.com/chillstudy/backend/internal/app/models"
)

// RoomTypeRepository stores the room type reference data. Room types are
// lookup-only in the application; Create exists for seeding.
type RoomTypeRepository struct {
	mu        sync.Mutex
	roomTypes []models.RoomType
}

// NewRoomTypeRepository creates an empty room type store.
func NewRoomTypeRepository() *RoomTypeRepository {
	return &RoomTypeRepository{}
}

// Create appends a room type, allocating an id when none is set.
func (r *RoomTypeRepository) Create(roomType models.RoomType) models.RoomType {
	r.mu.Lock()
	defer r.mu.Unlock()

	if roomType.ID == 0 {
		ids := make([]int64, 0, len(r.roomTypes))
		for _, rt := range r.roomTypes {
			ids = append(ids, rt.ID)
		}
		roomType.ID = nextID(ids)
	}
	r.roomTypes = append(r.roomTypes, roomType)
	return roomType
}

// GetByID returns the room type with the given id, or absent.
func (r *RoomTypeRepository) GetByID(id int64) (models.RoomType, bool) {
	if id <= 0 {
		return models.RoomType{}, false
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, roomType := range r.roomTypes {
		if roomType.ID == id {
			return roomType, true
		}
	}
	return models.RoomType{}, false
}

// List returns all room types in insertion order.
func (r *RoomTypeRepository) List() []models.RoomType {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]models.RoomType(nil), r.roomTypes...)
}

// TagRepository stores the tag reference data.
type TagRepository struct {
	mu   sync.Mutex
	tags []models.Tag
}

// NewTagRepository creates an empty tag store.
func NewTagRepository() *TagRepository {
	return &TagRepository{}
}

// Create appends a tag, allocating an id when none is set.
func (r *TagRepository) Create(tag models.Tag) models.Tag {
	r.mu.Lock()
	defer r.mu.Unlock()

	if tag.ID == 0 {
		ids := make([]int64, 0, len(r.tags))
		for _, t := range r.tags {
			ids = append(ids, t.ID)
		}
		tag.ID = nextID(ids)
	}
	r.tags = append(r.tags, tag)
	return tag
}

// GetByID returns the tag with the given id, or absent.
func (r *TagRepository) GetByID(id int64) (models.Tag, bool) {
	if id <= 0 {
		return models.Tag{}, false
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, tag := range r.tags {
		if tag.ID == id {
			return tag, true
		}
	}
	return models.Tag{}, false
}

// List returns all tags in insertion order.
func (r *TagRepository) List() []models.Tag {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]models.Tag(nil), r.tags...)
}

// SessionTagRepository stores the session-to-tag join rows.
type SessionTagRepository struct {
	mu    sync.Mutex
	links []models.SessionTagLink
}

// NewSessionTagRepository creates an empty link store.
func NewSessionTagRepository() *SessionTagRepository {
	return &SessionTagRepository{}
}

// Add appends a session/tag link row.
func (r *SessionTagRepository) Add(sessionID, tagID int64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.links = append(r.links, models.SessionTagLink{SessionID: sessionID, TagID: tagID})
}

// TagIDsForSession returns the tag ids linked to a session, in store order.
func (r *SessionTagRepository) TagIDsForSession(sessionID int64) []int64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	var ids []int64
	for _, link := range r.links {
		if link.SessionID == sessionID {
			ids = append(ids, link.TagID)
		}
	}
	return ids
}
