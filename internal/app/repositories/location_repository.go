package repositories

import (
	"sync"

	"github.com/chillstudy/backend/internal/app/models"
)

// LocationRepository stores locations in memory.
type LocationRepository struct {
	mu        sync.Mutex
	locations []models.Location
}

// NewLocationRepository creates an empty location store.
func NewLocationRepository() *LocationRepository {
	return &LocationRepository{}
}

// Create appends a location, allocating an id when none is set.
func (r *LocationRepository) Create(location models.Location) models.Location {
	r.mu.Lock()
	defer r.mu.Unlock()

	if location.ID == 0 {
		ids := make([]int64, 0, len(r.locations))
		for _, l := range r.locations {
			ids = append(ids, l.ID)
		}
		location.ID = nextID(ids)
	}
	r.locations = append(r.locations, location)
	return location
}

// GetByID returns the location with the given id, or absent.
func (r *LocationRepository) GetByID(id int64) (models.Location, bool) {
	if id <= 0 {
		return models.Location{}, false
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, location := range r.locations {
		if location.ID == id {
			return location, true
		}
	}
	return models.Location{}, false
}

// List returns all locations in insertion order.
func (r *LocationRepository) List() []models.Location {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]models.Location(nil), r.locations...)
}
