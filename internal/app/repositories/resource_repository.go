package repositories

import (
	"sync"

	"github.com/chillstudy/backend/internal/app/models"
)

// ResourceRepository stores uploaded resource records in memory.
type ResourceRepository struct {
	mu        sync.Mutex
	resources []models.Resource
}

// NewResourceRepository creates an empty resource store.
func NewResourceRepository() *ResourceRepository {
	return &ResourceRepository{}
}

// Create appends a resource, allocating an id when none is set.
func (r *ResourceRepository) Create(resource models.Resource) models.Resource {
	r.mu.Lock()
	defer r.mu.Unlock()

	if resource.ID == 0 {
		ids := make([]int64, 0, len(r.resources))
		for _, res := range r.resources {
			ids = append(ids, res.ID)
		}
		resource.ID = nextID(ids)
	}
	r.resources = append(r.resources, resource)
	return resource
}

// GetByID returns the resource with the given id, or absent.
func (r *ResourceRepository) GetByID(id int64) (models.Resource, bool) {
	if id <= 0 {
		return models.Resource{}, false
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, resource := range r.resources {
		if resource.ID == id {
			return resource, true
		}
	}
	return models.Resource{}, false
}

// ListBySession returns every resource owned by the session, in store order.
func (r *ResourceRepository) ListBySession(sessionID int64) []models.Resource {
	r.mu.Lock()
	defer r.mu.Unlock()

	var owned []models.Resource
	for _, resource := range r.resources {
		if resource.SessionID == sessionID {
			owned = append(owned, resource)
		}
	}
	return owned
}

// ReminderRepository stores reminder records in memory.
type ReminderRepository struct {
	mu        sync.Mutex
	reminders []models.Reminder
}

// NewReminderRepository creates an empty reminder store.
func NewReminderRepository() *ReminderRepository {
	return &ReminderRepository{}
}

// Create appends a reminder, allocating an id when none is set.
func (r *ReminderRepository) Create(reminder models.Reminder) models.Reminder {
	r.mu.Lock()
	defer r.mu.Unlock()

	if reminder.ID == 0 {
		ids := make([]int64, 0, len(r.reminders))
		for _, rem := range r.reminders {
			ids = append(ids, rem.ID)
		}
		reminder.ID = nextID(ids)
	}
	r.reminders = append(r.reminders, reminder)
	return reminder
}

// ListBySession returns every reminder owned by the session, in store order.
func (r *ReminderRepository) ListBySession(sessionID int64) []models.Reminder {
	r.mu.Lock()
	defer r.mu.Unlock()

	var owned []models.Reminder
	for _, reminder := range r.reminders {
		if reminder.SessionID == sessionID {
			owned = append(owned, reminder)
		}
	}
	return owned
}
