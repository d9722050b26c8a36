// Package repositories holds the in-memory entity stores. Each store guards
// its records with a mutex (the read-modify-append sequences here are not
// otherwise atomic) and allocates identifiers as max(id)+1, so ids are never
// reused within a process lifetime even after a record is removed.
//
// The stores are the in-process analog of the future database schema; the
// service layer only sees these types, so swapping in a persistent backend
// is a repository-layer change.
package repositories

// Repositories bundles every entity store for dependency injection.
type Repositories struct {
	Courses     *CourseRepository
	Locations   *LocationRepository
	RoomTypes   *RoomTypeRepository
	Tags        *TagRepository
	SessionTags *SessionTagRepository
	Resources   *ResourceRepository
	Reminders   *ReminderRepository
	Sessions    *SessionRepository
}

// NewRepositories creates the full set of empty stores.
func NewRepositories() *Repositories {
	return &Repositories{
		Courses:     NewCourseRepository(),
		Locations:   NewLocationRepository(),
		RoomTypes:   NewRoomTypeRepository(),
		Tags:        NewTagRepository(),
		SessionTags: NewSessionTagRepository(),
		Resources:   NewResourceRepository(),
		Reminders:   NewReminderRepository(),
		Sessions:    NewSessionRepository(),
	}
}

// nextID derives the next identifier for a collection: 1 when empty,
// otherwise max(id)+1. Gaps are never filled.
func nextID(ids []int64) int64 {
	var max int64
	for _, id := range ids {
		if id > max {
			max = id
		}
	}
	return max + 1
}
