package repositories

import (
	"sync"

	"github.com/chillstudy/backend/internal/app/models"
)

// CourseRepository stores course offerings in memory.
type CourseRepository struct {
	mu      sync.Mutex
	courses []models.Course
}

// NewCourseRepository creates an empty course store.
func NewCourseRepository() *CourseRepository {
	return &CourseRepository{}
}

// Create appends a course and returns the stored record. A zero ID is
// replaced with the next allocated identifier; a caller-assigned ID is kept
// (seed data relies on this).
func (r *CourseRepository) Create(course models.Course) models.Course {
	r.mu.Lock()
	defer r.mu.Unlock()

	if course.ID == 0 {
		ids := make([]int64, 0, len(r.courses))
		for _, c := range r.courses {
			ids = append(ids, c.ID)
		}
		course.ID = nextID(ids)
	}
	r.courses = append(r.courses, course)
	return course
}

// GetByID returns the course with the given id. A zero or negative id
// returns absent without scanning.
func (r *CourseRepository) GetByID(id int64) (models.Course, bool) {
	if id <= 0 {
		return models.Course{}, false
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, course := range r.courses {
		if course.ID == id {
			return course, true
		}
	}
	return models.Course{}, false
}

// List returns all courses in insertion order.
func (r *CourseRepository) List() []models.Course {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]models.Course(nil), r.courses...)
}
