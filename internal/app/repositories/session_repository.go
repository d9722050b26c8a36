package repositories

import (
	"sync"

	"github.com/chillstudy/backend/internal/app/models"
)

// SessionRepository stores sessions split across two disjoint buckets:
// "my" sessions (organized or joined by the current user) and "join"
// sessions (joinable, not yet joined). A session is never in both.
// Identifiers are allocated over the union of the buckets so they stay
// globally unique.
type SessionRepository struct {
	mu           sync.Mutex
	mySessions   []models.Session
	joinSessions []models.Session
}

// NewSessionRepository creates an empty session store.
func NewSessionRepository() *SessionRepository {
	return &SessionRepository{}
}

// NextID returns the next session identifier across both buckets.
func (r *SessionRepository) NextID() int64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	return nextID(r.unionIDs())
}

func (r *SessionRepository) unionIDs() []int64 {
	ids := make([]int64, 0, len(r.mySessions)+len(r.joinSessions))
	for _, s := range r.mySessions {
		ids = append(ids, s.ID)
	}
	for _, s := range r.joinSessions {
		ids = append(ids, s.ID)
	}
	return ids
}

// CreateMy appends a session to the "my" bucket, allocating an id over the
// union of both buckets when none is set. Newly created sessions always land
// here; the creator is attendee #1.
func (r *SessionRepository) CreateMy(session models.Session) models.Session {
	r.mu.Lock()
	defer r.mu.Unlock()

	if session.ID == 0 {
		session.ID = nextID(r.unionIDs())
	}
	r.mySessions = append(r.mySessions, session)
	return session
}

// CreateJoinable appends a session to the "join" bucket (seed data only in
// the current flows).
func (r *SessionRepository) CreateJoinable(session models.Session) models.Session {
	r.mu.Lock()
	defer r.mu.Unlock()

	if session.ID == 0 {
		session.ID = nextID(r.unionIDs())
	}
	r.joinSessions = append(r.joinSessions, session)
	return session
}

// GetByID searches both buckets for a session. A zero or negative id
// returns absent without scanning.
func (r *SessionRepository) GetByID(id int64) (models.Session, bool) {
	if id <= 0 {
		return models.Session{}, false
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, bucket := range [][]models.Session{r.mySessions, r.joinSessions} {
		for _, session := range bucket {
			if session.ID == id {
				return session.Clone(), true
			}
		}
	}
	return models.Session{}, false
}

// ListMy returns the "my" bucket in insertion order.
func (r *SessionRepository) ListMy() []models.Session {
	r.mu.Lock()
	defer r.mu.Unlock()

	return cloneSessions(r.mySessions)
}

// ListJoinable returns the "join" bucket in insertion order.
func (r *SessionRepository) ListJoinable() []models.Session {
	r.mu.Lock()
	defer r.mu.Unlock()

	return cloneSessions(r.joinSessions)
}

// RemoveMy removes a session from the "my" bucket only, reporting whether a
// record was removed. Its id is never reissued.
func (r *SessionRepository) RemoveMy(id int64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, session := range r.mySessions {
		if session.ID == id {
			r.mySessions = append(r.mySessions[:i], r.mySessions[i+1:]...)
			return true
		}
	}
	return false
}

// UpdateMy replaces a session in the "my" bucket by id, reporting whether a
// record was found. Used when post-creation uploads extend the resource id
// list.
func (r *SessionRepository) UpdateMy(session models.Session) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, existing := range r.mySessions {
		if existing.ID == session.ID {
			r.mySessions[i] = session
			return true
		}
	}
	return false
}

func cloneSessions(sessions []models.Session) []models.Session {
	clones := make([]models.Session, 0, len(sessions))
	for _, session := range sessions {
		clones = append(clones, session.Clone())
	}
	return clones
}
