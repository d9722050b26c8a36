package seed

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/chillstudy/backend/internal/app/repositories"
)

func TestCreateDefaultData(t *testing.T) {
	repos := repositories.NewRepositories()
	if err := CreateDefaultData(context.Background(), repos, zerolog.Nop()); err != nil {
		t.Fatalf("CreateDefaultData: %v", err)
	}

	t.Run("reference lists populated", func(t *testing.T) {
		if got := len(repos.RoomTypes.List()); got != 3 {
			t.Errorf("room types = %d, want 3", got)
		}
		if got := len(repos.Tags.List()); got != 4 {
			t.Errorf("tags = %d, want 4", got)
		}
		if got := len(repos.Courses.List()); got != 6 {
			t.Errorf("courses = %d, want 6", got)
		}
		if got := len(repos.Locations.List()); got != 8 {
			t.Errorf("locations = %d, want 8", got)
		}
	})

	t.Run("session id sequence starts past the gap", func(t *testing.T) {
		// Demo session ids are 1, 2, 13 plus the join bucket; the next
		// allocation must continue from the maximum, not fill the gap.
		if got := repos.Sessions.NextID(); got != 14 {
			t.Errorf("NextID = %d, want 14", got)
		}
	})

	t.Run("session references resolve", func(t *testing.T) {
		session, ok := repos.Sessions.GetByID(1)
		if !ok {
			t.Fatal("session 1 missing")
		}
		if _, ok := repos.Courses.GetByID(*session.CourseID); !ok {
			t.Errorf("course %d missing", *session.CourseID)
		}
		if _, ok := repos.Locations.GetByID(*session.LocationID); !ok {
			t.Errorf("location %d missing", *session.LocationID)
		}
		for _, tagID := range session.TagIDs {
			if _, ok := repos.Tags.GetByID(tagID); !ok {
				t.Errorf("tag %d missing", tagID)
			}
		}
		if got := len(repos.Resources.ListBySession(1)); got != 1 {
			t.Errorf("session 1 has %d resources, want 1", got)
		}
		if got := len(repos.Reminders.ListBySession(1)); got != 1 {
			t.Errorf("session 1 has %d reminders, want 1", got)
		}
	})

	t.Run("link-derived tags exist for the record without explicit ids", func(t *testing.T) {
		session, ok := repos.Sessions.GetByID(3)
		if !ok {
			t.Fatal("session 3 missing")
		}
		if len(session.TagIDs) != 0 {
			t.Fatalf("session 3 TagIDs = %v, want none", session.TagIDs)
		}
		if got := repos.SessionTags.TagIDsForSession(3); len(got) != 2 {
			t.Errorf("link rows for session 3 = %v, want 2 entries", got)
		}
	})
}
