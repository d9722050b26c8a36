package repositories_test

import (
	"testing"

	"github.com/chillstudy/backend/internal/app/models"
	"github.com/chillstudy/backend/internal/app/repositories"
)

func TestCourseRepositoryIDAllocation(t *testing.T) {
	t.Run("first id is 1", func(t *testing.T) {
		repo := repositories.NewCourseRepository()

		course := repo.Create(models.Course{Title: "Algorithms"})
		if course.ID != 1 {
			t.Fatalf("first id = %d, want 1", course.ID)
		}
	})

	t.Run("next id is max plus one regardless of gaps", func(t *testing.T) {
		repo := repositories.NewCourseRepository()
		for _, id := range []int64{2, 9, 5} {
			repo.Create(models.Course{ID: id})
		}

		course := repo.Create(models.Course{Title: "Operating Systems"})
		if course.ID != 10 {
			t.Fatalf("allocated id = %d, want 10", course.ID)
		}
	})

	t.Run("caller-assigned ids are kept", func(t *testing.T) {
		repo := repositories.NewCourseRepository()

		course := repo.Create(models.Course{ID: 42, Title: "Seeded"})
		if course.ID != 42 {
			t.Fatalf("id = %d, want 42", course.ID)
		}
	})
}

func TestCourseRepositoryGetByID(t *testing.T) {
	repo := repositories.NewCourseRepository()
	created := repo.Create(models.Course{Title: "Data Structures", Section: "A"})

	got, ok := repo.GetByID(created.ID)
	if !ok {
		t.Fatalf("GetByID(%d) reported absent", created.ID)
	}
	if got.Title != "Data Structures" {
		t.Errorf("Title = %q, want %q", got.Title, "Data Structures")
	}

	if _, ok := repo.GetByID(999); ok {
		t.Error("GetByID(999) reported present for unknown id")
	}
	if _, ok := repo.GetByID(0); ok {
		t.Error("GetByID(0) reported present")
	}
	if _, ok := repo.GetByID(-3); ok {
		t.Error("GetByID(-3) reported present")
	}
}

func TestLocationRepositoryList(t *testing.T) {
	repo := repositories.NewLocationRepository()
	repo.Create(models.Location{Address: "Main Library", RoomNumber: "101"})
	repo.Create(models.Location{Address: "Student Union", RoomNumber: "310"})

	locations := repo.List()
	if len(locations) != 2 {
		t.Fatalf("List returned %d locations, want 2", len(locations))
	}
	if locations[0].Address != "Main Library" || locations[1].Address != "Student Union" {
		t.Errorf("List order = %q, %q; want insertion order", locations[0].Address, locations[1].Address)
	}

	// Mutating the returned slice must not touch the store.
	locations[0].Address = "Changed"
	fresh := repo.List()
	if fresh[0].Address != "Main Library" {
		t.Errorf("store mutated through List result: %q", fresh[0].Address)
	}
}

func TestSessionRepositoryIDUnion(t *testing.T) {
	repo := repositories.NewSessionRepository()
	repo.CreateMy(models.Session{ID: 1})
	repo.CreateMy(models.Session{ID: 2})
	repo.CreateJoinable(models.Session{ID: 13})

	if got := repo.NextID(); got != 14 {
		t.Fatalf("NextID = %d, want 14 (max over both buckets plus one)", got)
	}

	created := repo.CreateMy(models.Session{Title: "New"})
	if created.ID != 14 {
		t.Fatalf("CreateMy allocated id %d, want 14", created.ID)
	}
}

func TestSessionRepositoryNextIDEmpty(t *testing.T) {
	repo := repositories.NewSessionRepository()
	if got := repo.NextID(); got != 1 {
		t.Fatalf("NextID on empty store = %d, want 1", got)
	}
}

func TestSessionRepositoryBuckets(t *testing.T) {
	repo := repositories.NewSessionRepository()
	repo.CreateMy(models.Session{ID: 1, Title: "Mine"})
	repo.CreateJoinable(models.Session{ID: 2, Title: "Theirs"})

	if got := len(repo.ListMy()); got != 1 {
		t.Fatalf("ListMy returned %d sessions, want 1", got)
	}
	if got := len(repo.ListJoinable()); got != 1 {
		t.Fatalf("ListJoinable returned %d sessions, want 1", got)
	}

	// GetByID searches both buckets.
	if _, ok := repo.GetByID(1); !ok {
		t.Error("GetByID(1) missed the my bucket")
	}
	if _, ok := repo.GetByID(2); !ok {
		t.Error("GetByID(2) missed the join bucket")
	}
}

func TestSessionRepositoryRemoveMy(t *testing.T) {
	repo := repositories.NewSessionRepository()
	repo.CreateMy(models.Session{ID: 1})
	repo.CreateJoinable(models.Session{ID: 2})

	if !repo.RemoveMy(1) {
		t.Fatal("RemoveMy(1) reported no removal")
	}
	if _, ok := repo.GetByID(1); ok {
		t.Error("session 1 still present after removal")
	}

	// Join-bucket sessions cannot be removed through RemoveMy.
	if repo.RemoveMy(2) {
		t.Error("RemoveMy(2) removed a join-bucket session")
	}
	if _, ok := repo.GetByID(2); !ok {
		t.Error("join-bucket session vanished")
	}

	// The removed id is never reissued.
	if got := repo.NextID(); got != 3 {
		t.Errorf("NextID after removal = %d, want 3", got)
	}
}

func TestSessionRepositoryUpdateMy(t *testing.T) {
	repo := repositories.NewSessionRepository()
	created := repo.CreateMy(models.Session{Title: "Before"})

	created.Title = "After"
	created.ResourceIDs = append(created.ResourceIDs, 7)
	if !repo.UpdateMy(created) {
		t.Fatal("UpdateMy reported no match")
	}

	got, ok := repo.GetByID(created.ID)
	if !ok {
		t.Fatal("session missing after update")
	}
	if got.Title != "After" || len(got.ResourceIDs) != 1 {
		t.Errorf("update not applied: title=%q resourceIDs=%v", got.Title, got.ResourceIDs)
	}

	if repo.UpdateMy(models.Session{ID: 999}) {
		t.Error("UpdateMy matched an unknown id")
	}
}

func TestSessionRepositoryGetByIDClones(t *testing.T) {
	repo := repositories.NewSessionRepository()
	repo.CreateMy(models.Session{ID: 1, TagIDs: []int64{4}})

	got, _ := repo.GetByID(1)
	got.TagIDs[0] = 99

	fresh, _ := repo.GetByID(1)
	if fresh.TagIDs[0] != 4 {
		t.Errorf("stored TagIDs mutated through returned clone: %v", fresh.TagIDs)
	}
}

func TestSessionTagRepository(t *testing.T) {
	repo := repositories.NewSessionTagRepository()
	repo.Add(3, 2)
	repo.Add(3, 5)
	repo.Add(4, 1)

	ids := repo.TagIDsForSession(3)
	if len(ids) != 2 || ids[0] != 2 || ids[1] != 5 {
		t.Errorf("TagIDsForSession(3) = %v, want [2 5]", ids)
	}
	if got := repo.TagIDsForSession(99); got != nil {
		t.Errorf("TagIDsForSession(99) = %v, want nil", got)
	}
}

func TestResourceRepositoryListBySession(t *testing.T) {
	repo := repositories.NewResourceRepository()
	repo.Create(models.Resource{SessionID: 1, ResourceName: "a.pdf"})
	repo.Create(models.Resource{SessionID: 2, ResourceName: "b.txt"})
	repo.Create(models.Resource{SessionID: 1, ResourceName: "c.txt"})

	owned := repo.ListBySession(1)
	if len(owned) != 2 {
		t.Fatalf("ListBySession(1) returned %d resources, want 2", len(owned))
	}
	if owned[0].ResourceName != "a.pdf" || owned[1].ResourceName != "c.txt" {
		t.Errorf("unexpected order: %q, %q", owned[0].ResourceName, owned[1].ResourceName)
	}
	if owned[1].ID != 3 {
		t.Errorf("resource id = %d, want 3", owned[1].ID)
	}
}

func TestReminderRepository(t *testing.T) {
	repo := repositories.NewReminderRepository()
	first := repo.Create(models.Reminder{SessionID: 1, ReminderTime: "2025-02-18T06:30:00"})
	if first.ID != 1 {
		t.Fatalf("first reminder id = %d, want 1", first.ID)
	}

	reminders := repo.ListBySession(1)
	if len(reminders) != 1 || reminders[0].ReminderSent {
		t.Errorf("ListBySession(1) = %+v", reminders)
	}
}
