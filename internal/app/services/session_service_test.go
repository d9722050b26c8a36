package services_test

import (
	"context"
	"errors"
	"mime/multipart"
	"reflect"
	"testing"

	"github.com/rs/zerolog"

	"github.com/chillstudy/backend/internal/app/models"
	"github.com/chillstudy/backend/internal/app/models/dto"
	"github.com/chillstudy/backend/internal/app/repositories"
	"github.com/chillstudy/backend/internal/app/services"
	"github.com/chillstudy/backend/internal/pkg/apperrors"
)

// fakeStorage records saves without touching the filesystem.
type fakeStorage struct {
	saved []string
}

func (f *fakeStorage) SaveFile(fileHeader *multipart.FileHeader) (string, error) {
	return f.SaveFileWithPath(fileHeader, "")
}

func (f *fakeStorage) SaveFileWithPath(fileHeader *multipart.FileHeader, path string) (string, error) {
	url := "/uploads/" + path + "/" + fileHeader.Filename
	f.saved = append(f.saved, url)
	return url, nil
}

func (f *fakeStorage) DeleteFile(filePath string) error { return nil }

func (f *fakeStorage) GetFullPath(fileURL string) string { return fileURL }

type sessionHarness struct {
	repos   *repositories.Repositories
	storage *fakeStorage
	svc     services.SessionService
}

func newSessionHarness() *sessionHarness {
	repos := repositories.NewRepositories()
	repos.Courses.Create(models.Course{ID: 1, Title: "Principles Of Database Systems", Section: "A", Year: 2025, Term: models.TermSpring, ProfessorName: "Dr. Elena Vasquez"})
	repos.Courses.Create(models.Course{ID: 2, Title: "Coding 101", Year: 2025, Term: models.TermSpring, ProfessorName: "Prof. Martin Hale"})
	repos.Locations.Create(models.Location{ID: 1, Address: "Main Library", RoomNumber: "101"})
	repos.RoomTypes.Create(models.RoomType{ID: 1, Label: "Study Room"})
	repos.Tags.Create(models.Tag{ID: 1, Label: "Exam Prep"})
	repos.Tags.Create(models.Tag{ID: 4, Label: "Quiet Study"})

	storage := &fakeStorage{}
	viewBuilder := services.NewSessionViewBuilder(repos)
	svc := services.NewSessionService(repos, storage, viewBuilder, zerolog.Nop())
	return &sessionHarness{repos: repos, storage: storage, svc: svc}
}

func TestCreateSessionWithCourseSelection(t *testing.T) {
	h := newSessionHarness()

	view, err := h.svc.CreateSession(context.Background(), dto.CreateSessionRequest{
		CourseID:     "1",
		LocationID:   "1",
		RoomTypeID:   "1",
		MaxAttendees: "20",
		StartTime:    "2025-02-18T07:00:00",
		EndTime:      "2025-02-18T09:00:00",
		ChillLevel:   "😎",
		TagIDs:       []string{"4", "bogus"},
	}, nil)
	if err != nil {
		t.Fatalf("CreateSession: %v", err)
	}

	session := view.Session
	if session.Title != "😎 Principles Of Database Systems - Section A" {
		t.Errorf("Title = %q", session.Title)
	}
	if session.ID != 1 {
		t.Errorf("ID = %d, want 1", session.ID)
	}
	if session.Attendees != 1 || session.MaxAttendees != 20 {
		t.Errorf("Attendees = %d/%d, want 1/20", session.Attendees, session.MaxAttendees)
	}
	if session.Organizer != "You" {
		t.Errorf("Organizer = %q", session.Organizer)
	}
	if got := view.AttendeeList; !reflect.DeepEqual(got, []string{"You (Organizer)"}) {
		t.Errorf("AttendeeList = %v", got)
	}

	// Course fields are denormalized onto the session record.
	if session.ProfessorName != "Dr. Elena Vasquez" || session.Year != 2025 || session.Term != models.TermSpring || session.Section != "A" {
		t.Errorf("denormalized fields = %q/%d/%d/%q", session.ProfessorName, session.Year, session.Term, session.Section)
	}

	// The unparseable tag selection is dropped, not an error.
	if !reflect.DeepEqual(session.TagIDs, []int64{4}) {
		t.Errorf("TagIDs = %v, want [4]", session.TagIDs)
	}
	if len(view.Tags) != 1 || view.Tags[0].Label != "Quiet Study" {
		t.Errorf("Tags = %+v", view.Tags)
	}

	if session.StartDisplay != "Feb 18, 2025 07:00 AM" {
		t.Errorf("StartDisplay = %q", session.StartDisplay)
	}
	if session.TimeDisplay != "Feb 18, 2025 07:00 AM" {
		t.Errorf("TimeDisplay = %q", session.TimeDisplay)
	}
	if session.Location != "Main Library - Room 101" {
		t.Errorf("Location = %q", session.Location)
	}

	// The new session lands in the my bucket.
	if got := len(h.repos.Sessions.ListMy()); got != 1 {
		t.Errorf("my bucket has %d sessions, want 1", got)
	}
	if got := len(h.repos.Sessions.ListJoinable()); got != 0 {
		t.Errorf("join bucket has %d sessions, want 0", got)
	}
}

func TestCreateSessionFreeTextFallbacks(t *testing.T) {
	h := newSessionHarness()

	view, err := h.svc.CreateSession(context.Background(), dto.CreateSessionRequest{
		Course:   "Bio Study Group",
		Location: "Corner Cafe",
	}, nil)
	if err != nil {
		t.Fatalf("CreateSession: %v", err)
	}

	session := view.Session
	if session.Title != "Bio Study Group" {
		t.Errorf("Title = %q", session.Title)
	}
	if session.CourseID != nil {
		t.Errorf("CourseID = %v, want nil", session.CourseID)
	}
	if session.CourseName != "Bio Study Group" {
		t.Errorf("CourseName = %q", session.CourseName)
	}
	if session.Location != "Corner Cafe" {
		t.Errorf("Location = %q", session.Location)
	}
	if view.CourseDetails != nil {
		t.Errorf("CourseDetails = %+v, want nil", view.CourseDetails)
	}
}

func TestCreateSessionDefaults(t *testing.T) {
	h := newSessionHarness()

	view, err := h.svc.CreateSession(context.Background(), dto.CreateSessionRequest{}, nil)
	if err != nil {
		t.Fatalf("CreateSession: %v", err)
	}

	session := view.Session
	if session.Title != "Study Session" {
		t.Errorf("Title = %q, want %q", session.Title, "Study Session")
	}
	if session.Location != "TBD" {
		t.Errorf("Location = %q, want TBD", session.Location)
	}
	if session.TimeDisplay != "TBD" {
		t.Errorf("TimeDisplay = %q, want TBD", session.TimeDisplay)
	}
	if session.Description != "No description provided." {
		t.Errorf("Description = %q", session.Description)
	}
	if session.MaxAttendees != 1 {
		t.Errorf("MaxAttendees = %d, want 1", session.MaxAttendees)
	}
}

func TestCreateSessionChillLevelWhitelist(t *testing.T) {
	h := newSessionHarness()

	view, err := h.svc.CreateSession(context.Background(), dto.CreateSessionRequest{
		Course:     "Algebra Review",
		ChillLevel: "🔥",
	}, nil)
	if err != nil {
		t.Fatalf("CreateSession: %v", err)
	}
	if view.Session.ChillLevel != "" {
		t.Errorf("ChillLevel = %q, want empty", view.Session.ChillLevel)
	}
	if view.Session.Title != "Algebra Review" {
		t.Errorf("Title = %q", view.Session.Title)
	}
}

func TestCreateSessionMaxAttendeesParsing(t *testing.T) {
	h := newSessionHarness()

	for _, raw := range []string{"", "abc", "0", "-3"} {
		view, err := h.svc.CreateSession(context.Background(), dto.CreateSessionRequest{MaxAttendees: raw}, nil)
		if err != nil {
			t.Fatalf("CreateSession(%q): %v", raw, err)
		}
		if view.Session.MaxAttendees != 1 {
			t.Errorf("MaxAttendees for %q = %d, want 1", raw, view.Session.MaxAttendees)
		}
	}
}

func TestCreateSessionRejectsBadResourceFile(t *testing.T) {
	h := newSessionHarness()

	_, err := h.svc.CreateSession(context.Background(), dto.CreateSessionRequest{
		Course: "Notes Swap",
	}, &multipart.FileHeader{Filename: "notes"})
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("err = %v, want validation failure", err)
	}

	// Nothing may be stored when the attachment is rejected.
	if got := len(h.repos.Sessions.ListMy()); got != 0 {
		t.Errorf("my bucket has %d sessions after rejected create", got)
	}
	if got := len(h.storage.saved); got != 0 {
		t.Errorf("%d files saved after rejected create", got)
	}

	_, err = h.svc.CreateSession(context.Background(), dto.CreateSessionRequest{
		Course: "Notes Swap",
	}, &multipart.FileHeader{Filename: "slides.pptx"})
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("err = %v, want validation failure for disallowed extension", err)
	}
}

func TestCreateSessionReminderAndResourceIDsConsistent(t *testing.T) {
	h := newSessionHarness()

	view, err := h.svc.CreateSession(context.Background(), dto.CreateSessionRequest{
		Course:       "Exam Crunch",
		ReminderTime: "2025-02-20T19:00:00",
	}, &multipart.FileHeader{Filename: "notes.pdf"})
	if err != nil {
		t.Fatalf("CreateSession: %v", err)
	}

	session := view.Session
	if len(session.ResourceIDs) != 1 || len(session.ReminderIDs) != 1 {
		t.Fatalf("ResourceIDs = %v, ReminderIDs = %v", session.ResourceIDs, session.ReminderIDs)
	}

	// Every id on the session must resolve in its owning store, and the
	// store's per-session listing must agree with the session's id list.
	resources := h.repos.Resources.ListBySession(session.ID)
	if len(resources) != 1 || resources[0].ID != session.ResourceIDs[0] {
		t.Errorf("resource store %v does not match session ids %v", resources, session.ResourceIDs)
	}
	if resources[0].ResourceName != "notes.pdf" || resources[0].UpdatedBy != "You" {
		t.Errorf("resource = %+v", resources[0])
	}

	reminders := h.repos.Reminders.ListBySession(session.ID)
	if len(reminders) != 1 || reminders[0].ID != session.ReminderIDs[0] {
		t.Errorf("reminder store %v does not match session ids %v", reminders, session.ReminderIDs)
	}
	if reminders[0].ReminderSent {
		t.Error("new reminder marked sent")
	}

	if len(view.Resources) != 1 || len(view.Reminders) != 1 {
		t.Errorf("view carries %d resources, %d reminders", len(view.Resources), len(view.Reminders))
	}
	if view.Reminders[0].ReminderDisplay != "Feb 20, 2025 07:00 PM" {
		t.Errorf("ReminderDisplay = %q", view.Reminders[0].ReminderDisplay)
	}
}

func TestCreateSessionAllocatesIDOverBothBuckets(t *testing.T) {
	h := newSessionHarness()
	h.repos.Sessions.CreateMy(models.Session{ID: 2, Organizer: "You"})
	h.repos.Sessions.CreateJoinable(models.Session{ID: 13, Organizer: "Jordan Lee"})

	view, err := h.svc.CreateSession(context.Background(), dto.CreateSessionRequest{Course: "Late Night Review"}, nil)
	if err != nil {
		t.Fatalf("CreateSession: %v", err)
	}
	if view.Session.ID != 14 {
		t.Errorf("ID = %d, want 14", view.Session.ID)
	}
}

func TestGetSessionView(t *testing.T) {
	h := newSessionHarness()
	h.repos.Sessions.CreateJoinable(models.Session{ID: 3, Title: "Joinable", Organizer: "Sam Okafor"})

	view, err := h.svc.GetSessionView(context.Background(), 3)
	if err != nil {
		t.Fatalf("GetSessionView: %v", err)
	}
	if view.Session.Title != "Joinable" {
		t.Errorf("Title = %q", view.Session.Title)
	}

	if _, err := h.svc.GetSessionView(context.Background(), 999); !errors.Is(err, apperrors.ErrSessionNotFound) {
		t.Errorf("err = %v, want ErrSessionNotFound", err)
	}
}

func TestLeaveSession(t *testing.T) {
	h := newSessionHarness()
	h.repos.Sessions.CreateMy(models.Session{ID: 1, Organizer: "You"})
	h.repos.Sessions.CreateJoinable(models.Session{ID: 2, Organizer: "Priya Desai"})

	if err := h.svc.LeaveSession(context.Background(), 1); err != nil {
		t.Fatalf("LeaveSession: %v", err)
	}
	if _, ok := h.repos.Sessions.GetByID(1); ok {
		t.Error("session 1 still present after leave")
	}

	// A join-bucket session cannot be left.
	if err := h.svc.LeaveSession(context.Background(), 2); !errors.Is(err, apperrors.ErrSessionNotFound) {
		t.Errorf("err = %v, want ErrSessionNotFound", err)
	}
	if err := h.svc.LeaveSession(context.Background(), 999); !errors.Is(err, apperrors.ErrSessionNotFound) {
		t.Errorf("err = %v, want ErrSessionNotFound", err)
	}
}

func TestUploadResource(t *testing.T) {
	ctx := context.Background()

	t.Run("organizer uploads and the session record is extended", func(t *testing.T) {
		h := newSessionHarness()
		h.repos.Sessions.CreateMy(models.Session{ID: 1, Organizer: "You"})

		resource, err := h.svc.UploadResource(ctx, 1, &multipart.FileHeader{Filename: "worksheet.txt"})
		if err != nil {
			t.Fatalf("UploadResource: %v", err)
		}
		if resource.SessionID != 1 || resource.ResourceName != "worksheet.txt" {
			t.Errorf("resource = %+v", resource)
		}

		session, _ := h.repos.Sessions.GetByID(1)
		if !reflect.DeepEqual(session.ResourceIDs, []int64{resource.ID}) {
			t.Errorf("session ResourceIDs = %v, want [%d]", session.ResourceIDs, resource.ID)
		}
	})

	t.Run("non-organizer is rejected", func(t *testing.T) {
		h := newSessionHarness()
		h.repos.Sessions.CreateJoinable(models.Session{ID: 2, Organizer: "Priya Desai"})

		_, err := h.svc.UploadResource(ctx, 2, &multipart.FileHeader{Filename: "worksheet.txt"})
		if !errors.Is(err, apperrors.ErrNotOrganizer) {
			t.Errorf("err = %v, want ErrNotOrganizer", err)
		}
	})

	t.Run("unknown session", func(t *testing.T) {
		h := newSessionHarness()

		_, err := h.svc.UploadResource(ctx, 999, &multipart.FileHeader{Filename: "worksheet.txt"})
		if !errors.Is(err, apperrors.ErrSessionNotFound) {
			t.Errorf("err = %v, want ErrSessionNotFound", err)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		h := newSessionHarness()
		h.repos.Sessions.CreateMy(models.Session{ID: 1, Organizer: "You"})

		_, err := h.svc.UploadResource(ctx, 1, nil)
		if !errors.Is(err, apperrors.ErrValidationFailed) {
			t.Errorf("err = %v, want validation failure", err)
		}
	})

	t.Run("disallowed extension", func(t *testing.T) {
		h := newSessionHarness()
		h.repos.Sessions.CreateMy(models.Session{ID: 1, Organizer: "You"})

		_, err := h.svc.UploadResource(ctx, 1, &multipart.FileHeader{Filename: "malware.exe"})
		if !errors.Is(err, apperrors.ErrValidationFailed) {
			t.Errorf("err = %v, want validation failure", err)
		}
	})
}

func TestDashboard(t *testing.T) {
	h := newSessionHarness()
	h.repos.Sessions.CreateMy(models.Session{ID: 1, Title: "Mine", Organizer: "You"})
	h.repos.Sessions.CreateJoinable(models.Session{ID: 2, Title: "Theirs", Organizer: "Sam Okafor"})

	dash, err := h.svc.Dashboard(context.Background())
	if err != nil {
		t.Fatalf("Dashboard: %v", err)
	}

	if len(dash.MySessions) != 1 || len(dash.JoinSessions) != 1 {
		t.Errorf("buckets = %d/%d, want 1/1", len(dash.MySessions), len(dash.JoinSessions))
	}
	if !reflect.DeepEqual(dash.CourseTitles, []string{"Coding 101", "Principles Of Database Systems"}) {
		t.Errorf("CourseTitles = %v", dash.CourseTitles)
	}
	if !reflect.DeepEqual(dash.CourseYears, []int{2025}) {
		t.Errorf("CourseYears = %v", dash.CourseYears)
	}
	if !reflect.DeepEqual(dash.LocationAddresses, []string{"Main Library"}) {
		t.Errorf("LocationAddresses = %v", dash.LocationAddresses)
	}
	if len(dash.TermOptions) != 3 || dash.TermOptions[1].Label != "Spring" {
		t.Errorf("TermOptions = %+v", dash.TermOptions)
	}
}
