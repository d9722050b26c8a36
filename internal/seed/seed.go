// Package seed loads the demo data set used in development mode: the
// reference lists plus a handful of courses, locations and sessions so the
// dashboard is not empty on first boot.
package seed

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/chillstudy/backend/internal/app/models"
	"github.com/chillstudy/backend/internal/app/repositories"
)

// CreateDefaultData populates the in-memory stores with the demo records.
// Ids are assigned explicitly so sessions can reference their course,
// location, tag, resource and reminder rows, and so the session id sequence
// starts past the deliberately non-contiguous demo ids.
func CreateDefaultData(ctx context.Context, repos *repositories.Repositories, lgr zerolog.Logger) error {
	seedRoomTypes(repos)
	seedTags(repos)
	seedCourses(repos)
	seedLocations(repos)
	seedResources(repos)
	seedReminders(repos)
	seedSessions(repos)

	lgr.Info().
		Int("courses", len(repos.Courses.List())).
		Int("locations", len(repos.Locations.List())).
		Int("mySessions", len(repos.Sessions.ListMy())).
		Int("joinSessions", len(repos.Sessions.ListJoinable())).
		Msg("Demo data loaded")
	return nil
}

func seedRoomTypes(repos *repositories.Repositories) {
	for _, roomType := range []models.RoomType{
		{ID: 1, Label: "Study Room"},
		{ID: 2, Label: "Open Commons"},
		{ID: 3, Label: "Online"},
	} {
		repos.RoomTypes.Create(roomType)
	}
}

func seedTags(repos *repositories.Repositories) {
	for _, tag := range []models.Tag{
		{ID: 1, Label: "Exam Prep"},
		{ID: 2, Label: "Homework"},
		{ID: 3, Label: "Project"},
		{ID: 4, Label: "Quiet Study"},
	} {
		repos.Tags.Create(tag)
	}
}

func seedCourses(repos *repositories.Repositories) {
	for _, course := range []models.Course{
		{ID: 1, Title: "Principles Of Database Systems", Section: "A", Year: 2025, Term: models.TermSpring, ProfessorName: "Dr. Elena Vasquez"},
		{ID: 2, Title: "Coding 101", Section: "C", Year: 2025, Term: models.TermSpring, ProfessorName: "Prof. Martin Hale"},
		{ID: 3, Title: "Data Structures", Section: "A", Year: 2024, Term: models.TermFall, ProfessorName: "Dr. Imani Clarke"},
		{ID: 4, Title: "Operating Systems", Section: "B", Year: 2025, Term: models.TermSpring, ProfessorName: "Dr. Elena Vasquez"},
		{ID: 5, Title: "Linear Algebra", Section: "D", Year: 2024, Term: models.TermSummer, ProfessorName: "Prof. Noah Fields"},
		{ID: 6, Title: "Machine Learning", Section: "B", Year: 2025, Term: models.TermSpring, ProfessorName: "Dr. Imani Clarke"},
	} {
		repos.Courses.Create(course)
	}
}

func seedLocations(repos *repositories.Repositories) {
	for _, location := range []models.Location{
		{ID: 1, Address: "Main Library", RoomNumber: "101"},
		{ID: 2, Address: "Main Library", RoomNumber: "204"},
		{ID: 3, Address: "Science Center", RoomNumber: "B12"},
		{ID: 4, Address: "Student Union", RoomNumber: "310"},
		{ID: 5, Address: "Engineering Hall", RoomNumber: "115"},
		{ID: 6, Address: "North Campus Annex", RoomNumber: "22"},
		{ID: 7, Address: "Innovation Hub", RoomNumber: "2A"},
		{ID: 8, Address: "Online", RoomNumber: ""},
	} {
		repos.Locations.Create(location)
	}
}

func seedResources(repos *repositories.Repositories) {
	repos.Resources.Create(models.Resource{
		ID:           1,
		SessionID:    1,
		ResourceName: "er_modeling_worksheet.pdf",
		ResourceURL:  "/uploads/resources/er_modeling_worksheet.pdf",
		UpdatedBy:    "Alex Morgan",
	})
}

func seedReminders(repos *repositories.Repositories) {
	repos.Reminders.Create(models.Reminder{
		ID:           1,
		SessionID:    1,
		UserID:       1,
		ReminderTime: "2025-02-18T06:30:00",
	})
	repos.Reminders.Create(models.Reminder{
		ID:           2,
		SessionID:    13,
		UserID:       1,
		ReminderTime: "2025-02-20T19:00:00",
	})
}

func seedSessions(repos *repositories.Repositories) {
	ref := func(id int64) *int64 { return &id }

	mySessions := []models.Session{
		{
			ID:           1,
			CourseID:     ref(1),
			LocationID:   ref(1),
			RoomTypeID:   ref(1),
			Title:        "😎 Principles Of Database Systems - Section A",
			Location:     "Main Library - Room 101",
			Time:         "7:00 AM",
			StartTime:    "2025-02-18T07:00:00",
			EndTime:      "2025-02-18T09:00:00",
			Attendees:    12,
			MaxAttendees: 20,
			Description:  "Reviewing ER modeling and normalization with collaborative whiteboard problems.",
			Notes:        "Bring your laptop for the schema design activity.",
			Organizer:    "Alex Morgan",
			ChillLevel:   "😎",
			AttendeeList: models.RosterFromList("Alex Morgan (Organizer)", "Taylor R.", "Jamal K."),
			TagIDs:       []int64{4},
			ResourceIDs:  []int64{1},
			ReminderIDs:  []int64{1},
		},
		{
			ID:           2,
			CourseID:     ref(6),
			LocationID:   ref(7),
			RoomTypeID:   ref(2),
			Title:        "🤓 Machine Learning - Section B",
			Location:     "Innovation Hub - 2nd Floor Commons",
			Time:         "6:30 PM",
			StartTime:    "2025-02-19T18:30:00",
			EndTime:      "2025-02-19T20:00:00",
			Attendees:    8,
			MaxAttendees: 12,
			Description:  "Gradient descent deep dive with practice on tuning learning rates and momentum.",
			Notes:        "Snacks provided. Download the latest notebook before arriving.",
			Organizer:    "Priya Desai",
			ChillLevel:   "🤓",
			AttendeeList: models.RosterFromList("Priya Desai (Organizer)", "Chris P.", "Sung L.", "Mei F."),
			TagIDs:       []int64{1, 3},
		},
		// The id gap before 13 is intentional: the next allocated session id
		// must be 14, not 3.
		{
			ID:           13,
			CourseID:     ref(2),
			LocationID:   ref(8),
			RoomTypeID:   ref(3),
			Title:        "😤 Coding 101 - Exam Crunch",
			Location:     "Online - Zoom 998-221-447",
			Time:         "8:00 PM",
			StartTime:    "2025-02-20T20:00:00",
			EndTime:      "2025-02-20T23:00:00",
			Attendees:    35,
			MaxAttendees: 50,
			Organizer:    "Jordan Lee",
			ChillLevel:   "😤",
			TagIDs:       []int64{1},
			ReminderIDs:  []int64{2},
		},
	}

	joinSessions := []models.Session{
		{
			ID:           3,
			CourseID:     ref(3),
			LocationID:   ref(2),
			RoomTypeID:   ref(1),
			Title:        "😎 Data Structures - Section A",
			Location:     "Main Library - Room 204",
			StartTime:    "2025-02-21T15:00:00",
			EndTime:      "2025-02-21T17:00:00",
			Attendees:    5,
			MaxAttendees: 10,
			Description:  "Linked list and tree traversal drills before the midterm.",
			Organizer:    "Sam Okafor",
			ChillLevel:   "😎",
			AttendeeList: models.RosterFromList("Sam Okafor (Organizer)", "Lena B."),
			// Tags intentionally live only in the link store for this record.
		},
		{
			ID:           4,
			CourseID:     ref(5),
			LocationID:   ref(4),
			Title:        "Linear Algebra Problem Marathon",
			StartTime:    "2025-02-22T10:00:00",
			Attendees:    9,
			MaxAttendees: 15,
			Organizer:    "Riley Chen",
			AttendeeList: models.RosterFromPairs(
				models.AttendeePair{Name: "Riley Chen", Role: "organizer"},
				models.AttendeePair{Name: "Dana W.", Role: "member"},
				models.AttendeePair{Name: "Hugo S.", Role: "member"},
			),
			TagIDs: []int64{2},
		},
		{
			ID:           5,
			CourseID:     ref(4),
			LocationID:   ref(5),
			Title:        "😤 Operating Systems - Section B",
			Location:     "Engineering Hall - Room 115",
			Time:         "4:00 PM",
			Attendees:    3,
			MaxAttendees: 8,
			Organizer:    "Morgan Patel",
			ChillLevel:   "😤",
			AttendeeList: models.RosterFromSingle("Morgan Patel (Organizer)"),
		},
	}

	for _, session := range mySessions {
		repos.Sessions.CreateMy(session)
		for _, tagID := range session.TagIDs {
			repos.SessionTags.Add(session.ID, tagID)
		}
	}
	for _, session := range joinSessions {
		repos.Sessions.CreateJoinable(session)
		for _, tagID := range session.TagIDs {
			repos.SessionTags.Add(session.ID, tagID)
		}
	}

	// Link rows for the record whose tags are derived rather than stored.
	repos.SessionTags.Add(3, 2)
	repos.SessionTags.Add(3, 3)
}
