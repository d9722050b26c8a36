package services

import (
	"github.com/chillstudy/backend/internal/app/models"
	"github.com/chillstudy/backend/internal/app/models/dto"
	"github.com/chillstudy/backend/internal/app/repositories"
	"github.com/chillstudy/backend/internal/pkg/helpers"
)

// Placeholder values applied when optional session fields are absent.
const (
	placeholderDescription = "No description provided."
	placeholderOrganizer   = "Organizer not listed"
	placeholderTBD         = "TBD"
)

// SessionViewBuilder joins a session record with its course, location, room
// type, tags, resources and reminders into the denormalized view model. All
// foreign keys resolve leniently: a stale or absent reference degrades to a
// missing relation, never an error.
type SessionViewBuilder struct {
	repos *repositories.Repositories
}

// NewSessionViewBuilder creates a view builder over the given stores.
func NewSessionViewBuilder(repos *repositories.Repositories) *SessionViewBuilder {
	return &SessionViewBuilder{repos: repos}
}

// Build assembles the view for a session. The stored record is never
// mutated; every enrichment happens on a copy.
func (b *SessionViewBuilder) Build(session models.Session) dto.SessionViewResponse {
	info := session.Clone()

	course, hasCourse := b.repos.Courses.GetByID(derefID(info.CourseID))
	location, hasLocation := b.repos.Locations.GetByID(derefID(info.LocationID))

	startDisplay := helpers.FormatDisplayTime(info.StartTime)
	endDisplay := helpers.FormatDisplayTime(info.EndTime)

	// Legacy records carry a preformatted time string; prefer it, then the
	// formatted start time, then the placeholder.
	timeDisplay := info.Time
	if timeDisplay == "" {
		timeDisplay = startDisplay
	}
	if timeDisplay == "" {
		timeDisplay = placeholderTBD
	}

	if info.Description == "" {
		info.Description = placeholderDescription
	}
	if info.Organizer == "" {
		info.Organizer = placeholderOrganizer
	}

	locationLabel := info.Location
	if locationLabel == "" && hasLocation {
		locationLabel = location.Label()
	}

	var courseDetails *dto.CourseSummary
	if hasCourse {
		courseDetails = &dto.CourseSummary{
			Title:     course.Title,
			Section:   course.Section,
			Year:      course.Year,
			Term:      models.TermName(course.Term),
			Professor: course.ProfessorName,
		}
	}

	var locationDetails *dto.LocationSummary
	if locationLabel != "" {
		locationDetails = &dto.LocationSummary{
			Label:    locationLabel,
			MapQuery: locationLabel,
		}
	}

	var roomType *models.RoomType
	if rt, ok := b.repos.RoomTypes.GetByID(derefID(info.RoomTypeID)); ok {
		roomType = &rt
	}

	return dto.SessionViewResponse{
		Session: dto.SessionDetail{
			Session:      info,
			StartDisplay: startDisplay,
			EndDisplay:   endDisplay,
			TimeDisplay:  timeDisplay,
		},
		CourseDetails:   courseDetails,
		LocationDetails: locationDetails,
		RoomType:        roomType,
		Tags:            b.resolveTags(info),
		Resources:       b.resolveResources(info.ID),
		Reminders:       b.resolveReminders(info.ID),
		AttendeeList:    info.AttendeeList.Lines(),
		AttendeeCount:   info.Attendees,
	}
}

// resolveTags prefers the session's explicit tag id list and falls back to
// deriving ids from the session-tag link rows. Ids pointing at missing tags
// are skipped.
func (b *SessionViewBuilder) resolveTags(session models.Session) []models.Tag {
	tagIDs := session.TagIDs
	if len(tagIDs) == 0 {
		tagIDs = b.repos.SessionTags.TagIDsForSession(session.ID)
	}

	tags := []models.Tag{}
	for _, tagID := range tagIDs {
		if tag, ok := b.repos.Tags.GetByID(tagID); ok {
			tags = append(tags, tag)
		}
	}
	return tags
}

func (b *SessionViewBuilder) resolveResources(sessionID int64) []models.Resource {
	resources := b.repos.Resources.ListBySession(sessionID)
	if resources == nil {
		resources = []models.Resource{}
	}
	return resources
}

func (b *SessionViewBuilder) resolveReminders(sessionID int64) []dto.ReminderView {
	reminders := []dto.ReminderView{}
	for _, reminder := range b.repos.Reminders.ListBySession(sessionID) {
		reminders = append(reminders, dto.ReminderView{
			Reminder:        reminder,
			ReminderDisplay: helpers.FormatDisplayTime(reminder.ReminderTime),
		})
	}
	return reminders
}

func derefID(id *int64) int64 {
	if id == nil {
		return 0
	}
	return *id
}
