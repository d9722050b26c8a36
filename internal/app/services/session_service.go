package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"sort"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/chillstudy/backend/internal/app/models"
	"github.com/chillstudy/backend/internal/app/models/dto"
	"github.com/chillstudy/backend/internal/app/repositories"
	"github.com/chillstudy/backend/internal/pkg/apperrors"
	"github.com/chillstudy/backend/internal/pkg/filestorage"
	"github.com/chillstudy/backend/internal/pkg/helpers"
)

// The current actor. Authentication is out of scope, so the organizer
// identity is a fixed constant.
const (
	organizerName   = "You"
	organizerEntry  = "You (Organizer)"
	organizerUserID = int64(1)

	defaultSessionTitle = "Study Session"
	resourceSubdir      = "resources"
)

// SessionService defines the interface for session-related operations
type SessionService interface {
	Dashboard(ctx context.Context) (dto.DashboardResponse, error)
	CreateSession(ctx context.Context, req dto.CreateSessionRequest, file *multipart.FileHeader) (dto.SessionViewResponse, error)
	GetSessionView(ctx context.Context, id int64) (dto.SessionViewResponse, error)
	LeaveSession(ctx context.Context, id int64) error
	UploadResource(ctx context.Context, sessionID int64, file *multipart.FileHeader) (models.Resource, error)
}

// sessionServiceImpl implements the SessionService interface
type sessionServiceImpl struct {
	repos       *repositories.Repositories
	fileStorage filestorage.FileStorage
	viewBuilder *SessionViewBuilder
	logger      zerolog.Logger
}

// NewSessionService creates a new session service instance.
func NewSessionService(repos *repositories.Repositories, fileStorage filestorage.FileStorage, viewBuilder *SessionViewBuilder, logger zerolog.Logger) SessionService {
	return &sessionServiceImpl{
		repos:       repos,
		fileStorage: fileStorage,
		viewBuilder: viewBuilder,
		logger:      logger,
	}
}

// Dashboard assembles the home-page aggregate: both session buckets plus the
// distinct filter option lists derived from the course and location stores.
func (s *sessionServiceImpl) Dashboard(ctx context.Context) (dto.DashboardResponse, error) {
	courses := s.repos.Courses.List()
	locations := s.repos.Locations.List()

	titleSet := map[string]bool{}
	addressSet := map[string]bool{}
	yearSet := map[int]bool{}
	professorSet := map[string]bool{}
	for _, course := range courses {
		titleSet[course.Title] = true
		if course.Year != 0 {
			yearSet[course.Year] = true
		}
		if course.ProfessorName != "" {
			professorSet[course.ProfessorName] = true
		}
	}
	for _, location := range locations {
		addressSet[location.Address] = true
	}

	years := make([]int, 0, len(yearSet))
	for year := range yearSet {
		years = append(years, year)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(years)))

	return dto.DashboardResponse{
		MySessions:        s.repos.Sessions.ListMy(),
		JoinSessions:      s.repos.Sessions.ListJoinable(),
		Courses:           courses,
		Locations:         locations,
		CourseTitles:      sortedKeys(titleSet),
		LocationAddresses: sortedKeys(addressSet),
		CourseYears:       years,
		ProfessorNames:    sortedKeys(professorSet),
		TermOptions: []dto.TermOption{
			{Value: models.TermFall, Label: "Fall"},
			{Value: models.TermSpring, Label: "Spring"},
			{Value: models.TermSummer, Label: "Summer"},
		},
	}, nil
}

// CreateSession assembles and stores a new session from the raw submitted
// fields, together with its tag links and optional reminder and resource.
// The new session always lands in the "my" bucket with the creator as
// attendee #1.
func (s *sessionServiceImpl) CreateSession(ctx context.Context, req dto.CreateSessionRequest, file *multipart.FileHeader) (dto.SessionViewResponse, error) {
	courseInput := strings.TrimSpace(req.Course)
	locationInput := strings.TrimSpace(req.Location)
	description := strings.TrimSpace(req.Description)

	// An unusable attachment rejects the whole creation before anything is
	// stored.
	if file != nil {
		if err := filestorage.ValidateResourceFilename(filestorage.SanitizeFilename(file.Filename)); err != nil {
			return dto.SessionViewResponse{}, apperrors.NewValidationError(err.Error())
		}
	}

	selectedCourse, hasCourse := s.repos.Courses.GetByID(parseID(req.CourseID))
	selectedLocation, hasLocation := s.repos.Locations.GetByID(parseID(req.LocationID))

	baseTitle := defaultSessionTitle
	if hasCourse {
		baseTitle = selectedCourse.Title
	} else if courseInput != "" {
		baseTitle = courseInput
	}
	if hasCourse && selectedCourse.Section != "" {
		baseTitle = fmt.Sprintf("%s - Section %s", baseTitle, selectedCourse.Section)
	}

	chillLevel := req.ChillLevel
	if !models.IsChillLevel(chillLevel) {
		chillLevel = ""
	}
	title := strings.TrimSpace(chillLevel + " " + baseTitle)

	locationDisplay := placeholderTBD
	if hasLocation {
		locationDisplay = selectedLocation.Label()
	} else if locationInput != "" {
		locationDisplay = locationInput
	}

	timeDisplay := helpers.FormatDisplayTime(req.StartTime)
	if timeDisplay == "" {
		timeDisplay = placeholderTBD
	}

	if description == "" {
		description = placeholderDescription
	}

	// The id is allocated up front so the tag links and the owned reminder
	// and resource records can reference it before the session is appended.
	sessionID := s.repos.Sessions.NextID()

	session := models.Session{
		ID:           sessionID,
		Title:        title,
		Location:     locationDisplay,
		Time:         timeDisplay,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		Attendees:    1,
		MaxAttendees: parseMaxAttendees(req.MaxAttendees),
		Description:  description,
		AttendeeList: models.RosterFromList(organizerEntry),
		Organizer:    organizerName,
		ChillLevel:   chillLevel,
	}

	if hasCourse {
		courseID := selectedCourse.ID
		session.CourseID = &courseID
		// Denormalized so the view survives a later course removal.
		session.ProfessorName = selectedCourse.ProfessorName
		session.Year = selectedCourse.Year
		session.Term = selectedCourse.Term
		session.Section = selectedCourse.Section
	} else if courseInput != "" {
		session.CourseName = courseInput
	}
	if hasLocation {
		locationID := selectedLocation.ID
		session.LocationID = &locationID
	}
	if roomTypeID := parseID(req.RoomTypeID); roomTypeID > 0 {
		session.RoomTypeID = &roomTypeID
	}

	for _, raw := range req.TagIDs {
		tagID, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
		if err != nil {
			// Unparseable tag selections are silently discarded.
			continue
		}
		s.repos.SessionTags.Add(sessionID, tagID)
		session.TagIDs = append(session.TagIDs, tagID)
	}

	if strings.TrimSpace(req.ReminderTime) != "" {
		reminder := s.repos.Reminders.Create(models.Reminder{
			SessionID:    sessionID,
			UserID:       organizerUserID,
			ReminderTime: req.ReminderTime,
			ReminderSent: false,
		})
		session.ReminderIDs = append(session.ReminderIDs, reminder.ID)
	}

	if file != nil {
		resource, err := s.storeResource(sessionID, file)
		if err != nil {
			return dto.SessionViewResponse{}, err
		}
		session.ResourceIDs = append(session.ResourceIDs, resource.ID)
	}

	created := s.repos.Sessions.CreateMy(session)
	s.logger.Info().Int64("sessionID", created.ID).Str("title", created.Title).Msg("Study session created")

	return s.viewBuilder.Build(created), nil
}

// GetSessionView returns the denormalized view for a session from either
// bucket.
func (s *sessionServiceImpl) GetSessionView(ctx context.Context, id int64) (dto.SessionViewResponse, error) {
	session, ok := s.repos.Sessions.GetByID(id)
	if !ok {
		return dto.SessionViewResponse{}, apperrors.ErrSessionNotFound
	}
	return s.viewBuilder.Build(session), nil
}

// LeaveSession removes a session from the "my" bucket only.
func (s *sessionServiceImpl) LeaveSession(ctx context.Context, id int64) error {
	if !s.repos.Sessions.RemoveMy(id) {
		return apperrors.ErrSessionNotFound
	}
	s.logger.Info().Int64("sessionID", id).Msg("Left study session")
	return nil
}

// UploadResource attaches a file to an existing session. Only the organizer
// may upload.
func (s *sessionServiceImpl) UploadResource(ctx context.Context, sessionID int64, file *multipart.FileHeader) (models.Resource, error) {
	session, ok := s.repos.Sessions.GetByID(sessionID)
	if !ok {
		return models.Resource{}, apperrors.ErrSessionNotFound
	}

	if !strings.Contains(session.Organizer, organizerName) {
		return models.Resource{}, apperrors.ErrNotOrganizer
	}

	if file == nil {
		return models.Resource{}, apperrors.NewValidationError("A file is required")
	}

	resource, err := s.storeResource(sessionID, file)
	if err != nil {
		return models.Resource{}, err
	}

	session.ResourceIDs = append(session.ResourceIDs, resource.ID)
	if !s.repos.Sessions.UpdateMy(session) {
		// The organizer check keeps uploads on the "my" bucket, so this
		// only fires if the session vanished mid-request.
		s.logger.Warn().Int64("sessionID", sessionID).Msg("Session disappeared while attaching resource")
	}

	s.logger.Info().Int64("sessionID", sessionID).Int64("resourceID", resource.ID).Str("name", resource.ResourceName).Msg("Resource uploaded")
	return resource, nil
}

// storeResource validates, stores and records one uploaded file.
func (s *sessionServiceImpl) storeResource(sessionID int64, file *multipart.FileHeader) (models.Resource, error) {
	name := filestorage.SanitizeFilename(file.Filename)
	if err := filestorage.ValidateResourceFilename(name); err != nil {
		return models.Resource{}, apperrors.NewValidationError(err.Error())
	}

	url, err := s.fileStorage.SaveFileWithPath(file, resourceSubdir)
	if err != nil {
		return models.Resource{}, fmt.Errorf("failed to store resource file: %w", err)
	}

	resource := s.repos.Resources.Create(models.Resource{
		SessionID:    sessionID,
		ResourceName: name,
		ResourceURL:  url,
		UpdatedBy:    organizerName,
	})
	return resource, nil
}

// parseID parses a submitted record selection, returning 0 for anything
// that is not a positive integer.
func parseID(raw string) int64 {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id < 0 {
		return 0
	}
	return id
}

// parseMaxAttendees parses the submitted capacity, defaulting to 1 when the
// value is missing, unparseable or not positive.
func parseMaxAttendees(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n <= 0 {
		return 1
	}
	return n
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for key := range set {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
