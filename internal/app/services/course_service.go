package services

import (
	"context"
	"strconv"
	"strings"

	"github.com/chillstudy/backend/internal/app/models"
	"github.com/chillstudy/backend/internal/app/models/dto"
	"github.com/chillstudy/backend/internal/app/repositories"
	"github.com/chillstudy/backend/internal/pkg/apperrors"
	"github.com/chillstudy/backend/internal/pkg/validation"
)

// CourseService defines the interface for course-related operations
type CourseService interface {
	ListCourses(ctx context.Context, query string) ([]models.Course, error)
	CreateCourse(ctx context.Context, req dto.CreateCourseRequest) (models.Course, error)
}

// courseServiceImpl implements the CourseService interface
type courseServiceImpl struct {
	courseRepo *repositories.CourseRepository
	strict     bool
}

// NewCourseService creates a new course service instance. strict enables the
// length and range checks on top of the always-on required-field and numeric
// parsing rules.
func NewCourseService(courseRepo *repositories.CourseRepository, strict bool) CourseService {
	return &courseServiceImpl{
		courseRepo: courseRepo,
		strict:     strict,
	}
}

// ListCourses returns courses matching the query: empty query returns all,
// otherwise a case-insensitive substring match against the concatenation of
// title, section and professor name.
func (s *courseServiceImpl) ListCourses(ctx context.Context, query string) ([]models.Course, error) {
	courses := s.courseRepo.List()

	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return courses, nil
	}

	filtered := []models.Course{}
	for _, course := range courses {
		haystack := strings.ToLower(course.Title + " " + course.Section + " " + course.ProfessorName)
		if strings.Contains(haystack, query) {
			filtered = append(filtered, course)
		}
	}
	return filtered, nil
}

// CreateCourse validates and creates a course offering.
func (s *courseServiceImpl) CreateCourse(ctx context.Context, req dto.CreateCourseRequest) (models.Course, error) {
	title := strings.TrimSpace(req.Title)
	section := strings.TrimSpace(req.Section)
	professorName := strings.TrimSpace(req.ProfessorName)
	yearRaw := strings.TrimSpace(req.Year.String())
	termRaw := strings.TrimSpace(req.Term.String())

	if title == "" || section == "" || professorName == "" || yearRaw == "" || termRaw == "" {
		return models.Course{}, apperrors.NewValidationError("All fields are required")
	}

	year, yearErr := strconv.Atoi(yearRaw)
	term, termErr := strconv.Atoi(termRaw)
	if yearErr != nil || termErr != nil {
		return models.Course{}, apperrors.NewValidationError("Year and term must be numbers")
	}

	if s.strict {
		if err := s.validateStrict(title, section, professorName, year, term); err != nil {
			return models.Course{}, err
		}
	}

	// Duplicate detection over (title, section, year, term), case-insensitive.
	for _, existing := range s.courseRepo.List() {
		if strings.EqualFold(existing.Title, title) &&
			strings.EqualFold(existing.Section, section) &&
			existing.Year == year &&
			existing.Term == term {
			return models.Course{}, apperrors.ErrCourseAlreadyExists
		}
	}

	course := s.courseRepo.Create(models.Course{
		Title:         title,
		Section:       section,
		Year:          year,
		Term:          term,
		ProfessorName: professorName,
	})
	return course, nil
}

// validateStrict applies the length and range limits.
func (s *courseServiceImpl) validateStrict(title, section, professorName string, year, term int) error {
	if !validation.NewStringValidation(title).WithMaxLength(validation.CourseTitleMaxLength).Validate() {
		return apperrors.NewValidationError("Title must be at most 100 characters")
	}
	if !validation.NewStringValidation(section).WithMaxLength(validation.CourseSectionMaxLength).Validate() {
		return apperrors.NewValidationError("Section must be at most 20 characters")
	}
	if !validation.NewStringValidation(professorName).WithMaxLength(validation.ProfessorNameMaxLength).Validate() {
		return apperrors.NewValidationError("Professor name must be at most 50 characters")
	}
	if !validation.NewNumericValidation(year).WithMin(validation.CourseYearMin).WithMax(validation.CourseYearMax).Validate() {
		return apperrors.NewValidationError("Year must be between 2020 and 2100")
	}
	if !validation.OneOf(term, models.TermFall, models.TermSpring, models.TermSummer) {
		return apperrors.NewValidationError("Term must be 1 (Fall), 2 (Spring) or 3 (Summer)")
	}
	return nil
}
