package services

import (
	"context"
	"strings"

	"github.com/chillstudy/backend/internal/app/models"
	"github.com/chillstudy/backend/internal/app/models/dto"
	"github.com/chillstudy/backend/internal/app/repositories"
	"github.com/chillstudy/backend/internal/pkg/apperrors"
	"github.com/chillstudy/backend/internal/pkg/validation"
)

// LocationService defines the interface for location-related operations
type LocationService interface {
	ListLocations(ctx context.Context, query string) ([]models.Location, error)
	CreateLocation(ctx context.Context, req dto.CreateLocationRequest) (models.Location, error)
}

// locationServiceImpl implements the LocationService interface
type locationServiceImpl struct {
	locationRepo *repositories.LocationRepository
	strict       bool
}

// NewLocationService creates a new location service instance.
func NewLocationService(locationRepo *repositories.LocationRepository, strict bool) LocationService {
	return &locationServiceImpl{
		locationRepo: locationRepo,
		strict:       strict,
	}
}

// ListLocations returns locations matching the query: empty query returns
// all, otherwise a case-insensitive substring match against the address and
// the room number independently (a match in either field qualifies).
func (s *locationServiceImpl) ListLocations(ctx context.Context, query string) ([]models.Location, error) {
	locations := s.locationRepo.List()

	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return locations, nil
	}

	filtered := []models.Location{}
	for _, location := range locations {
		if strings.Contains(strings.ToLower(location.Address), query) ||
			strings.Contains(strings.ToLower(location.RoomNumber), query) {
			filtered = append(filtered, location)
		}
	}
	return filtered, nil
}

// CreateLocation validates and creates a location.
func (s *locationServiceImpl) CreateLocation(ctx context.Context, req dto.CreateLocationRequest) (models.Location, error) {
	address := strings.TrimSpace(req.Address)
	roomNumber := strings.TrimSpace(req.RoomNumber)

	if address == "" || roomNumber == "" {
		return models.Location{}, apperrors.NewValidationError("Address and room number are required")
	}

	if s.strict {
		if !validation.NewStringValidation(address).WithMaxLength(validation.LocationAddressMaxLength).Validate() {
			return models.Location{}, apperrors.NewValidationError("Address must be at most 100 characters")
		}
		if !validation.NewStringValidation(roomNumber).WithMaxLength(validation.RoomNumberMaxLength).Validate() {
			return models.Location{}, apperrors.NewValidationError("Room number must be at most 20 characters")
		}
	}

	// Duplicate detection over (address, room_number), case-insensitive.
	for _, existing := range s.locationRepo.List() {
		if strings.EqualFold(existing.Address, address) &&
			strings.EqualFold(existing.RoomNumber, roomNumber) {
			return models.Location{}, apperrors.ErrLocationAlreadyExists
		}
	}

	location := s.locationRepo.Create(models.Location{
		Address:    address,
		RoomNumber: roomNumber,
	})
	return location, nil
}
