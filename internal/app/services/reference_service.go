package services

import (
	"context"

	"github.com/chillstudy/backend/internal/app/models"
	"github.com/chillstudy/backend/internal/app/repositories"
)

// ReferenceService exposes the read-only reference data (room types, tags).
type ReferenceService interface {
	ListRoomTypes(ctx context.Context) ([]models.RoomType, error)
	ListTags(ctx context.Context) ([]models.Tag, error)
}

type referenceServiceImpl struct {
	roomTypeRepo *repositories.RoomTypeRepository
	tagRepo      *repositories.TagRepository
}

// NewReferenceService creates a new reference data service instance.
func NewReferenceService(roomTypeRepo *repositories.RoomTypeRepository, tagRepo *repositories.TagRepository) ReferenceService {
	return &referenceServiceImpl{
		roomTypeRepo: roomTypeRepo,
		tagRepo:      tagRepo,
	}
}

func (s *referenceServiceImpl) ListRoomTypes(ctx context.Context) ([]models.RoomType, error) {
	return s.roomTypeRepo.List(), nil
}

func (s *referenceServiceImpl) ListTags(ctx context.Context) ([]models.Tag, error) {
	return s.tagRepo.List(), nil
}
