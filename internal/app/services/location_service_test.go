package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/chillstudy/backend/internal/app/models"
	"github.com/chillstudy/backend/internal/app/models/dto"
	"github.com/chillstudy/backend/internal/app/repositories"
	"github.com/chillstudy/backend/internal/app/services"
	"github.com/chillstudy/backend/internal/pkg/apperrors"
)

func newLocationService(strict bool) (services.LocationService, *repositories.LocationRepository) {
	repo := repositories.NewLocationRepository()
	return services.NewLocationService(repo, strict), repo
}

func TestCreateLocation(t *testing.T) {
	ctx := context.Background()

	t.Run("creates and trims", func(t *testing.T) {
		svc, _ := newLocationService(true)

		location, err := svc.CreateLocation(ctx, dto.CreateLocationRequest{Address: "  Main Library ", RoomNumber: " 101 "})
		if err != nil {
			t.Fatalf("CreateLocation: %v", err)
		}
		if location.ID != 1 || location.Address != "Main Library" || location.RoomNumber != "101" {
			t.Errorf("got %+v", location)
		}
	})

	t.Run("missing fields rejected", func(t *testing.T) {
		svc, _ := newLocationService(true)

		_, err := svc.CreateLocation(ctx, dto.CreateLocationRequest{Address: "Main Library"})
		if !errors.Is(err, apperrors.ErrValidationFailed) {
			t.Fatalf("err = %v, want validation failure", err)
		}
		if got := apperrors.Message(err); got != "Address and room number are required" {
			t.Errorf("message = %q", got)
		}
	})

	t.Run("duplicate detection is case-insensitive", func(t *testing.T) {
		svc, _ := newLocationService(true)

		if _, err := svc.CreateLocation(ctx, dto.CreateLocationRequest{Address: "Main Library", RoomNumber: "101"}); err != nil {
			t.Fatalf("first create: %v", err)
		}

		_, err := svc.CreateLocation(ctx, dto.CreateLocationRequest{Address: "MAIN LIBRARY", RoomNumber: "101"})
		if !errors.Is(err, apperrors.ErrLocationAlreadyExists) {
			t.Fatalf("err = %v, want ErrLocationAlreadyExists", err)
		}
	})

	t.Run("same address with a different room is allowed", func(t *testing.T) {
		svc, _ := newLocationService(true)

		if _, err := svc.CreateLocation(ctx, dto.CreateLocationRequest{Address: "Main Library", RoomNumber: "101"}); err != nil {
			t.Fatalf("first create: %v", err)
		}
		if _, err := svc.CreateLocation(ctx, dto.CreateLocationRequest{Address: "Main Library", RoomNumber: "204"}); err != nil {
			t.Fatalf("second create: %v", err)
		}
	})
}

func TestListLocations(t *testing.T) {
	ctx := context.Background()
	svc, repo := newLocationService(true)
	repo.Create(models.Location{Address: "Main Library", RoomNumber: "101"})
	repo.Create(models.Location{Address: "Student Union", RoomNumber: "310"})
	repo.Create(models.Location{Address: "Science Center", RoomNumber: "B12"})

	t.Run("empty query returns all", func(t *testing.T) {
		locations, err := svc.ListLocations(ctx, "")
		if err != nil {
			t.Fatalf("ListLocations: %v", err)
		}
		if len(locations) != 3 {
			t.Errorf("got %d locations, want 3", len(locations))
		}
	})

	t.Run("matches address", func(t *testing.T) {
		locations, _ := svc.ListLocations(ctx, "library")
		if len(locations) != 1 || locations[0].Address != "Main Library" {
			t.Errorf("got %+v", locations)
		}
	})

	t.Run("matches room number", func(t *testing.T) {
		locations, _ := svc.ListLocations(ctx, "b12")
		if len(locations) != 1 || locations[0].Address != "Science Center" {
			t.Errorf("got %+v", locations)
		}
	})

	t.Run("no match yields empty slice", func(t *testing.T) {
		locations, _ := svc.ListLocations(ctx, "observatory")
		if len(locations) != 0 {
			t.Errorf("got %+v, want empty", locations)
		}
	})
}
