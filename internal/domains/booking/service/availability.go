package service

import (
	"context"
	"fmt"
	"pms/infras/otel"
	"pms/internal/domains/booking/model"
	"pms/internal/domains/booking/model/dto"
	"pms/internal/domains/booking/repository"
	"pms/shared/constant"
	"pms/shared/failure"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

// Availability answers whether rooms are claimed over a half-open range
// [arrival, departure). Ranges that only touch do not overlap.
type Availability interface {
	// HasConflict reports whether roomID has an active claim overlapping the
	// range, as seen by tx.
	HasConflict(ctx context.Context, tx *sqlx.Tx, roomID string, arrival, departure time.Time, excludeBookingID string) (bool, error)
	FindConflicts(ctx context.Context, tx *sqlx.Tx, query model.ConflictQuery) ([]model.Conflict, error)
	// CheckAvailability is advisory: nothing is locked, so a later Create may
	// still be rejected.
	CheckAvailability(ctx context.Context, req dto.AvailabilityRequest) (dto.AvailabilityResponse, error)
}

type availabilityImpl struct {
	repo repository.Availability
	otel otel.Otel
}

func NewAvailability(repo repository.Availability, otel otel.Otel) Availability {
	return &availabilityImpl{
		repo: repo,
		otel: otel,
	}
}

func (s *availabilityImpl) HasConflict(ctx context.Context, tx *sqlx.Tx, roomID string, arrival, departure time.Time, excludeBookingID string) (bool, error) {
	conflicts, err := s.FindConflicts(ctx, tx, model.ConflictQuery{
		RoomIDs:          []string{roomID},
		Arrival:          arrival,
		Departure:        departure,
		ExcludeBookingID: excludeBookingID,
	})
	if err != nil {
		return false, err
	}

	return len(conflicts) > 0, nil
}

func (s *availabilityImpl) FindConflicts(ctx context.Context, tx *sqlx.Tx, query model.ConflictQuery) (conflicts []model.Conflict, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".availability.FindConflicts")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if !query.Departure.After(query.Arrival) {
		return nil, failure.BadRequestFromString("departure must be after arrival") // nolint:wrapcheck
	}

	conflicts, err = s.repo.FindConflictsTx(ctx, tx, query)
	if err != nil {
		log.Error().Err(err).Strs("room_ids", query.RoomIDs).Msg("failed to find room conflicts")

		return nil, fmt.Errorf("failed to find room conflicts: %w", err)
	}

	return conflicts, nil
}

func (s *availabilityImpl) CheckAvailability(ctx context.Context, req dto.AvailabilityRequest) (res dto.AvailabilityResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".availability.CheckAvailability")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if !req.Departure.After(req.Arrival) {
		return res, failure.BadRequestFromString("departure must be after arrival") // nolint:wrapcheck
	}

	conflicts, err := s.repo.FindConflicts(ctx, model.ConflictQuery{
		RoomIDs:   req.RoomIDs,
		Arrival:   req.Arrival,
		Departure: req.Departure,
	})
	if err != nil {
		log.Error().Err(err).Strs("room_ids", req.RoomIDs).Msg("failed to check room availability")

		return res, fmt.Errorf("failed to check room availability: %w", err)
	}

	res.Available = len(conflicts) == 0
	res.Conflicts = conflicts

	return res, nil
}
