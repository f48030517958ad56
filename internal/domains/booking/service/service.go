package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"path"
	"pms/config"
	"pms/infras/otel"
	"pms/infras/postgres"
	"pms/infras/s3"
	auditModel "pms/internal/domains/audit/model"
	auditService "pms/internal/domains/audit/service"
	"pms/internal/domains/booking/model"
	"pms/internal/domains/booking/model/dto"
	"pms/internal/domains/booking/repository"
	roomModel "pms/internal/domains/room/model"
	roomRepo "pms/internal/domains/room/repository"
	roomTypeRepo "pms/internal/domains/roomtype/repository"
	"pms/shared"
	"pms/shared/cache"
	"pms/shared/constant"
	gDto "pms/shared/dto"
	"pms/shared/failure"
	"pms/shared/timezone"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

const (
	cacheGetBooking    = model.CachePrefix + ":get"
	cacheGetAllBooking = model.CachePrefix + ":get_all"
	cacheCountBooking  = model.CachePrefix + ":count"

	idProofDirectory = "id-proofs"

	// checkInWindow is the minimum span checked for claims when a guest
	// arrives on or after the planned departure.
	checkInWindow = time.Minute
)

// checkInStatuses are the claims that block a check-in.
var checkInStatuses = []model.Status{model.StatusConfirmed, model.StatusCheckedIn}

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	// UpdateStatus moves a booking through its lifecycle. CANCELLED is
	// delegated to Cancel.
	UpdateStatus(ctx context.Context, id string, req dto.UpdateStatusRequest) (dto.BookingResponse, error)
	Cancel(ctx context.Context, id string, req dto.CancelBookingRequest) (dto.BookingResponse, error)
	// CancelRoom releases one room. The booking is cancelled with its last room.
	CancelRoom(ctx context.Context, id, roomID string, req dto.CancelRoomRequest) (dto.BookingResponse, error)
	UpdateDetails(ctx context.Context, id string, req dto.UpdateDetailsRequest) (dto.BookingResponse, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	CheckAvailability(ctx context.Context, req dto.AvailabilityRequest) (dto.AvailabilityResponse, error)
	AttachIDProof(ctx context.Context, id string, req dto.AttachIDProofRequest) (dto.AttachIDProofResponse, error)
}

type serviceImpl struct {
	repo         repository.Booking
	detailRepo   repository.RoomDetail
	availability Availability
	roomRepo     roomRepo.Room
	roomTypeRepo roomTypeRepo.RoomType
	db           postgres.Transactor
	audit        auditService.Sink
	s3           s3.S3
	cfg          *config.Config
	cache        cache.RedisCache
	otel         otel.Otel
}

func New(
	repo repository.Booking,
	detailRepo repository.RoomDetail,
	availabilityRepo repository.Availability,
	roomRepo roomRepo.Room,
	roomTypeRepo roomTypeRepo.RoomType,
	db postgres.Transactor,
	audit auditService.Sink,
	s3 s3.S3,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Booking {
	return &serviceImpl{
		repo:         repo,
		detailRepo:   detailRepo,
		availability: NewAvailability(availabilityRepo, otel),
		roomRepo:     roomRepo,
		roomTypeRepo: roomTypeRepo,
		db:           db,
		audit:        audit,
		s3:           s3,
		cfg:          cfg,
		cache:        cache,
		otel:         otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if !shared.InPropertyScope(ctx, req.PropertyID) {
		return res, failure.ResourceRestrictedError // nolint:wrapcheck
	}

	if !req.EstimatedDeparture.After(req.EstimatedArrival) {
		return res, failure.BadRequestFromString("estimated_departure must be after estimated_arrival") // nolint:wrapcheck
	}

	pricing := req.Pricing()
	if err = pricing.Validate(); err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	booking := req.ToModel(user)

	roomStatus := model.RoomStatusReserved
	if booking.BookingStatus == model.StatusCheckedIn {
		roomStatus = model.RoomStatusOccupied
	}

	var details []model.RoomDetail

	err = s.db.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		rooms, err := s.roomRepo.LockByIDsTx(ctx, tx, req.RoomIDs)
		if err != nil {
			return fmt.Errorf("failed to lock rooms: %w", err)
		}

		if err := checkRooms(rooms, req.RoomIDs, req.PropertyID); err != nil {
			return err
		}

		conflicts, err := s.availability.FindConflicts(ctx, tx, model.ConflictQuery{
			RoomIDs:         req.RoomIDs,
			Arrival:         booking.EstimatedArrival,
			Departure:       booking.EstimatedDeparture,
			IncludeOccupied: booking.BookingStatus == model.StatusCheckedIn,
		})
		if err != nil {
			return err
		}

		if len(conflicts) > 0 {
			return errRoomUnavailableAtCreate(conflicts)
		}

		typeIDs := make([]string, len(rooms))
		for i, room := range rooms {
			typeIDs[i] = room.RoomTypeID
		}

		roomTypes, err := s.roomTypeRepo.ListByIDsTx(ctx, tx, typeIDs)
		if err != nil {
			return fmt.Errorf("failed to load room types: %w", err)
		}

		if err := s.repo.InsertTx(ctx, tx, booking); err != nil {
			return fmt.Errorf("failed to insert booking: %w", err)
		}

		details = make([]model.RoomDetail, len(rooms))
		for i, room := range rooms {
			details[i] = dto.NewRoomDetail(booking.ID, room.ID, roomTypes[room.RoomTypeID].Label(), roomStatus, user)
			details[i].RoomNo = room.RoomNo
		}

		if err := s.detailRepo.InsertBulkTx(ctx, tx, details); err != nil {
			return fmt.Errorf("failed to insert booking rooms: %w", err)
		}

		return nil
	})
	if err != nil {
		return res, s.lifecycleError(err, "failed to create booking")
	}

	s.afterCommit(ctx, booking, auditModel.EventCreated, map[string]any{
		"booking_status": booking.BookingStatus,
		"room_ids":       req.RoomIDs,
		"final_amount":   booking.FinalAmount,
	}, false)

	res.FromModel(booking)
	res.SetRooms(details)

	return res, nil
}

func (s *serviceImpl) UpdateStatus(ctx context.Context, id string, req dto.UpdateStatusRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.UpdateStatus")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if req.Status == model.StatusCancelled {
		return s.Cancel(ctx, id, dto.CancelBookingRequest{CancellationFee: req.CancellationFee, Comments: req.Comments})
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	var (
		booking  model.Booking
		details  []model.RoomDetail
		previous model.Status
	)

	err = s.db.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		var err error

		booking, details, err = s.lock(ctx, tx, id)
		if err != nil {
			return err
		}

		previous = booking.BookingStatus
		now := timezone.Now()

		if err := guardTransition(booking.BookingStatus, req.Status); err != nil {
			return err
		}

		fields := map[string]any{
			model.FieldBookingStatus: req.Status,
			constant.FieldUpdatedOn:  now,
			constant.FieldUpdatedBy:  user,
		}

		if req.Comments != nil {
			fields[model.FieldComments] = *req.Comments
			booking.Comments = req.Comments
		}

		var roomStatus string

		switch req.Status {
		case model.StatusCheckedIn:
			if err := s.checkInGuard(ctx, tx, booking, details, now); err != nil {
				return err
			}

			fields[model.FieldActualArrival] = now
			booking.ActualArrival = &now
			roomStatus = model.RoomStatusOccupied
		case model.StatusCheckedOut:
			if err := s.roomRepo.MarkDirtyTx(ctx, tx, roomIDs(details), user); err != nil {
				return fmt.Errorf("failed to mark rooms dirty: %w", err)
			}

			fields[model.FieldActualDeparture] = now
			booking.ActualDeparture = &now
			roomStatus = model.RoomStatusVacated
		case model.StatusNoShow:
			fields[model.FieldIsNoShow] = true
			booking.IsNoShow = true
			roomStatus = model.RoomStatusNoShow
		}

		if err := s.repo.UpdateTx(ctx, tx, fields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
			return fmt.Errorf("failed to update booking status: %w", err)
		}

		if err := s.detailRepo.SetRoomStatusTx(ctx, tx, id, roomStatus, user); err != nil {
			return fmt.Errorf("failed to update booking rooms: %w", err)
		}

		booking.BookingStatus = req.Status
		booking.UpdatedOn = now
		booking.UpdatedBy = user
		setRoomStatus(details, roomStatus)

		return nil
	})
	if err != nil {
		return res, s.lifecycleError(err, "failed to update booking status")
	}

	s.afterCommit(ctx, booking, auditModel.EventStatusChange, map[string]any{
		"from":     previous,
		"to":       booking.BookingStatus,
		"comments": req.Comments,
	}, req.Status == model.StatusCheckedOut)

	res.FromModel(booking)
	res.SetRooms(details)

	return res, nil
}

func (s *serviceImpl) Cancel(ctx context.Context, id string, req dto.CancelBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Cancel")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if req.CancellationFee.IsNegative() {
		return res, failure.BadRequestFromString("cancellation_fee cannot be negative") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	var (
		booking  model.Booking
		details  []model.RoomDetail
		previous model.Status
	)

	err = s.db.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		var err error

		booking, details, err = s.lock(ctx, tx, id)
		if err != nil {
			return err
		}

		if booking.BookingStatus.IsTerminal() {
			return errAlreadyTerminal(booking.BookingStatus)
		}

		previous = booking.BookingStatus
		now := timezone.Now()

		fields := map[string]any{
			model.FieldBookingStatus:   model.StatusCancelled,
			model.FieldIsActive:        false,
			model.FieldCancellationFee: req.CancellationFee,
			constant.FieldUpdatedOn:    now,
			constant.FieldUpdatedBy:    user,
		}

		if req.Comments != nil {
			fields[model.FieldComments] = *req.Comments
			booking.Comments = req.Comments
		}

		if err := s.repo.UpdateTx(ctx, tx, fields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
			return fmt.Errorf("failed to cancel booking: %w", err)
		}

		if err := s.detailRepo.SetRoomStatusTx(ctx, tx, id, model.RoomStatusReleased, user); err != nil {
			return fmt.Errorf("failed to release booking rooms: %w", err)
		}

		booking.BookingStatus = model.StatusCancelled
		booking.IsActive = false
		booking.CancellationFee = req.CancellationFee
		booking.UpdatedOn = now
		booking.UpdatedBy = user
		setRoomStatus(details, model.RoomStatusReleased)

		return nil
	})
	if err != nil {
		return res, s.lifecycleError(err, "failed to cancel booking")
	}

	s.afterCommit(ctx, booking, auditModel.EventCancelled, map[string]any{
		"from":             previous,
		"cancellation_fee": req.CancellationFee,
		"comments":         req.Comments,
	}, false)

	res.FromModel(booking)
	res.SetRooms(details)

	return res, nil
}

func (s *serviceImpl) CancelRoom(ctx context.Context, id, roomID string, req dto.CancelRoomRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.CancelRoom")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	var (
		booking       model.Booking
		details       []model.RoomDetail
		autoCancelled bool
	)

	err = s.db.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		var err error

		booking, details, err = s.lock(ctx, tx, id)
		if err != nil {
			return err
		}

		if booking.BookingStatus.IsTerminal() {
			return errAlreadyTerminal(booking.BookingStatus)
		}

		cancelled, err := s.detailRepo.CancelTx(ctx, tx, id, roomID, user)
		if err != nil {
			return fmt.Errorf("failed to cancel booking room: %w", err)
		}

		if !cancelled {
			return errRoomDetailNotFound()
		}

		remaining, err := s.detailRepo.CountActiveTx(ctx, tx, id)
		if err != nil {
			return fmt.Errorf("failed to count booking rooms: %w", err)
		}

		now := timezone.Now()
		details = dropRoom(details, roomID)

		if remaining > 0 {
			return nil
		}

		fields := map[string]any{
			model.FieldBookingStatus: model.StatusCancelled,
			model.FieldIsActive:      false,
			constant.FieldUpdatedOn:  now,
			constant.FieldUpdatedBy:  user,
		}

		if req.Comments != nil {
			fields[model.FieldComments] = *req.Comments
			booking.Comments = req.Comments
		}

		if err := s.repo.UpdateTx(ctx, tx, fields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
			return fmt.Errorf("failed to cancel booking: %w", err)
		}

		booking.BookingStatus = model.StatusCancelled
		booking.IsActive = false
		booking.UpdatedOn = now
		booking.UpdatedBy = user
		autoCancelled = true

		return nil
	})
	if err != nil {
		return res, s.lifecycleError(err, "failed to cancel booking room")
	}

	s.afterCommit(ctx, booking, auditModel.EventRoomCancel, map[string]any{
		"room_id":        roomID,
		"comments":       req.Comments,
		"auto_cancelled": autoCancelled,
	}, false)

	res.FromModel(booking)
	res.SetRooms(details)

	return res, nil
}

func (s *serviceImpl) UpdateDetails(ctx context.Context, id string, req dto.UpdateDetailsRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.UpdateDetails")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if req.IsEmpty() {
		return res, failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	if field := req.NullViolation(); field != constant.Empty {
		return res, failure.BadRequestFromString(field + " cannot be null") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	var (
		booking model.Booking
		details []model.RoomDetail
		fields  map[string]any
	)

	err = s.db.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		var err error

		booking, details, err = s.lock(ctx, tx, id)
		if err != nil {
			return err
		}

		if booking.BookingStatus.IsTerminal() {
			return errAlreadyTerminal(booking.BookingStatus)
		}

		var pricing model.Pricing

		fields, pricing = req.Fields(booking, user)
		if err := pricing.Validate(); err != nil {
			return failure.BadRequest(err) // nolint:wrapcheck
		}

		if err := s.repo.UpdateTx(ctx, tx, fields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
			return fmt.Errorf("failed to update booking: %w", err)
		}

		applyDetails(&booking, req, pricing, user)

		return nil
	})
	if err != nil {
		return res, s.lifecycleError(err, "failed to update booking")
	}

	changed := make([]string, 0, len(fields))
	for field := range fields {
		if field != constant.FieldUpdatedOn && field != constant.FieldUpdatedBy {
			changed = append(changed, field)
		}
	}

	s.afterCommit(ctx, booking, auditModel.EventUpdated, map[string]any{
		"fields":       changed,
		"final_amount": booking.FinalAmount,
	}, false)

	res.FromModel(booking)
	res.SetRooms(details)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheGetBooking, id)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil && shared.InPropertyScope(ctx, res.PropertyID) {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking")

		return res, nil
	}

	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty || !shared.InPropertyScope(ctx, booking.PropertyID) {
		return res, errBookingNotFound()
	}

	details, err := s.detailRepo.GetAll(ctx, gDto.QueryParams{}, shared.FilterByID(id, model.FieldBookingID, model.RoomDetailTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking rooms")

		return res, fmt.Errorf("failed to get booking rooms: %w", err)
	}

	res = dto.BookingResponse{}
	res.FromModel(booking)
	res.SetRooms(details)

	go func() {
		if err := s.cache.Save(context.WithoutCancel(ctx), cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	params.RestrictSort(model.FieldBookingDate, model.FieldEstimatedArrival, model.FieldEstimatedDeparture,
		model.FieldBookingStatus, model.FieldFinalAmount, constant.FieldCreatedOn)
	scoped := scopeFilter(ctx, filter)
	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBooking, params, scoped)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	// Count scopes on its own.
	total, err := s.Count(ctx, filter)
	if err != nil {
		return res, err
	}

	bookings, err := s.repo.GetAll(ctx, params, scoped)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(bookings, total, params.Limit)

	if len(bookings) > 0 {
		ids := make([]string, len(bookings))
		for i, booking := range bookings {
			ids[i] = booking.ID
		}

		details, err := s.detailRepo.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{
			Filters: []any{gDto.Filter{
				Field:    model.FieldBookingID,
				Value:    ids,
				Operator: gDto.FilterOperatorIn,
				Table:    model.RoomDetailTableName,
			}},
		})
		if err != nil {
			log.Error().Err(err).Msg("failed to get booking rooms")

			return res, fmt.Errorf("failed to get booking rooms: %w", err)
		}

		res.SetRooms(details)
	}

	go func() {
		if err := s.cache.Save(context.WithoutCancel(ctx), cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Count")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter = scopeFilter(ctx, filter)
	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountBooking, gDto.QueryParams{}, filter)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return 0, fmt.Errorf("failed to count bookings: %w", err)
	}

	go func() {
		if err := s.cache.Save(context.WithoutCancel(ctx), cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) CheckAvailability(ctx context.Context, req dto.AvailabilityRequest) (dto.AvailabilityResponse, error) {
	return s.availability.CheckAvailability(ctx, req) // nolint:wrapcheck
}

func (s *serviceImpl) AttachIDProof(ctx context.Context, id string, req dto.AttachIDProofRequest) (res dto.AttachIDProofResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.AttachIDProof")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	booking, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty || !shared.InPropertyScope(ctx, booking.PropertyID) {
		return res, errBookingNotFound()
	}

	url, err := s.s3.UploadFile(ctx, path.Join(idProofDirectory, id), req.DocumentType, req.DocumentFile, req.Document)
	if err != nil {
		log.Error().Err(err).Msg("failed to upload id proof")

		return res, fmt.Errorf("failed to upload id proof: %w", err)
	}

	fields := map[string]any{
		model.FieldIDProofURL:   url,
		constant.FieldUpdatedOn: timezone.Now(),
		constant.FieldUpdatedBy: user,
	}

	if err = s.repo.Update(ctx, fields, filter); err != nil {
		log.Error().Err(err).Msg("failed to store id proof url")

		if delErr := s.s3.DeleteFile(context.WithoutCancel(ctx), s.s3.GetObjectKeyFromURL(url)); delErr != nil {
			log.Error().Err(delErr).Str("url", url).Msg("failed to delete orphaned id proof")
		}

		return res, fmt.Errorf("failed to store id proof url: %w", err)
	}

	if booking.IDProofURL != nil && *booking.IDProofURL != url {
		previous := *booking.IDProofURL

		go func() {
			if err := s.s3.DeleteFile(context.WithoutCancel(ctx), s.s3.GetObjectKeyFromURL(previous)); err != nil {
				log.Error().Err(err).Str("url", previous).Msg("failed to delete previous id proof")
			}
		}()
	}

	booking.IDProofURL = &url
	s.afterCommit(ctx, booking, auditModel.EventIDProof, map[string]any{
		"document_type": req.DocumentType,
	}, false)

	res.URL = url

	return res, nil
}

// lock takes the booking row lock and loads the active rooms of the booking.
func (s *serviceImpl) lock(ctx context.Context, tx *sqlx.Tx, id string) (model.Booking, []model.RoomDetail, error) {
	booking, err := s.repo.GetForUpdateTx(ctx, tx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		return booking, nil, fmt.Errorf("failed to lock booking: %w", err)
	}

	if booking.ID == constant.Empty || !shared.InPropertyScope(ctx, booking.PropertyID) {
		return booking, nil, errBookingNotFound()
	}

	details, err := s.detailRepo.GetAllTx(ctx, tx, gDto.QueryParams{}, shared.FilterByFields(model.RoomDetailTableName, map[string]any{
		model.FieldBookingID:   id,
		model.FieldIsCancelled: false,
	}))
	if err != nil {
		return booking, nil, fmt.Errorf("failed to get booking rooms: %w", err)
	}

	return booking, details, nil
}

// checkInGuard locks the rooms of the booking and rejects the check-in when
// another booking holds any of them from now until the planned departure.
func (s *serviceImpl) checkInGuard(ctx context.Context, tx *sqlx.Tx, booking model.Booking, details []model.RoomDetail, now time.Time) error {
	ids := roomIDs(details)

	if _, err := s.roomRepo.LockByIDsTx(ctx, tx, ids); err != nil {
		return fmt.Errorf("failed to lock rooms: %w", err)
	}

	departure := booking.EffectiveDeparture()
	if !departure.After(now) {
		departure = now.Add(checkInWindow)
	}

	conflicts, err := s.availability.FindConflicts(ctx, tx, model.ConflictQuery{
		RoomIDs:          ids,
		Arrival:          now,
		Departure:        departure,
		Statuses:         checkInStatuses,
		ExcludeBookingID: booking.ID,
		IncludeOccupied:  true,
	})
	if err != nil {
		return err
	}

	if len(conflicts) > 0 {
		return errRoomNotAvailable(conflicts)
	}

	return nil
}

// afterCommit drops cached reads of the booking and records the event.
func (s *serviceImpl) afterCommit(ctx context.Context, booking model.Booking, eventType string, details map[string]any, roomsChanged bool) {
	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	c := context.WithoutCancel(ctx)

	go func() {
		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBooking, booking.ID)); err != nil {
			log.Error().Err(err).Msg("failed to delete booking cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)

		if roomsChanged {
			shared.InvalidateCaches(c, s.cache, roomModel.CachePrefix)
		}
	}()

	go s.audit.Record(c, auditModel.Event{
		PropertyID: booking.PropertyID,
		EventID:    booking.ID,
		TableName:  model.TableName,
		EventType:  eventType,
		Details:    details,
		Actor:      user,
		OccurredOn: timezone.Now(),
	})
}

// lifecycleError passes business failures through and logs the rest.
func (s *serviceImpl) lifecycleError(err error, msg string) error {
	var fail *failure.Failure
	if errors.As(err, &fail) {
		return fail
	}

	log.Error().Err(err).Msg(msg)

	return fmt.Errorf("%s: %w", msg, err)
}

func guardTransition(current, target model.Status) error {
	if target == model.StatusCheckedOut {
		if current != model.StatusCheckedIn {
			return errInvalidCheckout(current)
		}

		return nil
	}

	if current.IsTerminal() {
		return errAlreadyTerminal(current)
	}

	switch {
	case target == model.StatusCheckedIn && current == model.StatusConfirmed:
		return nil
	case target == model.StatusNoShow && current == model.StatusConfirmed:
		return nil
	default:
		return errInvalidTransition(current, target)
	}
}

// checkRooms verifies that every requested room was found, is active and
// belongs to the property.
func checkRooms(rooms []roomModel.Room, requested []string, propertyID string) error {
	found := make(map[string]roomModel.Room, len(rooms))
	for _, room := range rooms {
		found[room.ID] = room
	}

	for _, id := range requested {
		room, ok := found[id]

		switch {
		case !ok || room.PropertyID != propertyID:
			return failure.BadRequestFromString("room " + id + " does not exist in this property") // nolint:wrapcheck
		case !room.IsActive:
			return failure.BadRequestFromString("room " + room.RoomNo + " is not active") // nolint:wrapcheck
		}
	}

	return nil
}

func applyDetails(booking *model.Booking, req dto.UpdateDetailsRequest, pricing model.Pricing, user string) {
	booking.GuestName = req.GuestName.Or(booking.GuestName)
	booking.GuestPhone = req.GuestPhone.Apply(booking.GuestPhone)
	booking.GuestEmail = req.GuestEmail.Apply(booking.GuestEmail)
	booking.Comments = req.Comments.Apply(booking.Comments)
	booking.PickUp = req.PickUp.Or(booking.PickUp)
	booking.Drop = req.Drop.Or(booking.Drop)
	booking.AdultCount = req.AdultCount.Or(booking.AdultCount)
	booking.ChildCount = req.ChildCount.Or(booking.ChildCount)
	booking.TotalGuest = booking.AdultCount + booking.ChildCount

	if req.DropsDiscountRule(*booking) {
		booking.DiscountType = nil
		booking.DiscountValue = decimal.Zero
	}

	booking.SetPricing(pricing)
	booking.UpdatedOn = timezone.Now()
	booking.UpdatedBy = user
}

func roomIDs(details []model.RoomDetail) []string {
	ids := make([]string, len(details))
	for i, detail := range details {
		ids[i] = detail.RoomID
	}

	return ids
}

func setRoomStatus(details []model.RoomDetail, roomStatus string) {
	for i := range details {
		details[i].RoomStatus = roomStatus
	}
}

func dropRoom(details []model.RoomDetail, roomID string) []model.RoomDetail {
	kept := make([]model.RoomDetail, 0, len(details))

	for _, detail := range details {
		if detail.RoomID != roomID {
			kept = append(kept, detail)
		}
	}

	return kept
}

func scopeFilter(ctx context.Context, filter gDto.FilterGroup) gDto.FilterGroup {
	scoped, _ := ctx.Value(constant.ContextKeyPropertyID).(string)
	if scoped == constant.Empty {
		return filter
	}

	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			filter,
			gDto.Filter{
				ArgName:  "scope_property_id",
				Field:    model.FieldPropertyID,
				Value:    scoped,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
		},
	}
}
