package room

import (
	"net/http"
	"pms/infras/otel"
	bookingDto "pms/internal/domains/booking/model/dto"
	bookingService "pms/internal/domains/booking/service"
	"pms/internal/domains/room/model/dto"
	"pms/internal/domains/room/service"
	"pms/shared"
	"pms/shared/constant"
	"pms/shared/validator"
	"pms/transport/http/middleware"
	"pms/transport/http/response"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

const (
	queryActiveOnly = "active_only"
	queryRoomIDs    = "room_ids"
	queryArrival    = "arrival"
	queryDeparture  = "departure"
)

type Handler struct {
	service    service.Room
	booking    bookingService.Booking
	middleware middleware.AuthRole
	otel       otel.Otel
}

func New(service service.Room, booking bookingService.Booking, middleware middleware.AuthRole, otel otel.Otel) Handler {
	return Handler{
		service:    service,
		booking:    booking,
		middleware: middleware,
		otel:       otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/properties/{propertyID}/rooms", func(routerGroup chi.Router) {
		routerGroup.Use(handler.middleware.Property)

		routerGroup.Post("/generate", handler.GenerateRooms)
		routerGroup.Post("/", handler.AddRoom)
		routerGroup.Get("/", handler.GetRooms)
	})

	router.Route("/rooms", func(routerGroup chi.Router) {
		routerGroup.Get("/availability", handler.CheckAvailability)
		routerGroup.Get("/{id}", handler.GetRoomByID)
		routerGroup.Patch("/{id}", handler.UpdateRoom)
		routerGroup.Delete("/{id}", handler.DeactivateRoom)
		routerGroup.Post("/{id}/clean", handler.MarkRoomClean)
	})
}

// GenerateRooms creates the room directory of a property floor by floor.
// @Summary Generate rooms for a property
// @Description Numbers rooms as serial_base + floor*100 + index. Numbers that already exist are skipped.
// @Tags Room
// @Accept json
// @Produce json
// @Param propertyID path string true "Property ID"
// @Param request body dto.GenerateRoomsRequest true "Generate Rooms Request"
// @Success 201 {object} response.Data[dto.GenerateRoomsResponse]
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/properties/{propertyID}/rooms/generate [post]
// @Security BearerAuth
func (handler *Handler) GenerateRooms(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GenerateRooms")
	defer scope.End()

	propertyID := chi.URLParam(request, constant.RequestParamPropertyID)

	if err := validator.ValidateID(constant.RequestParamPropertyID, propertyID); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("propertyID", propertyID).Msg("invalid path parameter")

		response.WithError(writer, err)

		return
	}

	req := dto.GenerateRoomsRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.GenerateRooms(ctx, propertyID, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to generate rooms")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Rooms generated successfully by user " + user)

	response.WithJSON(writer, http.StatusCreated, res)
}

// AddRoom adds one room to a floor of a property.
// @Summary Add a room
// @Description The room number is inferred from the floor when room_no is omitted.
// @Tags Room
// @Accept json
// @Produce json
// @Param propertyID path string true "Property ID"
// @Param request body dto.AddRoomRequest true "Add Room Request"
// @Success 201 {object} response.Data[dto.RoomResponse]
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/properties/{propertyID}/rooms [post]
// @Security BearerAuth
func (handler *Handler) AddRoom(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AddRoom")
	defer scope.End()

	propertyID := chi.URLParam(request, constant.RequestParamPropertyID)

	if err := validator.ValidateID(constant.RequestParamPropertyID, propertyID); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("propertyID", propertyID).Msg("invalid path parameter")

		response.WithError(writer, err)

		return
	}

	req := dto.AddRoomRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	room, err := handler.service.AddRoom(ctx, propertyID, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to add room")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Room " + room.RoomNo + " added by user " + user)

	response.WithJSON(writer, http.StatusCreated, room)
}

// GetRooms lists the rooms of a property.
// @Summary List rooms of a property
// @Tags Room
// @Produce json
// @Param propertyID path string true "Property ID"
// @Param active_only query boolean false "Only active rooms"
// @Success 200 {object} response.Data[[]dto.RoomResponse]
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/properties/{propertyID}/rooms [get]
// @Security BearerAuth
func (handler *Handler) GetRooms(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRooms")
	defer scope.End()

	propertyID := chi.URLParam(r, constant.RequestParamPropertyID)

	if err := validator.ValidateID(constant.RequestParamPropertyID, propertyID); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("propertyID", propertyID).Msg("invalid path parameter")

		response.WithError(w, err)

		return
	}

	activeOnly := false
	if active := shared.ConvertStringToBool(r.URL.Query().Get(queryActiveOnly)); active != nil {
		activeOnly = *active
	}

	rooms, err := handler.service.ListByProperty(ctx, propertyID, activeOnly)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get rooms")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Rooms retrieved successfully")

	response.WithJSON(w, http.StatusOK, rooms)
}

// GetRoomByID retrieves a room by its ID.
// @Summary Get a room by ID
// @Tags Room
// @Produce json
// @Param id path string true "Room ID"
// @Success 200 {object} response.Data[dto.RoomResponse]
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetRoomByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRoomByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := validator.ValidateID(constant.RequestParamID, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("invalid path parameter")

		response.WithError(w, err)

		return
	}

	room, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get room by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Room retrieved successfully")

	response.WithJSON(w, http.StatusOK, room)
}

// UpdateRoom updates an existing room by its ID.
// @Summary Update a room by ID
// @Tags Room
// @Accept json
// @Produce json
// @Param id path string true "Room ID"
// @Param request body dto.UpdateRoomRequest true "Update Room Request"
// @Success 200 {object} response.Message "Room updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateRoom(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateRoom")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := validator.ValidateID(constant.RequestParamID, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("invalid path parameter")

		response.WithError(w, err)

		return
	}

	req := dto.UpdateRoomRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, id, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update room")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Room updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Room updated successfully")
}

// DeactivateRoom retires a room from future bookings.
// @Summary Deactivate a room by ID
// @Tags Room
// @Produce json
// @Param id path string true "Room ID"
// @Success 200 {object} response.Message "Room deactivated successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeactivateRoom(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeactivateRoom")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := validator.ValidateID(constant.RequestParamID, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("invalid path parameter")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Deactivate(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to deactivate room")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Room deactivated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Room deactivated successfully")
}

// MarkRoomClean clears the dirty flag set at checkout.
// @Summary Mark a room as clean
// @Tags Room
// @Produce json
// @Param id path string true "Room ID"
// @Success 200 {object} response.Message "Room marked clean"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms/{id}/clean [post]
// @Security BearerAuth
func (handler *Handler) MarkRoomClean(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".MarkRoomClean")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := validator.ValidateID(constant.RequestParamID, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("invalid path parameter")

		response.WithError(w, err)

		return
	}

	if err := handler.service.MarkClean(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to mark room clean")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Room marked clean by user " + user)

	response.WithMessage(w, http.StatusOK, "Room marked clean")
}

// CheckAvailability reports active claims on rooms over a date range.
// @Summary Check room availability
// @Description Advisory only: nothing is reserved, a later booking may still be rejected.
// @Tags Room
// @Produce json
// @Param room_ids query string true "Comma separated room IDs"
// @Param arrival query string true "Arrival (RFC3339)"
// @Param departure query string true "Departure (RFC3339)"
// @Success 200 {object} response.Data[bookingDto.AvailabilityResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms/availability [get]
// @Security BearerAuth
func (handler *Handler) CheckAvailability(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CheckAvailability")
	defer scope.End()

	query := r.URL.Query()
	req := bookingDto.AvailabilityRequest{}

	if raw := query.Get(queryRoomIDs); raw != "" {
		for _, id := range strings.Split(raw, ",") {
			if id = strings.TrimSpace(id); id != "" {
				req.RoomIDs = append(req.RoomIDs, id)
			}
		}
	}

	var err error

	if req.Arrival, err = validator.ParseTime(queryArrival, query.Get(queryArrival)); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	if req.Departure, err = validator.ParseTime(queryDeparture, query.Get(queryDeparture)); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	if err = validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate availability query")

		response.WithError(w, err)

		return
	}

	res, err := handler.booking.CheckAvailability(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to check availability")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}
