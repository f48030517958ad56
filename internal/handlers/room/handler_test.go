package room_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"pms/config"
	jwtMocks "pms/infras/jwt/mocks"
	otelMocks "pms/infras/otel/mocks"
	bookingModel "pms/internal/domains/booking/model"
	bookingDto "pms/internal/domains/booking/model/dto"
	bookingMocks "pms/internal/domains/booking/service/mocks"
	"pms/internal/domains/room/model/dto"
	roomMocks "pms/internal/domains/room/service/mocks"
	"pms/internal/handlers/room"
	"pms/permissions"
	"pms/shared/constant"
	"pms/shared/failure"
	"pms/transport/http/middleware"
)

const (
	propertyID = "2f1c7a9e-5b3d-4e8f-a1c2-0d9e8f7a6b5c"
	roomTypeID = "7d4e1f0a-3b2c-4d5e-9f8a-6b7c8d9e0f1a"
	roomID     = "9a8b7c6d-5e4f-4a3b-8c2d-1e0f9a8b7c6d"
)

type mocks struct {
	room    *roomMocks.MockRoom
	booking *bookingMocks.MockBooking
}

func newRouter(t *testing.T) (http.Handler, mocks) {
	ctrl := gomock.NewController(t)
	m := mocks{
		room:    roomMocks.NewMockRoom(ctrl),
		booking: bookingMocks.NewMockBooking(ctrl),
	}

	ot := otelMocks.NewOtel()
	authRole := middleware.NewAuthRoleMiddleware(jwtMocks.NewMockJWT(ctrl), ot, &permissions.PermissionData{}, &config.Config{})

	handler := room.New(m.room, m.booking, authRole, ot)

	r := chi.NewRouter()
	r.Route("/v1", handler.Router)

	return r, m
}

func withProperty(req *http.Request, property string) *http.Request {
	return req.WithContext(context.WithValue(req.Context(), constant.ContextKeyPropertyID, property))
}

func TestHandler_GenerateRooms(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		scope    string
		wantCall bool
		wantCode int
	}{
		{
			name:     "two floors",
			body:     `{"room_type_id":"` + roomTypeID + `","serial_base":0,"floors":[{"floor_no":1,"rooms_count":3},{"floor_no":2,"rooms_count":2}]}`,
			scope:    propertyID,
			wantCall: true,
			wantCode: http.StatusCreated,
		},
		{
			name:     "empty floor plan",
			body:     `{"room_type_id":"` + roomTypeID + `","floors":[]}`,
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "zero rooms on a floor",
			body:     `{"room_type_id":"` + roomTypeID + `","floors":[{"floor_no":1,"rooms_count":0}]}`,
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "other property",
			body:     `{"room_type_id":"` + roomTypeID + `","floors":[{"floor_no":1,"rooms_count":3}]}`,
			scope:    "3e2d1c0b-9a8f-4e7d-8c6b-5a4f3e2d1c0b",
			wantCode: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, m := newRouter(t)

			if tt.wantCall {
				m.room.EXPECT().GenerateRooms(gomock.Any(), propertyID, gomock.Any()).DoAndReturn(
					func(_ context.Context, _ string, req dto.GenerateRoomsRequest) (dto.GenerateRoomsResponse, error) {
						require.Len(t, req.Floors, 2)
						assert.Equal(t, 3, req.Floors[0].RoomsCount)

						return dto.GenerateRoomsResponse{Requested: 5, Inserted: 5}, nil
					})
			}

			req := httptest.NewRequest(http.MethodPost, "/v1/properties/"+propertyID+"/rooms/generate", strings.NewReader(tt.body))
			if tt.scope != "" {
				req = withProperty(req, tt.scope)
			}

			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, req)

			assert.Equal(t, tt.wantCode, recorder.Code)
		})
	}
}

func TestHandler_GetRooms(t *testing.T) {
	router, m := newRouter(t)

	m.room.EXPECT().ListByProperty(gomock.Any(), propertyID, true).Return([]dto.RoomResponse{{ID: roomID}}, nil)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/v1/properties/"+propertyID+"/rooms?active_only=true", nil))

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), roomID)
}

func TestHandler_DeactivateRoom(t *testing.T) {
	tests := []struct {
		name       string
		serviceErr error
		wantCode   int
	}{
		{name: "deactivated", wantCode: http.StatusOK},
		{name: "unknown room", serviceErr: failure.NotFound("room"), wantCode: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, m := newRouter(t)

			m.room.EXPECT().Deactivate(gomock.Any(), roomID).Return(tt.serviceErr)

			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, httptest.NewRequest(http.MethodDelete, "/v1/rooms/"+roomID, nil))

			assert.Equal(t, tt.wantCode, recorder.Code)
		})
	}
}

func TestHandler_CheckAvailability(t *testing.T) {
	tests := []struct {
		name     string
		rawQuery string
		wantCall bool
		wantCode int
	}{
		{
			name:     "claimed room",
			rawQuery: "room_ids=" + roomID + "&arrival=2026-03-01T14:00:00Z&departure=2026-03-03T11:00:00Z",
			wantCall: true,
			wantCode: http.StatusOK,
		},
		{
			name:     "departure before arrival",
			rawQuery: "room_ids=" + roomID + "&arrival=2026-03-03T14:00:00Z&departure=2026-03-01T11:00:00Z",
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "unparseable arrival",
			rawQuery: "room_ids=" + roomID + "&arrival=tomorrow&departure=2026-03-01T11:00:00Z",
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "no rooms",
			rawQuery: "arrival=2026-03-01T14:00:00Z&departure=2026-03-03T11:00:00Z",
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, m := newRouter(t)

			if tt.wantCall {
				m.booking.EXPECT().CheckAvailability(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, req bookingDto.AvailabilityRequest) (bookingDto.AvailabilityResponse, error) {
						assert.Equal(t, []string{roomID}, req.RoomIDs)
						assert.Equal(t, time.Date(2026, 3, 1, 14, 0, 0, 0, time.UTC), req.Arrival)

						return bookingDto.AvailabilityResponse{
							Available: false,
							Conflicts: []bookingModel.Conflict{{RoomID: roomID, RoomNo: "101"}},
						}, nil
					})
			}

			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/v1/rooms/availability?"+tt.rawQuery, nil))

			assert.Equal(t, tt.wantCode, recorder.Code)

			if tt.wantCall {
				assert.Contains(t, recorder.Body.String(), `"available":false`)
			}
		})
	}
}

func TestHandler_RoomMalformedID(t *testing.T) {
	tests := []struct {
		name   string
		method string
		target string
		body   string
	}{
		{name: "get", method: http.MethodGet, target: "/v1/rooms/101"},
		{name: "update", method: http.MethodPatch, target: "/v1/rooms/101", body: `{"floor_no":2}`},
		{name: "deactivate", method: http.MethodDelete, target: "/v1/rooms/101"},
		{name: "mark clean", method: http.MethodPost, target: "/v1/rooms/101/clean"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, _ := newRouter(t)

			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, httptest.NewRequest(tt.method, tt.target, strings.NewReader(tt.body)))

			assert.Equal(t, http.StatusBadRequest, recorder.Code)
			assert.Contains(t, recorder.Body.String(), "id must be a valid UUID")
		})
	}
}
