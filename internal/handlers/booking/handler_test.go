package booking_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	otelMocks "pms/infras/otel/mocks"
	"pms/internal/domains/booking/model"
	"pms/internal/domains/booking/model/dto"
	"pms/internal/domains/booking/service"
	serviceMocks "pms/internal/domains/booking/service/mocks"
	"pms/internal/handlers/booking"
	gDto "pms/shared/dto"
	"pms/shared/failure"
)

const (
	propertyID = "2f1c7a9e-5b3d-4e8f-a1c2-0d9e8f7a6b5c"
	roomID     = "9a8b7c6d-5e4f-4a3b-8c2d-1e0f9a8b7c6d"
	bookingID  = "4b3c2d1e-0f9a-4b8c-9d7e-6f5a4b3c2d1e"
)

func newRouter(t *testing.T) (http.Handler, *serviceMocks.MockBooking) {
	ctrl := gomock.NewController(t)
	mockService := serviceMocks.NewMockBooking(ctrl)

	handler := booking.New(mockService, otelMocks.NewOtel())

	r := chi.NewRouter()
	r.Route("/v1", handler.Router)

	return r, mockService
}

func createBody() string {
	return `{
		"property_id": "` + propertyID + `",
		"booking_type": "WALK_IN",
		"guest_name": "Asha Rao",
		"estimated_arrival": "2026-03-01T14:00:00Z",
		"estimated_departure": "2026-03-03T11:00:00Z",
		"adult_count": 2,
		"room_ids": ["` + roomID + `"],
		"price_before_tax": "4000",
		"gst_amount": "480"
	}`
}

func TestHandler_CreateBooking(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		serviceErr error
		wantCode   int
		wantReason string
	}{
		{name: "created", body: createBody(), wantCode: http.StatusCreated},
		{
			name:       "room already claimed",
			body:       createBody(),
			serviceErr: failure.ConflictWithDetails(service.ReasonRoomUnavailableAtCreate, "rooms are not available", []model.Conflict{{RoomID: roomID, RoomNo: "101"}}),
			wantCode:   http.StatusConflict,
			wantReason: service.ReasonRoomUnavailableAtCreate,
		},
		{name: "departure before arrival", body: strings.Replace(createBody(), "2026-03-03", "2026-02-27", 1), wantCode: http.StatusBadRequest},
		{name: "no rooms", body: strings.Replace(createBody(), `"`+roomID+`"`, "", 1), wantCode: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, mockService := newRouter(t)

			if tt.wantCode != http.StatusBadRequest {
				mockService.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ any, req dto.CreateBookingRequest) (dto.BookingResponse, error) {
					assert.Equal(t, propertyID, req.PropertyID)
					assert.Equal(t, model.StatusConfirmed, req.Status())

					return dto.BookingResponse{ID: bookingID, PropertyID: propertyID}, tt.serviceErr
				})
			}

			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/v1/bookings", strings.NewReader(tt.body)))

			assert.Equal(t, tt.wantCode, recorder.Code)

			if tt.wantReason != "" {
				var body map[string]any
				require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
				assert.Equal(t, tt.wantReason, body["reason"])
				assert.NotEmpty(t, body["details"])
			}
		})
	}
}

func TestHandler_GetBookings(t *testing.T) {
	t.Run("filters", func(t *testing.T) {
		router, mockService := newRouter(t)

		mockService.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, params gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error) {
				assert.Equal(t, 2, params.Page)
				require.Len(t, filter.Filters, 3)

				status, ok := filter.Filters[0].(gDto.Filter)
				require.True(t, ok)
				assert.Equal(t, model.FieldBookingStatus, status.Field)

				from, ok := filter.Filters[2].(gDto.Filter)
				require.True(t, ok)
				assert.Equal(t, gDto.FilterOperatorGreaterEq, from.Operator)
				assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), from.Value)

				return dto.GetBookingsResponse{TotalData: 1}, nil
			})

		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet,
			"/v1/bookings?page=2&booking_status=CONFIRMED&guest_name=rao&arrival_from=2026-03-01T00:00:00Z", nil))

		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	t.Run("malformed arrival bound", func(t *testing.T) {
		router, _ := newRouter(t)

		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/v1/bookings?arrival_to=tomorrow", nil))

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

func TestHandler_CancelBooking(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantCode int
		wantFee  string
	}{
		{name: "without body", wantCode: http.StatusOK, wantFee: "0"},
		{name: "with fee", body: `{"cancellation_fee":"500"}`, wantCode: http.StatusOK, wantFee: "500"},
		{name: "negative fee", body: `{"cancellation_fee":"-1"}`, wantCode: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, mockService := newRouter(t)

			if tt.wantCode == http.StatusOK {
				mockService.EXPECT().Cancel(gomock.Any(), bookingID, gomock.Any()).DoAndReturn(
					func(_ any, _ string, req dto.CancelBookingRequest) (dto.BookingResponse, error) {
						assert.Equal(t, tt.wantFee, req.CancellationFee.String())

						return dto.BookingResponse{ID: bookingID, BookingStatus: model.StatusCancelled}, nil
					})
			}

			req := httptest.NewRequest(http.MethodPost, "/v1/bookings/"+bookingID+"/cancel", nil)
			if tt.body != "" {
				req = httptest.NewRequest(http.MethodPost, "/v1/bookings/"+bookingID+"/cancel", strings.NewReader(tt.body))
			}

			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, req)

			assert.Equal(t, tt.wantCode, recorder.Code)
		})
	}
}

func TestHandler_UpdateBookingStatus(t *testing.T) {
	router, mockService := newRouter(t)

	mockService.EXPECT().UpdateStatus(gomock.Any(), bookingID, gomock.Any()).Return(dto.BookingResponse{},
		failure.ConflictWithDetails(service.ReasonInvalidCheckout, "booking is not checked in", nil))

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPatch, "/v1/bookings/"+bookingID+"/status", strings.NewReader(`{"status":"CHECKED_OUT"}`)))

	assert.Equal(t, http.StatusConflict, recorder.Code)
	assert.Contains(t, recorder.Body.String(), service.ReasonInvalidCheckout)
}

func TestHandler_MalformedPathID(t *testing.T) {
	tests := []struct {
		name   string
		method string
		target string
		body   string
	}{
		{name: "get", method: http.MethodGet, target: "/v1/bookings/b-1"},
		{name: "update details", method: http.MethodPatch, target: "/v1/bookings/b-1", body: `{"adult_count":2}`},
		{name: "update status", method: http.MethodPatch, target: "/v1/bookings/b-1/status", body: `{"status":"CHECKED_IN"}`},
		{name: "cancel", method: http.MethodPost, target: "/v1/bookings/b-1/cancel"},
		{name: "cancel room with bad booking", method: http.MethodPost, target: "/v1/bookings/b-1/rooms/" + roomID + "/cancel"},
		{name: "cancel room with bad room", method: http.MethodPost, target: "/v1/bookings/" + bookingID + "/rooms/101/cancel"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// no service expectations: the request must stop at the handler
			router, _ := newRouter(t)

			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, httptest.NewRequest(tt.method, tt.target, strings.NewReader(tt.body)))

			assert.Equal(t, http.StatusBadRequest, recorder.Code)
			assert.Contains(t, recorder.Body.String(), "must be a valid UUID")
		})
	}
}
