package roomtype_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"pms/config"
	jwtMocks "pms/infras/jwt/mocks"
	otelMocks "pms/infras/otel/mocks"
	"pms/internal/domains/roomtype/model/dto"
	serviceMocks "pms/internal/domains/roomtype/service/mocks"
	"pms/internal/handlers/roomtype"
	"pms/permissions"
	"pms/shared/failure"
	"pms/transport/http/middleware"
)

const (
	propertyID = "2f1c7a9e-5b3d-4e8f-a1c2-0d9e8f7a6b5c"
	roomTypeID = "7d4e1f0a-3b2c-4d5e-9f8a-6b7c8d9e0f1a"
)

func newRouter(t *testing.T) (http.Handler, *serviceMocks.MockRoomType) {
	ctrl := gomock.NewController(t)
	mockService := serviceMocks.NewMockRoomType(ctrl)

	ot := otelMocks.NewOtel()
	authRole := middleware.NewAuthRoleMiddleware(jwtMocks.NewMockJWT(ctrl), ot, &permissions.PermissionData{}, &config.Config{})

	handler := roomtype.New(mockService, authRole, ot)

	r := chi.NewRouter()
	r.Route("/v1", handler.Router)

	return r, mockService
}

func TestHandler_CreateRoomType(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		serviceErr error
		wantCall   bool
		wantCode   int
	}{
		{
			name:     "created",
			body:     `{"category":"Deluxe","bed_type":"King","ac_type":"AC","price":"3500.50"}`,
			wantCall: true,
			wantCode: http.StatusCreated,
		},
		{
			name:       "duplicate label",
			body:       `{"category":"Deluxe","bed_type":"King","ac_type":"AC","price":"3500.50"}`,
			serviceErr: failure.Conflict("room type already exists"),
			wantCall:   true,
			wantCode:   http.StatusConflict,
		},
		{
			name:     "unknown ac type",
			body:     `{"category":"Deluxe","bed_type":"King","ac_type":"FAN","price":"3500"}`,
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "negative price",
			body:     `{"category":"Deluxe","bed_type":"King","ac_type":"AC","price":"-1"}`,
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, mockService := newRouter(t)

			if tt.wantCall {
				mockService.EXPECT().Create(gomock.Any(), propertyID, gomock.Any()).DoAndReturn(
					func(_ context.Context, _ string, req dto.CreateRoomTypeRequest) (dto.RoomTypeResponse, error) {
						assert.True(t, decimal.RequireFromString("3500.50").Equal(req.Price))

						return dto.RoomTypeResponse{}, tt.serviceErr
					})
			}

			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/v1/properties/"+propertyID+"/room-types", strings.NewReader(tt.body)))

			assert.Equal(t, tt.wantCode, recorder.Code)
		})
	}
}

func TestHandler_UpdateRoomType(t *testing.T) {
	t.Run("price only", func(t *testing.T) {
		router, mockService := newRouter(t)

		mockService.EXPECT().Update(gomock.Any(), roomTypeID, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, req dto.UpdateRoomTypeRequest) error {
				require.True(t, req.Price.Present())
				assert.True(t, decimal.NewFromInt(4200).Equal(req.Price.Value))
				assert.False(t, req.IsActive.Present())

				return nil
			})

		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPatch, "/v1/room-types/"+roomTypeID, strings.NewReader(`{"price":"4200"}`)))

		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	t.Run("negative price", func(t *testing.T) {
		router, _ := newRouter(t)

		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPatch, "/v1/room-types/"+roomTypeID, strings.NewReader(`{"price":"-5"}`)))

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

func TestHandler_GetRoomTypeByID(t *testing.T) {
	router, mockService := newRouter(t)

	mockService.EXPECT().Get(gomock.Any(), roomTypeID).Return(dto.RoomTypeResponse{}, failure.NotFound("room type"))

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/v1/room-types/"+roomTypeID, nil))

	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestHandler_RoomTypeMalformedID(t *testing.T) {
	tests := []struct {
		name   string
		method string
		body   string
	}{
		{name: "get", method: http.MethodGet},
		{name: "update", method: http.MethodPatch, body: `{"price":"4200"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, _ := newRouter(t)

			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, httptest.NewRequest(tt.method, "/v1/room-types/rt-1", strings.NewReader(tt.body)))

			assert.Equal(t, http.StatusBadRequest, recorder.Code)
		})
	}
}
