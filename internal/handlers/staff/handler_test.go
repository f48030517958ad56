package staff_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	otelMocks "pms/infras/otel/mocks"
	"pms/internal/domains/staff/model"
	"pms/internal/domains/staff/model/dto"
	serviceMocks "pms/internal/domains/staff/service/mocks"
	"pms/internal/handlers/staff"
	gDto "pms/shared/dto"
	"pms/shared/failure"
)

const (
	propertyID = "2f1c7a9e-5b3d-4e8f-a1c2-0d9e8f7a6b5c"
	staffID    = "1e2d3c4b-5a69-4788-8a9b-0c1d2e3f4a5b"
)

func newRouter(t *testing.T) (http.Handler, *serviceMocks.MockStaff) {
	ctrl := gomock.NewController(t)
	mockService := serviceMocks.NewMockStaff(ctrl)

	handler := staff.New(mockService, otelMocks.NewOtel())

	r := chi.NewRouter()
	r.Route("/v1", handler.Router)

	return r, mockService
}

func TestHandler_CreateStaff(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		serviceErr error
		wantCode   int
	}{
		{
			name:     "front desk bound to a property",
			body:     `{"email":"desk@hotel.test","password":"secret-pass","full_name":"Front Desk","role":"front_desk","property_id":"` + propertyID + `"}`,
			wantCode: http.StatusCreated,
		},
		{
			name:     "admin without property",
			body:     `{"email":"root@hotel.test","password":"secret-pass","full_name":"Admin","role":"admin"}`,
			wantCode: http.StatusCreated,
		},
		{
			name:       "email taken",
			body:       `{"email":"root@hotel.test","password":"secret-pass","full_name":"Admin","role":"admin"}`,
			serviceErr: failure.Conflict("staff with this email already exists"),
			wantCode:   http.StatusConflict,
		},
		{
			name:     "front desk without property",
			body:     `{"email":"desk@hotel.test","password":"secret-pass","full_name":"Front Desk","role":"front_desk"}`,
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "unknown role",
			body:     `{"email":"desk@hotel.test","password":"secret-pass","full_name":"Front Desk","role":"concierge","property_id":"` + propertyID + `"}`,
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, mockService := newRouter(t)

			if tt.wantCode != http.StatusBadRequest {
				mockService.EXPECT().Create(gomock.Any(), gomock.Any()).Return(dto.StaffResponse{}, tt.serviceErr)
			}

			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/v1/staff", strings.NewReader(tt.body)))

			assert.Equal(t, tt.wantCode, recorder.Code)
		})
	}
}

func TestHandler_GetStaff(t *testing.T) {
	router, mockService := newRouter(t)

	mockService.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup) (dto.GetStaffResponse, error) {
			require.Len(t, filter.Filters, 2)

			role, ok := filter.Filters[0].(gDto.Filter)
			require.True(t, ok)
			assert.Equal(t, model.FieldRole, role.Field)
			assert.Equal(t, "manager", role.Value)

			active, ok := filter.Filters[1].(gDto.Filter)
			require.True(t, ok)
			assert.Equal(t, model.FieldIsActive, active.Field)
			assert.Equal(t, false, active.Value)

			return dto.GetStaffResponse{}, nil
		})

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/v1/staff?role=manager&is_active=false", nil))

	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestHandler_UpdateStaff(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		serviceErr error
		wantCall   bool
		wantCode   int
	}{
		{name: "deactivate", body: `{"is_active":false}`, wantCall: true, wantCode: http.StatusOK},
		{name: "unknown staff", body: `{"is_active":false}`, serviceErr: failure.NotFound("staff"), wantCall: true, wantCode: http.StatusNotFound},
		{name: "bad role", body: `{"role":"owner"}`, wantCode: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, mockService := newRouter(t)

			if tt.wantCall {
				mockService.EXPECT().Update(gomock.Any(), staffID, gomock.Any()).DoAndReturn(func(_ context.Context, _ string, req dto.UpdateStaffRequest) error {
					require.NotNil(t, req.IsActive)
					assert.False(t, *req.IsActive)
					assert.False(t, req.PropertyID.Present())

					return tt.serviceErr
				})
			}

			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPatch, "/v1/staff/"+staffID, strings.NewReader(tt.body)))

			assert.Equal(t, tt.wantCode, recorder.Code)
		})
	}
}

func TestHandler_StaffMalformedID(t *testing.T) {
	tests := []struct {
		name   string
		method string
		body   string
	}{
		{name: "get", method: http.MethodGet},
		{name: "update", method: http.MethodPatch, body: `{"is_active":false}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, _ := newRouter(t)

			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, httptest.NewRequest(tt.method, "/v1/staff/staff-1", strings.NewReader(tt.body)))

			assert.Equal(t, http.StatusBadRequest, recorder.Code)
		})
	}
}
