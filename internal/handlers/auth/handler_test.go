package auth_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	otelMocks "pms/infras/otel/mocks"
	"pms/internal/domains/auth/model/dto"
	serviceMocks "pms/internal/domains/auth/service/mocks"
	"pms/internal/handlers/auth"
	"pms/shared/constant"
	"pms/shared/failure"
)

func newRouter(t *testing.T) (http.Handler, *serviceMocks.MockAuth) {
	ctrl := gomock.NewController(t)
	mockService := serviceMocks.NewMockAuth(ctrl)

	handler := auth.New(mockService, otelMocks.NewOtel())

	r := chi.NewRouter()
	r.Route("/v1", handler.Router)

	return r, mockService
}

func TestHandler_Login(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		serviceErr error
		wantCode   int
	}{
		{name: "ok", body: `{"email":"desk@hotel.test","password":"secret-pass"}`, wantCode: http.StatusOK},
		{name: "wrong credentials", body: `{"email":"desk@hotel.test","password":"nope"}`, serviceErr: failure.Unauthorized("invalid email or password"), wantCode: http.StatusUnauthorized},
		{name: "inactive account", body: `{"email":"desk@hotel.test","password":"secret-pass"}`, serviceErr: failure.Forbidden("account is inactive"), wantCode: http.StatusForbidden},
		{name: "malformed email", body: `{"email":"desk","password":"secret-pass"}`, wantCode: http.StatusBadRequest},
		{name: "missing password", body: `{"email":"desk@hotel.test"}`, wantCode: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, mockService := newRouter(t)

			if tt.wantCode != http.StatusBadRequest {
				mockService.EXPECT().Login(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, req dto.LoginRequest) (dto.LoginResponse, error) {
					assert.Equal(t, "desk@hotel.test", req.Email)

					return dto.LoginResponse{AccessToken: "access", TokenType: "Bearer"}, tt.serviceErr
				})
			}

			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/v1/auth/login", strings.NewReader(tt.body)))

			assert.Equal(t, tt.wantCode, recorder.Code)

			if tt.wantCode == http.StatusOK {
				var body struct {
					Data dto.LoginResponse `json:"data"`
				}
				require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
				assert.Equal(t, "access", body.Data.AccessToken)
			}
		})
	}
}

func TestHandler_RefreshToken(t *testing.T) {
	router, mockService := newRouter(t)

	mockService.EXPECT().RefreshToken(gomock.Any(), dto.RefreshTokenRequest{RefreshToken: "expired"}).
		Return(dto.RefreshTokenResponse{}, failure.Unauthorized("invalid refresh token"))

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/v1/auth/refresh-token", strings.NewReader(`{"refresh_token":"expired"}`)))

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestHandler_ChangePassword(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantCall bool
		wantCode int
	}{
		{name: "changed", body: `{"current_password":"old-password","new_password":"new-password"}`, wantCall: true, wantCode: http.StatusOK},
		{name: "same password", body: `{"current_password":"old-password","new_password":"old-password"}`, wantCode: http.StatusBadRequest},
		{name: "too short", body: `{"current_password":"old-password","new_password":"short"}`, wantCode: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, mockService := newRouter(t)

			if tt.wantCall {
				mockService.EXPECT().ChangePassword(gomock.Any(), gomock.Any(), "staff-1").Return(nil)
			}

			req := httptest.NewRequest(http.MethodPost, "/v1/auth/change-password", strings.NewReader(tt.body))
			req = req.WithContext(context.WithValue(req.Context(), constant.ContextKeyUserID, "staff-1"))

			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, req)

			assert.Equal(t, tt.wantCode, recorder.Code)
		})
	}
}
