package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"pms/config"
	"pms/infras/jwt"
	jwtMocks "pms/infras/jwt/mocks"
	otelMocks "pms/infras/otel/mocks"
	"pms/permissions"
	"pms/shared/constant"
	"pms/transport/http/middleware"
)

const (
	testAPIKey   = "internal-key"
	testProperty = "6b0f3c52-1d8e-4c1b-9a55-2f4d7e8c9a01"
)

func newAuthRouter(t *testing.T) (http.Handler, *jwtMocks.MockJWT) {
	ctrl := gomock.NewController(t)
	mockJWT := jwtMocks.NewMockJWT(ctrl)

	cfg := &config.Config{}
	cfg.App.APIKey = testAPIKey

	perms := &permissions.PermissionData{
		Endpoints: []permissions.Permission{
			{Path: "/v1/auth/login", Method: http.MethodPost, Skip: true},
			{Path: "/v1/bookings", Method: http.MethodGet, Permissions: []string{constant.RoleAdmin, constant.RoleFrontDesk}},
			{Path: "/v1/properties/{propertyID}/rooms", Method: http.MethodGet, Permissions: []string{constant.RoleFrontDesk}},
		},
	}

	authRole := middleware.NewAuthRoleMiddleware(mockJWT, otelMocks.NewOtel(), perms, cfg)

	ok := func(w http.ResponseWriter, r *http.Request) {
		staffID, _ := r.Context().Value(constant.ContextKeyUserID).(string)
		w.Header().Set("X-Staff", staffID)
		w.WriteHeader(http.StatusOK)
	}

	r := chi.NewRouter()
	r.Group(func(r chi.Router) {
		r.Use(authRole.APIKey)
		r.Use(authRole.Auth)
		r.Use(authRole.RBAC)

		r.Route("/v1", func(r chi.Router) {
			r.Post("/auth/login", ok)
			r.Route("/bookings", func(r chi.Router) {
				r.Get("/", ok)
			})
			r.Route("/properties/{propertyID}/rooms", func(r chi.Router) {
				r.Use(authRole.Property)
				r.Get("/", ok)
			})
		})
	})

	return r, mockJWT
}

func claimsFor(role, propertyID string) *jwt.Claims {
	return &jwt.Claims{StaffID: "staff-1", Email: "desk@hotel.example", Role: role, PropertyID: propertyID, TokenID: "tok-1"}
}

func TestAuthRole(t *testing.T) {
	tests := []struct {
		name      string
		method    string
		path      string
		header    string
		apiKey    string
		claims    *jwt.Claims
		claimsErr error
		wantCode  int
		wantStaff string
	}{
		{name: "login skips authentication", method: http.MethodPost, path: "/v1/auth/login", wantCode: http.StatusOK},
		{name: "missing authorization header", method: http.MethodGet, path: "/v1/bookings", wantCode: http.StatusUnauthorized},
		{name: "malformed authorization header", method: http.MethodGet, path: "/v1/bookings", header: "Token abc", wantCode: http.StatusUnauthorized},
		{
			name:      "expired token",
			method:    http.MethodGet,
			path:      "/v1/bookings",
			header:    "Bearer abc",
			claimsErr: jwt.ErrExpiredToken,
			wantCode:  http.StatusUnauthorized,
		},
		{
			name:     "claims without staff",
			method:   http.MethodGet,
			path:     "/v1/bookings",
			header:   "Bearer abc",
			claims:   &jwt.Claims{Role: constant.RoleAdmin},
			wantCode: http.StatusUnauthorized,
		},
		{
			name:      "allowed role",
			method:    http.MethodGet,
			path:      "/v1/bookings",
			header:    "Bearer abc",
			claims:    claimsFor(constant.RoleFrontDesk, testProperty),
			wantCode:  http.StatusOK,
			wantStaff: "staff-1",
		},
		{
			name:     "role not allowed",
			method:   http.MethodGet,
			path:     "/v1/bookings",
			header:   "Bearer abc",
			claims:   claimsFor(constant.RoleHousekeeping, testProperty),
			wantCode: http.StatusForbidden,
		},
		{name: "internal api key bypasses token", method: http.MethodGet, path: "/v1/bookings", apiKey: testAPIKey, wantCode: http.StatusOK},
		{name: "wrong api key", method: http.MethodGet, path: "/v1/bookings", apiKey: "guess", wantCode: http.StatusForbidden},
		{
			name:      "own property",
			method:    http.MethodGet,
			path:      "/v1/properties/" + testProperty + "/rooms",
			header:    "Bearer abc",
			claims:    claimsFor(constant.RoleFrontDesk, testProperty),
			wantCode:  http.StatusOK,
			wantStaff: "staff-1",
		},
		{
			name:     "other property",
			method:   http.MethodGet,
			path:     "/v1/properties/0d3e2a1f-7c55-4b7e-8f0e-3a9b1c2d4e5f/rooms",
			header:   "Bearer abc",
			claims:   claimsFor(constant.RoleFrontDesk, testProperty),
			wantCode: http.StatusForbidden,
		},
		{
			name:      "staff without property claim",
			method:    http.MethodGet,
			path:      "/v1/properties/0d3e2a1f-7c55-4b7e-8f0e-3a9b1c2d4e5f/rooms",
			header:    "Bearer abc",
			claims:    claimsFor(constant.RoleFrontDesk, ""),
			wantCode:  http.StatusOK,
			wantStaff: "staff-1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, mockJWT := newAuthRouter(t)

			if tt.claims != nil || tt.claimsErr != nil {
				mockJWT.EXPECT().ValidateToken(gomock.Any(), "abc", jwt.AccessToken).Return(tt.claims, tt.claimsErr)
			}

			req := httptest.NewRequestWithContext(context.Background(), tt.method, tt.path, nil)
			if tt.header != "" {
				req.Header.Set(constant.RequestHeaderAuthorization, tt.header)
			}

			if tt.apiKey != "" {
				req.Header.Set(constant.RequestHeaderAPIKey, tt.apiKey)
			}

			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, req)

			assert.Equal(t, tt.wantCode, recorder.Code)
			assert.Equal(t, tt.wantStaff, recorder.Header().Get("X-Staff"))
		})
	}
}
