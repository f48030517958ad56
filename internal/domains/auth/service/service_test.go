package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"pms/config"
	"pms/infras/jwt"
	jwtMocks "pms/infras/jwt/mocks"
	"pms/infras/otel/mocks"
	"pms/internal/domains/auth/model/dto"
	"pms/internal/domains/auth/service"
	staffMocks "pms/internal/domains/staff/mocks"
	staffModel "pms/internal/domains/staff/model"
	"pms/shared/constant"
	"pms/shared/failure"
	gModel "pms/shared/model"
	"pms/shared/password"
	"pms/shared/timezone"
)

const propertyID = "8f6a2b5e-4f0e-4c38-9a38-6f3c1c2d9e11"

func validStaff(t *testing.T) staffModel.Staff {
	t.Helper()

	hashed, err := password.Hash("password")
	require.NoError(t, err)

	property := propertyID

	return staffModel.Staff{
		ID:         "staff-id-123",
		PropertyID: &property,
		Email:      "desk@example.com",
		Password:   hashed,
		FullName:   "Front Desk",
		Role:       constant.RoleFrontDesk,
		IsActive:   true,
		Metadata: gModel.Metadata{
			CreatedOn: timezone.Now(),
			UpdatedOn: timezone.Now(),
			CreatedBy: "system",
			UpdatedBy: "system",
		},
	}
}

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStaffRepo := staffMocks.NewMockStaff(ctrl)
	mockJWT := jwtMocks.NewMockJWT(ctrl)

	svc := service.New(mockStaffRepo, &config.Config{}, mocks.NewOtel(), mockJWT)

	staff := validStaff(t)
	subject := jwt.Subject{StaffID: staff.ID, Email: staff.Email, Role: staff.Role, PropertyID: propertyID}
	tokenPair := &jwt.TokenPair{AccessToken: "access-token", RefreshToken: "refresh-token", TokenType: "Bearer"}

	tests := []struct {
		name      string
		req       dto.LoginRequest
		setupMock func()
		wantCode  int
		wantErr   bool
	}{
		{
			name: "successful login",
			req:  dto.LoginRequest{Email: "Desk@Example.com", Password: "password"},
			setupMock: func() {
				mockStaffRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(staff, nil)
				mockJWT.EXPECT().GenerateTokenPair(gomock.Any(), subject).Return(tokenPair, nil)
				mockStaffRepo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "unknown email",
			req:  dto.LoginRequest{Email: "nobody@example.com", Password: "password"},
			setupMock: func() {
				mockStaffRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(staffModel.Staff{}, nil)
			},
			wantCode: http.StatusUnauthorized,
			wantErr:  true,
		},
		{
			name: "lookup failure",
			req:  dto.LoginRequest{Email: "desk@example.com", Password: "password"},
			setupMock: func() {
				mockStaffRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(staffModel.Staff{}, errors.New("connection refused"))
			},
			wantCode: http.StatusInternalServerError,
			wantErr:  true,
		},
		{
			name: "wrong password",
			req:  dto.LoginRequest{Email: "desk@example.com", Password: "wrongpassword"},
			setupMock: func() {
				mockStaffRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(staff, nil)
			},
			wantCode: http.StatusUnauthorized,
			wantErr:  true,
		},
		{
			name: "deactivated account",
			req:  dto.LoginRequest{Email: "desk@example.com", Password: "password"},
			setupMock: func() {
				inactive := staff
				inactive.IsActive = false

				mockStaffRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(inactive, nil)
			},
			wantCode: http.StatusForbidden,
			wantErr:  true,
		},
		{
			name: "token generation error",
			req:  dto.LoginRequest{Email: "desk@example.com", Password: "password"},
			setupMock: func() {
				mockStaffRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(staff, nil)
				mockJWT.EXPECT().GenerateTokenPair(gomock.Any(), subject).Return(nil, errors.New("token generation failed"))
			},
			wantCode: http.StatusInternalServerError,
			wantErr:  true,
		},
		{
			// last login bookkeeping does not block the session
			name: "update last login error",
			req:  dto.LoginRequest{Email: "desk@example.com", Password: "password"},
			setupMock: func() {
				mockStaffRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(staff, nil)
				mockJWT.EXPECT().GenerateTokenPair(gomock.Any(), subject).Return(tokenPair, nil)
				mockStaffRepo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("update error"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			result, err := svc.Login(context.Background(), tt.req)

			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "access-token", result.AccessToken)
			assert.Equal(t, "refresh-token", result.RefreshToken)
			assert.Equal(t, staff.ID, result.Staff.ID)
		})
	}
}

func TestAuthService_Login_GlobalAdmin(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockStaffRepo := staffMocks.NewMockStaff(ctrl)
	mockJWT := jwtMocks.NewMockJWT(ctrl)

	svc := service.New(mockStaffRepo, &config.Config{}, mocks.NewOtel(), mockJWT)

	admin := validStaff(t)
	admin.Role = constant.RoleAdmin
	admin.PropertyID = nil

	mockStaffRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(admin, nil)
	mockJWT.EXPECT().GenerateTokenPair(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, subject jwt.Subject) (*jwt.TokenPair, error) {
		assert.Empty(t, subject.PropertyID)
		assert.Equal(t, constant.RoleAdmin, subject.Role)

		return &jwt.TokenPair{AccessToken: "a", RefreshToken: "r"}, nil
	})
	mockStaffRepo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	res, err := svc.Login(context.Background(), dto.LoginRequest{Email: admin.Email, Password: "password"})
	require.NoError(t, err)
	assert.Nil(t, res.Staff.PropertyID)
	assert.NotNil(t, res.Staff.LastLogin)
}

func TestAuthService_Login_RehashesLegacyCost(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockStaffRepo := staffMocks.NewMockStaff(ctrl)
	mockJWT := jwtMocks.NewMockJWT(ctrl)

	svc := service.New(mockStaffRepo, &config.Config{}, mocks.NewOtel(), mockJWT)

	legacy, err := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.MinCost)
	require.NoError(t, err)

	staff := validStaff(t)
	staff.Password = string(legacy)

	mockStaffRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(staff, nil)
	mockJWT.EXPECT().GenerateTokenPair(gomock.Any(), gomock.Any()).Return(&jwt.TokenPair{AccessToken: "a", RefreshToken: "r"}, nil)
	mockStaffRepo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
		rehashed, ok := fields[staffModel.FieldPassword].(string)
		require.True(t, ok)
		assert.False(t, password.NeedsRehash(rehashed))
		assert.NoError(t, password.Verify("password", rehashed))

		return nil
	})

	_, err = svc.Login(context.Background(), dto.LoginRequest{Email: staff.Email, Password: "password"})
	require.NoError(t, err)
}

func TestAuthService_RefreshToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStaffRepo := staffMocks.NewMockStaff(ctrl)
	mockJWT := jwtMocks.NewMockJWT(ctrl)

	svc := service.New(mockStaffRepo, &config.Config{}, mocks.NewOtel(), mockJWT)

	tests := []struct {
		name      string
		req       dto.RefreshTokenRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful token refresh",
			req:  dto.RefreshTokenRequest{RefreshToken: "valid-refresh-token"},
			setupMock: func() {
				mockJWT.EXPECT().
					RefreshTokens(gomock.Any(), "valid-refresh-token").
					Return(&jwt.TokenPair{AccessToken: "new-access-token", RefreshToken: "new-refresh-token"}, nil)
			},
		},
		{
			name: "invalid refresh token",
			req:  dto.RefreshTokenRequest{RefreshToken: "invalid-refresh-token"},
			setupMock: func() {
				mockJWT.EXPECT().
					RefreshTokens(gomock.Any(), "invalid-refresh-token").
					Return(nil, errors.New("invalid token"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			result, err := svc.RefreshToken(context.Background(), tt.req)

			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, http.StatusUnauthorized, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "new-access-token", result.AccessToken)
			assert.Equal(t, "new-refresh-token", result.RefreshToken)
		})
	}
}

func TestAuthService_ChangePassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStaffRepo := staffMocks.NewMockStaff(ctrl)
	mockJWT := jwtMocks.NewMockJWT(ctrl)

	svc := service.New(mockStaffRepo, &config.Config{}, mocks.NewOtel(), mockJWT)

	staff := validStaff(t)

	tests := []struct {
		name      string
		req       dto.ChangePasswordRequest
		staffID   string
		setupMock func()
		wantCode  int
		wantErr   bool
	}{
		{
			name:    "successful password change",
			req:     dto.ChangePasswordRequest{CurrentPassword: "password", NewPassword: "newpassword123"},
			staffID: staff.ID,
			setupMock: func() {
				mockStaffRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(staff, nil)
				mockStaffRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
						hashed, ok := fields[staffModel.FieldPassword].(string)
						assert.True(t, ok)
						assert.NoError(t, password.Verify("newpassword123", hashed))
						assert.Equal(t, staff.ID, fields[constant.FieldUpdatedBy])

						return nil
					})
			},
		},
		{
			name:    "lookup failure",
			req:     dto.ChangePasswordRequest{CurrentPassword: "password", NewPassword: "newpassword123"},
			staffID: "staff-id-404",
			setupMock: func() {
				mockStaffRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(staffModel.Staff{}, errors.New("connection refused"))
			},
			wantCode: http.StatusInternalServerError,
			wantErr:  true,
		},
		{
			name:    "staff member not found",
			req:     dto.ChangePasswordRequest{CurrentPassword: "password", NewPassword: "newpassword123"},
			staffID: "staff-id-404",
			setupMock: func() {
				mockStaffRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(staffModel.Staff{}, nil)
			},
			wantCode: http.StatusNotFound,
			wantErr:  true,
		},
		{
			name:    "wrong current password",
			req:     dto.ChangePasswordRequest{CurrentPassword: "wrongpassword", NewPassword: "newpassword123"},
			staffID: staff.ID,
			setupMock: func() {
				mockStaffRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(staff, nil)
			},
			wantCode: http.StatusBadRequest,
			wantErr:  true,
		},
		{
			name:    "update password error",
			req:     dto.ChangePasswordRequest{CurrentPassword: "password", NewPassword: "newpassword123"},
			staffID: staff.ID,
			setupMock: func() {
				mockStaffRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(staff, nil)
				mockStaffRepo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("update error"))
			},
			wantCode: http.StatusInternalServerError,
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.ChangePassword(context.Background(), tt.req, tt.staffID)

			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
		})
	}
}
