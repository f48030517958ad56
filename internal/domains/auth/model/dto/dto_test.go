package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"pms/infras/jwt"
	"pms/internal/domains/auth/model/dto"
	"pms/shared/validator"
)

func TestLoginResponse_FromTokenPair(t *testing.T) {
	tokenPair := &jwt.TokenPair{
		AccessToken:  "test-access-token",
		RefreshToken: "test-refresh-token",
		TokenType:    "Bearer",
		ExpiresIn:    900,
	}

	var response dto.LoginResponse
	response.FromTokenPair(tokenPair)

	assert.Equal(t, tokenPair.AccessToken, response.AccessToken)
	assert.Equal(t, tokenPair.RefreshToken, response.RefreshToken)
	assert.Equal(t, "Bearer", response.TokenType)
	assert.Equal(t, int64(900), response.ExpiresIn)
}

func TestRefreshTokenResponse_FromTokenPair(t *testing.T) {
	tokenPair := &jwt.TokenPair{
		AccessToken:  "new-access-token",
		RefreshToken: "new-refresh-token",
		TokenType:    "Bearer",
	}

	var response dto.RefreshTokenResponse
	response.FromTokenPair(tokenPair)

	assert.Equal(t, tokenPair.AccessToken, response.AccessToken)
	assert.Equal(t, tokenPair.RefreshToken, response.RefreshToken)
	assert.Equal(t, tokenPair.TokenType, response.TokenType)
}

func TestChangePasswordRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     dto.ChangePasswordRequest
		wantErr bool
	}{
		{name: "valid", req: dto.ChangePasswordRequest{CurrentPassword: "old-password", NewPassword: "new-password"}},
		{name: "too short", req: dto.ChangePasswordRequest{CurrentPassword: "old-password", NewPassword: "short"}, wantErr: true},
		{name: "unchanged", req: dto.ChangePasswordRequest{CurrentPassword: "same-password", NewPassword: "same-password"}, wantErr: true},
		{name: "missing current", req: dto.ChangePasswordRequest{NewPassword: "new-password"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(&tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
