package password_test

import (
	"errors"
	"pms/shared/password"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHash(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{name: "staff password", input: "front-desk-2024"},
		{name: "unicode", input: "réception-日本"},
		{name: "exactly the bcrypt limit", input: strings.Repeat("a", password.MaxLength)},
		{name: "empty", input: "", wantErr: password.ErrEmptyPassword},
		{name: "over the bcrypt limit", input: strings.Repeat("a", password.MaxLength+1), wantErr: password.ErrTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := password.Hash(tt.input)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, hash)

				return
			}

			require.NoError(t, err)
			assert.NotEqual(t, tt.input, hash)
			assert.NoError(t, password.Verify(tt.input, hash))
		})
	}
}

func TestHash_Salted(t *testing.T) {
	first, err := password.Hash("same-password")
	require.NoError(t, err)

	second, err := password.Hash("same-password")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestVerify(t *testing.T) {
	hash, err := password.Hash("correct-horse")
	require.NoError(t, err)

	tests := []struct {
		name     string
		password string
		hash     string
		wantErr  error
	}{
		{name: "match", password: "correct-horse", hash: hash},
		{name: "wrong password", password: "wrong-horse", hash: hash, wantErr: password.ErrInvalidPassword},
		{name: "case sensitive", password: "Correct-Horse", hash: hash, wantErr: password.ErrInvalidPassword},
		{name: "empty password", password: "", hash: hash, wantErr: password.ErrInvalidPassword},
		{name: "missing hash", password: "correct-horse", hash: "", wantErr: password.ErrInvalidPassword},
		{name: "truncated hash", password: "correct-horse", hash: "$2a$10$abc", wantErr: password.ErrInvalidPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := password.Verify(tt.password, tt.hash)

			if tt.wantErr == nil {
				assert.NoError(t, err)

				return
			}

			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestNeedsRehash(t *testing.T) {
	current, err := password.Hash("night-audit")
	require.NoError(t, err)
	assert.False(t, password.NeedsRehash(current))

	cheap, err := bcrypt.GenerateFromPassword([]byte("night-audit"), bcrypt.MinCost)
	require.NoError(t, err)
	assert.True(t, password.NeedsRehash(string(cheap)))

	assert.True(t, password.NeedsRehash("not-a-hash"))
}
