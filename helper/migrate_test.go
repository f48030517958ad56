package helper_test

import (
	"net/url"
	"pms/config"
	"pms/helper"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrationDSN(t *testing.T) {
	cfg := &config.Config{}
	cfg.DB.Postgres.Prefix = "test_"
	cfg.DB.Postgres.MigrationTable = "schema_migrations"
	cfg.DB.Postgres.Write.Username = "pms"
	cfg.DB.Postgres.Write.Password = "p@ss/word"
	cfg.DB.Postgres.Write.Host = "db"
	cfg.DB.Postgres.Write.Port = "5432"
	cfg.DB.Postgres.Write.Name = "hotel"
	cfg.DB.Postgres.Write.SSLMode = "disable"

	dsn, err := url.Parse(helper.MigrationDSN(cfg))
	require.NoError(t, err)

	password, _ := dsn.User.Password()

	assert.Equal(t, "postgres", dsn.Scheme)
	assert.Equal(t, "p@ss/word", password)
	assert.Equal(t, "db:5432", dsn.Host)
	assert.Equal(t, "/test_hotel", dsn.Path)
	assert.Equal(t, "disable", dsn.Query().Get("sslmode"))
	assert.Equal(t, "schema_migrations", dsn.Query().Get("x-migrations-table"))
}

func TestRunner_RejectsBadCommands(t *testing.T) {
	cfg := &config.Config{}

	tests := []struct {
		name    string
		command string
		args    []string
		wantErr error
	}{
		{name: "unknown command", command: "sideways", wantErr: helper.ErrUnknownCommand},
		{name: "force without version", command: helper.CommandForce, wantErr: helper.ErrMissingVersion},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, helper.Runner(cfg, tt.command, tt.args...), tt.wantErr)
		})
	}

	assert.ErrorContains(t, helper.Runner(cfg, helper.CommandForce, "three"), "invalid version")
}
