package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"pms/config"
	"pms/shared/logger"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func restore(t *testing.T) {
	originalLogger := log.Logger
	originalLevel := zerolog.GlobalLevel()

	t.Cleanup(func() {
		log.Logger = originalLogger
		zerolog.SetGlobalLevel(originalLevel)
	})
}

func TestInitLogger_JSON(t *testing.T) {
	restore(t)

	cfg := &config.Config{}
	cfg.Server.Env = "production"
	cfg.Server.LogLevel = "info"
	cfg.App.Name = "pms"

	var buf bytes.Buffer
	logger.InitLoggerTo(cfg, &buf)

	log.Info().Str("booking_id", "b-1").Msg("booking created")
	log.Debug().Msg("hidden")

	var line map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &line))

	assert.Equal(t, "pms", line["service"])
	assert.Equal(t, "b-1", line["booking_id"])
	assert.Equal(t, "booking created", line["message"])
	assert.NotContains(t, buf.String(), "hidden")
}

func TestInitLogger_Console(t *testing.T) {
	restore(t)

	cfg := &config.Config{}
	cfg.Server.Env = "development"
	cfg.Server.LogLevel = "debug"

	var buf bytes.Buffer
	logger.InitLoggerTo(cfg, &buf)

	buf.Reset()
	log.Debug().Msg("room generated")

	assert.Contains(t, buf.String(), "room generated")
	assert.False(t, json.Valid(bytes.TrimSpace(buf.Bytes())))
}

func TestErrorWithStack(t *testing.T) {
	restore(t)

	var buf bytes.Buffer
	log.Logger = zerolog.New(&buf)

	logger.ErrorWithStack(errors.New("connection reset"))

	assert.Contains(t, buf.String(), "connection reset")
	assert.Contains(t, buf.String(), "logger_test.go")
}

func TestSetLogLevel(t *testing.T) {
	tests := []struct {
		logLevel string
		expected zerolog.Level
	}{
		{logLevel: "trace", expected: zerolog.TraceLevel},
		{logLevel: "debug", expected: zerolog.DebugLevel},
		{logLevel: "warn", expected: zerolog.WarnLevel},
		{logLevel: "error", expected: zerolog.ErrorLevel},
		{logLevel: "", expected: zerolog.InfoLevel},
		{logLevel: "loud", expected: zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.logLevel, func(t *testing.T) {
			restore(t)

			cfg := &config.Config{}
			cfg.Server.LogLevel = tt.logLevel

			logger.SetLogLevel(cfg)

			assert.Equal(t, tt.expected, zerolog.GlobalLevel())
		})
	}
}
