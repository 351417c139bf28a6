package logger

import (
	"testing"

	"github.com/jackc/pgx/v5/tracelog"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/deppfellow/flats-api/internal/config"
)

func TestNewLoggerServiceWithoutLicense(t *testing.T) {
	svc := NewLoggerService(config.DefaultObservabilityConfig())
	assert.Nil(t, svc.GetApplication())

	// no agent, nothing to flush
	svc.Shutdown()
}

func TestNewLoggerUsesConfiguredLevel(t *testing.T) {
	cfg := config.DefaultObservabilityConfig()
	cfg.Logging.Level = "warn"

	log := NewLogger(cfg)
	assert.Equal(t, zerolog.WarnLevel, log.GetLevel())
}

func TestNewLoggerFallsBackOnUnknownLevel(t *testing.T) {
	cfg := config.DefaultObservabilityConfig()
	cfg.Logging.Level = "chatty"

	log := NewLogger(cfg)
	assert.Equal(t, zerolog.InfoLevel, log.GetLevel())
}

func TestWithTraceContextNilTransaction(t *testing.T) {
	base := zerolog.Nop()
	assert.Equal(t, base, WithTraceContext(base, nil))
}

func TestGetPgxTraceLogLevel(t *testing.T) {
	assert.Equal(t, int(tracelog.LogLevelDebug), GetPgxTraceLogLevel(zerolog.DebugLevel))
	assert.Equal(t, int(tracelog.LogLevelInfo), GetPgxTraceLogLevel(zerolog.InfoLevel))
	assert.Equal(t, int(tracelog.LogLevelError), GetPgxTraceLogLevel(zerolog.FatalLevel))
	assert.Equal(t, int(tracelog.LogLevelNone), GetPgxTraceLogLevel(zerolog.Disabled))
}
