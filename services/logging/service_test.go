package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNewService(t *testing.T) {
	service, err := NewService(Config{Level: Info, Format: "json"})
	require.NoError(t, err)
	assert.NotNil(t, service.Logger())
}

func TestNewService_ConsoleFormat(t *testing.T) {
	service, err := NewService(Config{Level: Debug, Format: "console"})
	require.NoError(t, err)
	assert.NotNil(t, service.Logger())
}

func TestNilServiceIsSafe(t *testing.T) {
	var service *Service

	assert.NotPanics(t, func() {
		service.Debug("debug")
		service.Info("info")
		service.Warn("warn")
		service.Error("error")
		service.Infof("info %d", 1)
		service.Errorf("error %d", 1)
		_ = service.Sync()
	})
	assert.Nil(t, service.Logger())
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input LogLevel
		want  zapcore.Level
	}{
		{Debug, zapcore.DebugLevel},
		{Info, zapcore.InfoLevel},
		{Warn, zapcore.WarnLevel},
		{Error, zapcore.ErrorLevel},
		{"bogus", zapcore.InfoLevel},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, parseLogLevel(tt.input))
	}
}
