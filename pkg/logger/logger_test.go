package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	gormlogger "gorm.io/gorm/logger"
)

func TestNewLevels(t *testing.T) {
	dev, err := New(Config{Development: true})
	require.NoError(t, err)
	assert.True(t, dev.Core().Enabled(zapcore.DebugLevel))
	assert.Equal(t, gormlogger.Info, GormLevel(dev))

	prod, err := New(Config{})
	require.NoError(t, err)
	assert.False(t, prod.Core().Enabled(zapcore.DebugLevel))
	assert.Equal(t, gormlogger.Warn, GormLevel(prod))

	quiet, err := New(Config{Level: "error", Encoding: "console"})
	require.NoError(t, err)
	assert.Equal(t, gormlogger.Error, GormLevel(quiet))

	_, err = New(Config{Level: "loud"})
	assert.Error(t, err)
}
