package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/your-org/shopfront/internal/config"
)

func testConfig(level, format string) *config.Config {
	return &config.Config{Logging: config.LoggingConfig{Level: level, Format: format}}
}

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOutput(testConfig("warn", "json"), &buf)

	assert.Equal(t, logrus.WarnLevel, log.GetLevel())

	log.Info("dropped")
	assert.Zero(t, buf.Len())

	log.WithField("order_id", "ORD-1").Warn("kept")
	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "kept", entry["msg"])
	assert.Equal(t, "ORD-1", entry["order_id"])
}

func TestNewText(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOutput(testConfig("debug", "text"), &buf)

	log.Debug("cart updated")
	assert.Contains(t, buf.String(), `msg="cart updated"`)
	assert.IsType(t, &logrus.TextFormatter{}, log.Formatter)
}

func TestNewInvalidLevelFallsBackToInfo(t *testing.T) {
	log := NewWithOutput(testConfig("verbose", "json"), &bytes.Buffer{})
	assert.Equal(t, logrus.InfoLevel, log.GetLevel())
}
