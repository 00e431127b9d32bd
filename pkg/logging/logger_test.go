package logging_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Diavel78/product-trainer/pkg/logging"
)

func TestNewWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(&buf)

	logger.Info().Str("feed", "inventory").Int("records", 3).Msg("decoded")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "inventory", entry["feed"])
	assert.Equal(t, float64(3), entry["records"])
	assert.Equal(t, "decoded", entry["message"])
}

func TestSetDefault(t *testing.T) {
	original := *logging.Default()
	defer logging.SetDefault(original)

	var buf bytes.Buffer
	logging.SetDefault(logging.New(&buf))

	logging.Warn().Str("stock", "P12345").Msg("no price")

	assert.Contains(t, buf.String(), "P12345")
	assert.Contains(t, buf.String(), "no price")
}

func TestParseLevelFallback(t *testing.T) {
	tests := []struct {
		name  string
		level string
	}{
		{"empty", ""},
		{"garbage", "loud"},
		{"warn", "warn"},
		{"disabled", "off"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := logging.DefaultConfig()
			cfg.Level = tt.level
			cfg.Output = "discard"
			// Must not panic regardless of input.
			logger := logging.NewLoggerFromConfig(cfg)
			logger.Info().Msg("ok")
		})
	}
}
