package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("json format", func(t *testing.T) {
		var buf bytes.Buffer
		log := New(&buf, slog.LevelInfo, "json")
		log.Info("patient_created", "patient_id", 100)

		var line map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
		assert.Equal(t, "patient_created", line["msg"])
		assert.Equal(t, "patientdesk", line["app"])
		assert.Equal(t, float64(100), line["patient_id"])
	})

	t.Run("text format filters below level", func(t *testing.T) {
		var buf bytes.Buffer
		log := New(&buf, slog.LevelWarn, "text")
		log.Info("hidden")
		log.Warn("shown")

		assert.NotContains(t, buf.String(), "hidden")
		assert.Contains(t, buf.String(), "msg=shown")
	})
}
