package logger

import (
	"bytes"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
)

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prevWriter, prevFlags := log.Writer(), log.Flags()
	log.SetOutput(&buf)
	log.SetFlags(0)
	t.Cleanup(func() {
		log.SetOutput(prevWriter)
		log.SetFlags(prevFlags)
	})
	return &buf
}

func TestFormatFieldsSortedKeys(t *testing.T) {
	out := formatFields(Fields{"b": 2, "a": "x", "c": 1.5, "d": nil})
	assert.Equal(t, "{a=x, b=2, c=1.50, d=null}", out)
}

func TestFormatFieldsEmpty(t *testing.T) {
	assert.Equal(t, "", formatFields(nil))
}

func TestMergeDoesNotMutateReceiver(t *testing.T) {
	base := Fields{"request_id": "abc"}
	merged := base.Merge(Fields{"style_id": "haiku"})

	assert.Len(t, base, 1)
	assert.Equal(t, "haiku", merged["style_id"])
	assert.Equal(t, "abc", merged["request_id"])
}

func TestInfoWritesLevelPrefix(t *testing.T) {
	buf := captureLog(t)

	Info("Starting poem generation", Fields{"style_id": "haiku"})
	Warn("Failed to parse request body", nil)

	assert.Contains(t, buf.String(), "[INFO] Starting poem generation {style_id=haiku}")
	assert.Contains(t, buf.String(), "[WARN] Failed to parse request body")
}
