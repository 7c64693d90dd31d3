package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewLevels(t *testing.T) {
	tests := []struct {
		level      string
		debugShown bool
		infoShown  bool
	}{
		{"debug", true, true},
		{"info", false, true},
		{"warn", false, false},
		{"error", false, false},
		{"bogus", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			var buf bytes.Buffer
			log := New(tt.level, &buf)
			log.Debug("debug-line")
			log.Info("info-line")

			assert.Equal(t, tt.debugShown, bytes.Contains(buf.Bytes(), []byte("debug-line")))
			assert.Equal(t, tt.infoShown, bytes.Contains(buf.Bytes(), []byte("info-line")))
		})
	}
}
