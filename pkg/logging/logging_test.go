package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
)

func TestInitLogger(t *testing.T) {
	prev := GetLogger()
	defer SetLogger(prev)

	var buf bytes.Buffer
	InitLogger("info", "json", zapcore.AddSync(&buf))

	l := GetLogger().With("component", "test")
	l.Debug("hidden")
	l.Info("machine configured", "position", "MCK")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"msg":"machine configured"`)
	assert.Contains(t, out, `"component":"test"`)
	assert.Contains(t, out, `"position":"MCK"`)
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zapcore.Level
		ok   bool
	}{
		{in: "debug", want: zapcore.DebugLevel, ok: true},
		{in: "WARN", want: zapcore.WarnLevel, ok: true},
		{in: "", want: zapcore.InfoLevel, ok: false},
		{in: "loud", want: zapcore.InfoLevel, ok: false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := parseLevel(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewNop(t *testing.T) {
	l := NewNop()
	assert.NotPanics(t, func() {
		l.With("k", "v").Error("discarded")
	})
}
