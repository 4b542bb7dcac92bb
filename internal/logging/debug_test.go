package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	old := Output
	Output = buf
	t.Cleanup(func() { Output = old })
	return buf
}

func TestDebugEnabled(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"", false},
		{"0", false},
		{"false", false},
		{"FALSE", false},
		{"1", true},
		{"true", true},
		{"yes", true},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Setenv(EnvDebug, tt.value)
			assert.Equal(t, tt.want, DebugEnabled())
		})
	}
}

func TestDebugf(t *testing.T) {
	buf := captureOutput(t)

	t.Setenv(EnvDebug, "")
	Debugf("hidden %d", 1)
	assert.Empty(t, buf.String())

	t.Setenv(EnvDebug, "1")
	Debugf("persist failed: %s", "disk full")
	assert.Equal(t, "debug: persist failed: disk full\n", buf.String())

	buf.Reset()
	Debugf("already terminated\n")
	assert.Equal(t, "debug: already terminated\n", buf.String())
}

func TestDebugln(t *testing.T) {
	buf := captureOutput(t)

	t.Setenv(EnvDebug, "")
	Debugln("hidden")
	assert.Empty(t, buf.String())

	t.Setenv(EnvDebug, "1")
	Debugln("share", "fallback")
	assert.Equal(t, "debug: share fallback\n", buf.String())
}
