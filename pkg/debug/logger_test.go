package debug

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisabledByDefault(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "test", FlagLevel)
	l.Error("should not appear")
	assert.Zero(t, buf.Len())
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "test", FlagLevel)
	l.SetEnabled(true)
	l.SetLevel(LogLevelWarn)

	l.Debug("debug message")
	l.Info("info message")
	assert.Zero(t, buf.Len())

	l.Warn("warn message")
	l.Error("error message")
	out := buf.String()
	assert.Contains(t, out, "[WARN] warn message")
	assert.Contains(t, out, "[ERROR] error message")
}

func TestPrefixAndFormatting(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "surface", FlagLevel|FlagPrefix)
	l.SetEnabled(true)
	l.SetLevel(LogLevelDebug)

	l.Info("volume=%0.2f", 0.5)
	line := buf.String()
	assert.Equal(t, "[INFO] [surface] volume=0.50\n", line)
	assert.True(t, strings.HasSuffix(line, "\n"))
}

func TestOffLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "", 0)
	l.SetEnabled(true)
	l.SetLevel(LogLevelOff)
	l.Error("suppressed")
	assert.Zero(t, buf.Len())
}
