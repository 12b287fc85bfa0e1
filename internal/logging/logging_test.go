package logging_test

import (
	"bytes"
	"errors"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"

	"poissolve/internal/logging"
)

// newCaptured returns a Logger writing into buf without timestamps.
func newCaptured(buf *bytes.Buffer) *logging.Logger {
	l := logging.New()
	l.SetOutput(log.New(buf, "", 0))

	return l
}

// TestLogger_LevelFiltering verifies messages below the minimum level are
// dropped.
func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := newCaptured(&buf)

	l.Debug("progress", "iter", 1)
	assert.Empty(t, buf.String(), "debug is below the default info level")

	l.SetLevel(logging.LevelDebug)
	l.Debug("progress", "iter", 1)
	assert.Equal(t, "DEBUG: progress iter=1\n", buf.String())
}

// TestLogger_KeyValueFormatting verifies the key=value rendering, including
// quoting of strings with whitespace and of errors.
func TestLogger_KeyValueFormatting(t *testing.T) {
	var buf bytes.Buffer
	l := newCaptured(&buf)

	l.Info("solve finished", "status", "iteration limit", "residual", 2.5e-7,
		"err", errors.New("boom"))

	assert.Equal(t,
		"INFO: solve finished status=\"iteration limit\" residual=2.5e-07 err=\"boom\"\n",
		buf.String())
}

// TestLogger_OddKeyVals verifies a dangling key is ignored rather than
// panicking.
func TestLogger_OddKeyVals(t *testing.T) {
	var buf bytes.Buffer
	l := newCaptured(&buf)

	l.Warn("lonely", "key")
	assert.Equal(t, "WARN: lonely\n", buf.String())
}
