package testutils

import (
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"gotest.tools/assert"
	is "gotest.tools/assert/cmp"
)

// Logs records every entry written to the *zap.Logger produced by NewLogs.
type Logs struct {
	Observed *observer.ObservedLogs
}

// NewLogs returns a Logs fixture and a logger that writes to it at every
// level.
func NewLogs() (*Logs, *zap.Logger) {
	core, observed := observer.New(zapcore.DebugLevel)
	return &Logs{Observed: observed}, zap.New(core)
}

// Messages returns the message of every entry logged so far, in order.
func (tl *Logs) Messages() []string {
	entries := tl.Observed.AllUntimed()
	msgs := make([]string, len(entries))
	for i, e := range entries {
		msgs[i] = e.Message
	}
	return msgs
}

// Levels returns the level of every entry logged so far, in order.
func (tl *Logs) Levels() []zapcore.Level {
	entries := tl.Observed.AllUntimed()
	levels := make([]zapcore.Level, len(entries))
	for i, e := range entries {
		levels[i] = e.Level
	}
	return levels
}

func (tl *Logs) AssertContains(t *testing.T, message string) {
	t.Helper()
	assert.Assert(t, is.Contains(tl.Logs(), message))
}

// Logs returns all messages logged so far, one per line.
func (tl *Logs) Logs() string {
	return strings.Join(tl.Messages(), "\n")
}

func (tl *Logs) Reset() {
	tl.Observed.TakeAll()
}
