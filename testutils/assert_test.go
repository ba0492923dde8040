//go:build small_tests || all_tests

package testutils

import (
	"errors"
	"fmt"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gotest.tools/assert"
)

func TestErrorIs(t *testing.T) {
	target := errors.New("target")

	t.Run("Succeeds", func(t *testing.T) {
		err := fmt.Errorf("wrapped: %w", target)

		assert.Assert(t, ErrorIs(err, target)().Success())
	})

	t.Run("Fails", func(t *testing.T) {
		assert.Assert(t, !ErrorIs(errors.New("other"), target)().Success())
	})
}

func TestContainsInOrder(t *testing.T) {
	const s = "Email is valid!\nHello carol!\n"

	t.Run("Succeeds", func(t *testing.T) {
		assert.Assert(t, ContainsInOrder(s, "valid", "Hello", "carol"))
	})

	t.Run("FailsIfOutOfOrder", func(t *testing.T) {
		result := ContainsInOrder(s, "Hello", "valid")()

		assert.Assert(t, !result.Success())
	})

	t.Run("FailsIfMissing", func(t *testing.T) {
		assert.Assert(t, !ContainsInOrder(s, "GitHub")().Success())
	})
}

func TestLogs(t *testing.T) {
	logs, logger := NewLogs()

	logger.Debug("first")
	logger.Error("second", zap.String("key", "value"))

	assert.DeepEqual(t, []string{"first", "second"}, logs.Messages())
	expected := []zapcore.Level{zapcore.DebugLevel, zapcore.ErrorLevel}
	assert.DeepEqual(t, expected, logs.Levels())
	logs.AssertContains(t, "first\nsecond")

	logs.Reset()
	assert.Equal(t, "", logs.Logs())
}
