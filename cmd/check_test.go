//go:build small_tests || all_tests

package cmd

import (
	"testing"

	"github.com/mbland/emailcheck/email"
	"github.com/mbland/emailcheck/testutils"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gotest.tools/assert"
)

func TestCheckAddress(t *testing.T) {
	setup := func() (*testutils.Logs, func(string) error) {
		logs, logger := testutils.NewLogs()
		return logs, func(address string) error {
			return checkAddress(logger, address)
		}
	}

	t.Run("GitHubVendor", func(t *testing.T) {
		logs, check := setup()

		assert.NilError(t, check("alice@github.com"))

		expected := []string{ValidMessage, email.VendorMessage}
		assert.DeepEqual(t, expected, logs.Messages())
	})

	t.Run("3MCustomer", func(t *testing.T) {
		logs, check := setup()

		assert.NilError(t, check("bob@commmm.com"))

		expected := []string{ValidMessage, email.CustomerMessage}
		assert.DeepEqual(t, expected, logs.Messages())
	})

	t.Run("PersonalGreeting", func(t *testing.T) {
		logs, check := setup()

		assert.NilError(t, check("carol@example.com"))

		assert.DeepEqual(t, []string{ValidMessage, "Hello carol!"}, logs.Messages())
		entries := logs.Observed.FilterField(zap.String("name", "carol"))
		assert.Equal(t, 1, entries.Len())
	})

	t.Run("InvalidAddressStillGetsRemark", func(t *testing.T) {
		logs, check := setup()

		assert.NilError(t, check("dave@example.info"))

		expected := []string{InvalidMessage, "Hello dave!"}
		assert.DeepEqual(t, expected, logs.Messages())
	})

	t.Run("LogsAtInfoLevel", func(t *testing.T) {
		logs, check := setup()

		assert.NilError(t, check("x@y.co"))

		expected := []zapcore.Level{zapcore.InfoLevel, zapcore.InfoLevel}
		assert.DeepEqual(t, expected, logs.Levels())
	})

	t.Run("FailsAfterLoggingInvalidIfNoAt", func(t *testing.T) {
		logs, check := setup()

		err := check("not-an-email")

		assert.DeepEqual(t, []string{InvalidMessage}, logs.Messages())
		assert.ErrorContains(t, err, "failed to derive name: ")
		assert.Assert(t, testutils.ErrorIs(err, email.ErrMissingAt))
	})

	t.Run("SameOutcomeOnEveryRun", func(t *testing.T) {
		logs, check := setup()

		assert.NilError(t, check("carol@example.com"))
		first := logs.Messages()
		logs.Reset()
		assert.NilError(t, check("carol@example.com"))

		assert.DeepEqual(t, first, logs.Messages())
	})
}
