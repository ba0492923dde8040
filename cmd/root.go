// Copyright © 2023 Mike Bland <mbland@acm.org>.
// See LICENSE.txt for details.

package cmd

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/mbland/emailcheck/config"
	"github.com/mbland/emailcheck/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const emailcheckDesc = "Validates an email address and says something nice " +
	"about its owner"
const emailcheckDescLong = emailcheckDesc + "\n\n" +
	`Checks the address against a fixed pattern, logs whether it is valid, then
logs a remark based on its domain:

  @github.com addresses are from an awesome vendor
  addresses ending in mmm.com are from an awesome customer
  everyone else gets a personal greeting

To validate an address:
  emailcheck --email <ADDRESS>

Logging is configured with the --log-level, --log-format and --no-color
flags, or with the EMAILCHECK_LOG_LEVEL, EMAILCHECK_LOG_FORMAT and
EMAILCHECK_NO_COLOR environment variables, which may also be set in a .env
file in the current directory.
`

var rootCmd = newRootCmd(checkAddress)

func newRootCmd(check CheckFunc) (cmd *cobra.Command) {
	cmd = &cobra.Command{
		Use:     "emailcheck",
		Version: "v0.1.0",
		Short:   emailcheckDesc,
		Long:    emailcheckDescLong,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, check)
		},
	}
	registerEmail(cmd)
	config.RegisterFlags(cmd.Flags())
	return
}

func Execute() error {
	return rootCmd.Execute()
}

// run builds the logger, checks the --email address with check, and flushes
// the logger before returning.
//
// Any error or panic from check is logged as ErrorOccurredText and returned,
// so the process exits nonzero. A missing --email is logged and isn't an
// error.
func run(cmd *cobra.Command, check CheckFunc) (err error) {
	var cfg *config.Config
	if cfg, err = config.Load(cmd.Flags()); err != nil {
		return
	}

	var logger *zap.Logger
	logger, err = logging.New(cmd.OutOrStdout(), cfg.LoggingOptions())
	if err != nil {
		return
	}
	logger = logger.With(zap.String("run_id", uuid.NewString()))
	cmd.SilenceUsage = true

	defer logging.Close(logger)
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("unexpected panic: %v", r)
		}
		if err != nil {
			logger.Error(ErrorOccurredText, zap.Error(err))
			cmd.SilenceErrors = true
		}
	}()

	address, ok := getEmail(cmd)
	if !ok {
		logger.Error(NoEmailMessage)
		return
	}
	return check(logger, address)
}
