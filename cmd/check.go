// Copyright © 2023 Mike Bland <mbland@acm.org>.
// See LICENSE.txt for details.

package cmd

import (
	"fmt"

	"github.com/mbland/emailcheck/email"
	"go.uber.org/zap"
)

const (
	ValidMessage      = "Email is valid!"
	InvalidMessage    = "Email is invalid!"
	NoEmailMessage    = "No email address was passed in"
	ErrorOccurredText = "An error occurred"
)

// CheckFunc validates address and logs the outcome and remark to logger.
type CheckFunc func(logger *zap.Logger, address string) error

// checkAddress logs whether address matches email.AddressPattern, then logs
// the remark for its domain.
//
// The remark is logged whether or not address is valid. An address without
// '@' fails here, after its validation result is already logged.
func checkAddress(logger *zap.Logger, address string) error {
	if email.IsValid(address) {
		logger.Info(ValidMessage)
	} else {
		logger.Info(InvalidMessage)
	}

	msg, name, err := email.Greeting(address)
	if err != nil {
		return fmt.Errorf("failed to derive name: %w", err)
	} else if name != "" {
		logger.Info(msg, zap.String("name", name))
	} else {
		logger.Info(msg)
	}
	return nil
}
