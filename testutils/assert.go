package testutils

import (
	"errors"
	"fmt"
	"strings"

	"gotest.tools/assert/cmp"
)

func ErrorIs(err, expectedErr error) cmp.Comparison {
	return func() cmp.Result {
		if errors.Is(err, expectedErr) {
			return cmp.ResultSuccess
		}
		const errFmt = "expected \"%+v\" (%T) in error tree,\ngot: \"%+v\" (%T)"
		errMsg := fmt.Sprintf(errFmt, expectedErr, expectedErr, err, err)
		return cmp.ResultFailure(errMsg)
	}
}

// ContainsInOrder succeeds if every one of substrs appears in s, each after
// the end of the one before it.
func ContainsInOrder(s string, substrs ...string) cmp.Comparison {
	return func() cmp.Result {
		rest := s
		for _, sub := range substrs {
			i := strings.Index(rest, sub)
			if i < 0 {
				const errFmt = "expected %q after preceding matches in:\n%s"
				return cmp.ResultFailure(fmt.Sprintf(errFmt, sub, s))
			}
			rest = rest[i+len(sub):]
		}
		return cmp.ResultSuccess
	}
}
