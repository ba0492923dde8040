package email

import (
	"fmt"
	"regexp"
	"strings"
)

// AddressPattern is the fixed syntax rule applied to every address.
//
// It accepts a local part of word characters, dots and hyphens, a single
// host label, and one or more dot-separated labels of exactly two or three
// word characters. That means "x@y.co" and "x@y.com" pass while "x@y.info"
// does not. Word characters are ASCII only, as with all RE2 patterns.
const AddressPattern = `^([\w.\-]+)@([\w\-]+)((\.(\w){2,3})+)$`

var addressRegexp = regexp.MustCompile(AddressPattern)

// IsValid reports whether address matches AddressPattern.
func IsValid(address string) bool {
	return addressRegexp.MatchString(address)
}

// LocalPart returns the portion of address preceding its first '@'.
//
// Returns an error wrapping ErrMissingAt if address contains no '@'.
func LocalPart(address string) (string, error) {
	i := strings.IndexByte(address, '@')
	if i < 0 {
		return "", fmt.Errorf("%w: %q", ErrMissingAt, address)
	}
	return address[:i], nil
}
