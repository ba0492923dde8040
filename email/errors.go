package email

// SentinelError is type for defining constant error values.
//
// Inspired by: https://dave.cheney.net/2019/06/10/constant-time
type SentinelError string

// Error returns the string value of a SentinelError.
func (e SentinelError) Error() string {
	return string(e)
}

// ErrMissingAt indicates that an address has no '@' separating the local
// part from the domain.
const ErrMissingAt = SentinelError("email address has no '@'")
