package email

import (
	"fmt"
	"strings"
)

const (
	VendorSuffix   = "@github.com"
	CustomerSuffix = "mmm.com"

	VendorMessage   = "GitHub is an awesome vendor!"
	CustomerMessage = "3M is an awesome customer!"
)

// Greeting returns the remark for address based on its domain.
//
// Addresses ending in VendorSuffix or CustomerSuffix get the corresponding
// fixed message. Note that CustomerSuffix isn't anchored to '@' or '.', so
// hosts such as "commmm.com" also count as customers. Every other address
// gets a personal greeting, in which case name holds the local part.
//
// Greeting doesn't require address to pass IsValid. It returns an error
// wrapping ErrMissingAt only when it has to greet an address with no '@'.
func Greeting(address string) (msg, name string, err error) {
	switch {
	case strings.HasSuffix(address, VendorSuffix):
		msg = VendorMessage
	case strings.HasSuffix(address, CustomerSuffix):
		msg = CustomerMessage
	default:
		if name, err = LocalPart(address); err == nil {
			msg = fmt.Sprintf("Hello %s!", name)
		}
	}
	return
}
