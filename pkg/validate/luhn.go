package validate

import (
	"github.com/ShiraazMoollatjie/goluhn"
)

// IsCardNumber reports whether s is a Luhn-valid membership card number.
func IsCardNumber(s string) bool {
	err := goluhn.Validate(s)
	return err == nil
}
