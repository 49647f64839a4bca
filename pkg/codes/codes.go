// Package codes generates the prefixed identifiers used across the program:
// redemption and voucher codes, transaction codes, customer codes. Codes are
// random UUIDs so retried submissions never collide with earlier attempts.
package codes

import (
	"strings"

	"github.com/google/uuid"
)

func generate(prefix string) string {
	return prefix + "-" + strings.ToUpper(uuid.NewString())
}

func Redemption() string  { return generate("RDM") }
func Voucher() string     { return generate("VCHR") }
func Transaction() string { return generate("TXN") }
func Customer() string    { return generate("CUST") }
func Promotion() string   { return generate("PROMO") }
func Reward() string      { return generate("RWD") }
