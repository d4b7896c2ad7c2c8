package countdigits

import (
	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

var (
	// ErrInvalidRadix is wrapped by CheckRadix and carried by the panic of
	// CountDigitsRadix when the radix is 0 or 1.
	ErrInvalidRadix = errors.New("invalid radix, must be at least 2")
	// ErrZero is wrapped by MustNonZero when given zero.
	ErrZero = errors.New("value is zero")
	// ErrRange is wrapped by the 128-bit parsers when a value does not fit.
	ErrRange = errors.New("value out of range")
	// ErrSyntax is wrapped by the 128-bit parsers when a value is malformed.
	ErrSyntax = errors.New("invalid syntax")
)

// CheckRadix returns an error wrapping ErrInvalidRadix if radix cannot be
// used as a number base, and nil otherwise.
func CheckRadix[R constraints.Unsigned](radix R) error {
	if !validRadix(uint64(radix)) {
		return errors.Wrapf(ErrInvalidRadix, "radix %d", radix)
	}
	return nil
}

func validRadix(radix uint64) bool {
	return radix >= 2
}

func mustRadix(radix uint64) {
	if err := CheckRadix(radix); err != nil {
		panic(err)
	}
}
