package kernel

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"foodorder/internal/pkg/errs"
)

// MaxAccountLength bounds the length of an account identifier in runes.
const MaxAccountLength = 128

// ErrAccountIsNotConstructed is returned when validating the zero Account.
var ErrAccountIsNotConstructed = errs.NewValueIsRequiredError("account")

// Account is the opaque identity of a caller as supplied by the host. Two accounts
// are the same caller when their trimmed text is equal.
type Account struct {
	value string
}

func NewAccount(value string) (Account, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return Account{}, ErrAccountIsNotConstructed
	}
	if n := utf8.RuneCountInString(trimmed); n > MaxAccountLength {
		return Account{}, errs.NewValueIsInvalidErrorWithCause(
			"account",
			fmt.Errorf("%d characters exceeds the limit of %d", n, MaxAccountLength),
		)
	}
	return Account{value: trimmed}, nil
}

// MustNewAccount is NewAccount for literals known to be valid. It panics otherwise.
func MustNewAccount(value string) Account {
	a, err := NewAccount(value)
	if err != nil {
		panic(err)
	}
	return a
}

func (a Account) String() string {
	return a.value
}

func (a Account) IsEqual(other Account) bool {
	return a.value == other.value
}

func (a Account) IsZero() bool {
	return a.value == ""
}

func (a Account) Validate() error {
	if a.IsZero() {
		return ErrAccountIsNotConstructed
	}
	return nil
}
