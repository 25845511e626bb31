package kernel

import (
	"encoding/json"
	"fmt"
	"math/big"

	"foodorder/internal/pkg/errs"
)

// AmountBits is the width of the unsigned integer an Amount can hold.
const AmountBits = 128

var maxAmount = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), AmountBits), big.NewInt(1))

// Amount is an exact unsigned 128-bit quantity of the smallest currency unit.
// It is immutable: every operation returns a new value. The zero Amount is 0.
type Amount struct {
	v *big.Int
}

func NewAmount(v uint64) Amount {
	return Amount{v: new(big.Int).SetUint64(v)}
}

// AmountFromString parses a base-10 string of digits in [0, 2^128-1].
// Signs, spaces and fractional parts are rejected.
func AmountFromString(s string) (Amount, error) {
	if s == "" {
		return Amount{}, errs.NewValueIsRequiredError("amount")
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return Amount{}, errs.NewValueIsInvalidErrorWithCause("amount", fmt.Errorf("%q is not a decimal integer", s))
		}
	}
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return Amount{}, errs.NewValueIsInvalidErrorWithCause("amount", fmt.Errorf("%q is not a decimal integer", s))
	}
	if v.Cmp(maxAmount) > 0 {
		return Amount{}, errs.NewValueIsOutOfRangeError("amount", s, 0, maxAmount.String())
	}
	return Amount{v: v}, nil
}

// MaxAmount returns 2^128-1.
func MaxAmount() Amount {
	return Amount{v: new(big.Int).Set(maxAmount)}
}

func (a Amount) int() *big.Int {
	if a.v == nil {
		return new(big.Int)
	}
	return a.v
}

func (a Amount) Cmp(other Amount) int {
	return a.int().Cmp(other.int())
}

func (a Amount) IsEqual(other Amount) bool {
	return a.Cmp(other) == 0
}

func (a Amount) IsZero() bool {
	return a.int().Sign() == 0
}

func (a Amount) String() string {
	return a.int().String()
}

// MarshalJSON encodes the amount as a JSON string, since 128-bit values do not
// survive a round trip through float64 in most JSON consumers.
func (a Amount) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

// UnmarshalJSON accepts either a JSON string or a bare JSON number of digits.
func (a *Amount) UnmarshalJSON(data []byte) error {
	var s string
	if len(data) > 0 && data[0] == '"' {
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
	} else {
		s = string(data)
	}
	parsed, err := AmountFromString(s)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
