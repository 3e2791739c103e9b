// Package valueobject holds small immutable value types shared by the domain packages.
package valueobject

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"math/big"
	"strings"
)

// BigInt is an arbitrary-precision integer that round-trips through SQL NUMERIC
// columns and JSON without losing digits. The zero value is 0.
type BigInt struct {
	v *big.Int
}

// NewBigInt creates a BigInt from an int64
func NewBigInt(n int64) BigInt {
	return BigInt{v: big.NewInt(n)}
}

// NewBigIntFromBig copies a *big.Int into a BigInt
func NewBigIntFromBig(n *big.Int) BigInt {
	if n == nil {
		return BigInt{}
	}
	return BigInt{v: new(big.Int).Set(n)}
}

// ParseBigInt parses a base-10 integer string
func ParseBigInt(s string) (BigInt, error) {
	s = strings.TrimSpace(s)
	// NUMERIC(38,0) columns can come back as "123.0" from some drivers
	if i := strings.IndexByte(s, '.'); i >= 0 && strings.Trim(s[i+1:], "0") == "" {
		s = s[:i]
	}
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return BigInt{}, fmt.Errorf("invalid integer %q", s)
	}
	return BigInt{v: n}, nil
}

// MustParseBigInt is like ParseBigInt but panics on error
func MustParseBigInt(s string) BigInt {
	b, err := ParseBigInt(s)
	if err != nil {
		panic(err)
	}
	return b
}

// Big returns a copy of the underlying value
func (b BigInt) Big() *big.Int {
	if b.v == nil {
		return new(big.Int)
	}
	return new(big.Int).Set(b.v)
}

// String returns the base-10 representation
func (b BigInt) String() string {
	if b.v == nil {
		return "0"
	}
	return b.v.String()
}

// Add returns b + other
func (b BigInt) Add(other BigInt) BigInt {
	return BigInt{v: new(big.Int).Add(b.Big(), other.Big())}
}

// Cmp compares b and other (-1, 0, +1)
func (b BigInt) Cmp(other BigInt) int {
	return b.Big().Cmp(other.Big())
}

// IsZero reports whether the value is 0
func (b BigInt) IsZero() bool {
	return b.v == nil || b.v.Sign() == 0
}

// MarshalJSON encodes the value as a JSON string so that JavaScript clients
// do not round it to a float64.
func (b BigInt) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.String())
}

// UnmarshalJSON accepts both quoted and bare integers
func (b *BigInt) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "null" || s == "" {
		*b = BigInt{}
		return nil
	}
	parsed, err := ParseBigInt(s)
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}

// Value implements driver.Valuer; the value is sent as text so NUMERIC columns keep every digit
func (b BigInt) Value() (driver.Value, error) {
	return b.String(), nil
}

// Scan implements sql.Scanner
func (b *BigInt) Scan(value any) error {
	switch v := value.(type) {
	case nil:
		*b = BigInt{}
		return nil
	case int64:
		*b = NewBigInt(v)
		return nil
	case float64:
		if v != float64(int64(v)) {
			return fmt.Errorf("cannot scan non-integer %v into BigInt", v)
		}
		*b = NewBigInt(int64(v))
		return nil
	case string:
		parsed, err := ParseBigInt(v)
		if err != nil {
			return err
		}
		*b = parsed
		return nil
	case []byte:
		parsed, err := ParseBigInt(string(v))
		if err != nil {
			return err
		}
		*b = parsed
		return nil
	default:
		return fmt.Errorf("cannot scan %T into BigInt", value)
	}
}

// Int64 returns the value as an int64 and whether it fit
func (b BigInt) Int64() (int64, bool) {
	n := b.Big()
	if !n.IsInt64() {
		return 0, false
	}
	return n.Int64(), true
}
