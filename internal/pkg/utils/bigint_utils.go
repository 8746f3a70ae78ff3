package utils

import (
	"encoding/json"
	"fmt"
	"math/big"
	"strings"
)

// ParseDecimalBigInt parses a base-10 non-negative integer of any size.
// Example: "18446744073709551617" => 2^64+1
func ParseDecimalBigInt(raw string) (*big.Int, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil, fmt.Errorf("empty balance string")
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return nil, fmt.Errorf("invalid base-10 integer %q", raw)
		}
	}
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("invalid base-10 integer %q", raw)
	}
	return n, nil
}

// BalanceFromField converts a decoded content field into a balance.
// JSON numbers must be decoded with UseNumber. Floating point values are
// never accepted, so a balance that went through a float is indeterminate.
func BalanceFromField(v any) (*big.Int, bool) {
	switch val := v.(type) {
	case nil:
		return nil, false
	case string:
		n, err := ParseDecimalBigInt(val)
		return n, err == nil
	case json.Number:
		n, err := ParseDecimalBigInt(val.String())
		return n, err == nil
	case int:
		if val < 0 {
			return nil, false
		}
		return big.NewInt(int64(val)), true
	case int64:
		if val < 0 {
			return nil, false
		}
		return big.NewInt(val), true
	case uint64:
		return new(big.Int).SetUint64(val), true
	case float32, float64:
		return nil, false
	case *big.Int:
		if val == nil || val.Sign() < 0 {
			return nil, false
		}
		return new(big.Int).Set(val), true
	default:
		// jsoniter may hand back its own Number type; anything with a
		// String method is tried as a decimal literal.
		if s, ok := v.(fmt.Stringer); ok {
			n, err := ParseDecimalBigInt(s.String())
			return n, err == nil
		}
		return nil, false
	}
}

// SumBigInts adds all values with unbounded precision. It returns nil if any
// value is nil, so an unknown addend makes the total unknown.
func SumBigInts(values []*big.Int) *big.Int {
	total := new(big.Int)
	for _, v := range values {
		if v == nil {
			return nil
		}
		total.Add(total, v)
	}
	return total
}
