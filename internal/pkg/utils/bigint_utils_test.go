package utils

import (
	"encoding/json"
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDecimalBigInt(t *testing.T) {
	n, err := ParseDecimalBigInt("18446744073709551617")
	require.NoError(t, err)
	want, _ := new(big.Int).SetString("18446744073709551617", 10)
	assert.Equal(t, 0, n.Cmp(want))

	_, err = ParseDecimalBigInt("")
	assert.Error(t, err)
	_, err = ParseDecimalBigInt("0x10")
	assert.Error(t, err)
	_, err = ParseDecimalBigInt("-5")
	assert.Error(t, err)
	_, err = ParseDecimalBigInt("+5")
	assert.Error(t, err)
	_, err = ParseDecimalBigInt("1_000")
	assert.Error(t, err)

	n, err = ParseDecimalBigInt(" 007 ")
	require.NoError(t, err)
	assert.Equal(t, "7", n.String())
}

func TestBalanceFromField(t *testing.T) {
	tests := []struct {
		name  string
		in    any
		want  string
		valid bool
	}{
		{"string", "100", "100", true},
		{"json number above 2^53", json.Number("9007199254740993"), "9007199254740993", true},
		{"int", 7, "7", true},
		{"uint64", uint64(1) << 63, "9223372036854775808", true},
		{"integral float", float64(42), "", false},
		{"float above 2^64", 1.8446744073709552e+19, "", false},
		{"fractional float", 1.5, "", false},
		{"nan", math.NaN(), "", false},
		{"infinity", math.Inf(1), "", false},
		{"plus sign", "+5", "", false},
		{"negative int", -1, "", false},
		{"nil", nil, "", false},
		{"garbage", "abc", "", false},
		{"map", map[string]any{}, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := BalanceFromField(tt.in)
			require.Equal(t, tt.valid, ok)
			if tt.valid {
				assert.Equal(t, tt.want, got.String())
			}
		})
	}
}

func TestSumBigInts(t *testing.T) {
	a, _ := new(big.Int).SetString("9007199254740993", 10)
	b, _ := new(big.Int).SetString("9007199254740993", 10)
	assert.Equal(t, "18014398509481986", SumBigInts([]*big.Int{a, b}).String())
	assert.Equal(t, "0", SumBigInts(nil).String())
	assert.Nil(t, SumBigInts([]*big.Int{a, nil}))
}
