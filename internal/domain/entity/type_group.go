package entity

import "math/big"

// TypeGroup is a derived view over all records sharing a type tag.
// TotalBalance is nil when at least one member lacks a balance.
type TypeGroup struct {
	TypeTag      string
	Members      []OwnedRecord
	TotalBalance *big.Int
}

// Count returns the number of members in the group.
func (g TypeGroup) Count() int {
	return len(g.Members)
}

// TotalString renders the total in base 10, or "" when the total is undefined.
func (g TypeGroup) TotalString() string {
	if g.TotalBalance == nil {
		return ""
	}
	return g.TotalBalance.String()
}
