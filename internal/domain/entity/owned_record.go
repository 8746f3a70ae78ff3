package entity

import "math/big"

// OwnedRecord is the normalized result of resolving one owned object reference.
// Balance is only ever set on coin-like records.
type OwnedRecord struct {
	ID         string   `json:"id" yaml:"id"`
	TypeTag    string   `json:"type" yaml:"type"`
	IsCoinLike bool     `json:"isCoin" yaml:"isCoin"`
	Version    string   `json:"version,omitempty" yaml:"version,omitempty"`
	DisplayURL string   `json:"display,omitempty" yaml:"display,omitempty"`
	Balance    *big.Int `json:"-" yaml:"-"`
}

// HasBalance reports whether the record carries a determinable balance.
func (r OwnedRecord) HasBalance() bool {
	return r.IsCoinLike && r.Balance != nil
}

// BalanceString renders the balance in base 10, or "" when it is unknown.
func (r OwnedRecord) BalanceString() string {
	if !r.HasBalance() {
		return ""
	}
	return r.Balance.String()
}
