package entity

import "math/big"

// DelegationCard is the staking summary of one delegation object.
type DelegationCard struct {
	ID        string   `json:"id"`
	Validator string   `json:"validator"`
	Amount    *big.Int `json:"-"`
	Balance   string   `json:"balance"`
	APY       string   `json:"apy"`
}

// StakingSummary collects the delegation cards owned by one address.
// Total is empty when any card lacks an amount.
type StakingSummary struct {
	Owner       string           `json:"owner"`
	Network     string           `json:"network"`
	Delegations []DelegationCard `json:"delegations"`
	Total       string           `json:"totalDelegated"`
}
