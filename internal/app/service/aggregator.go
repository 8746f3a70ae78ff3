package service

import (
	"math/big"
	"sort"

	"object_explorer/internal/domain/entity"
	"object_explorer/internal/pkg/utils"
)

// Partition splits records into coin-like ones, kept in input order, and the
// rest, sorted by type tag and then id.
func Partition(records []entity.OwnedRecord) (coins, other []entity.OwnedRecord) {
	coins = make([]entity.OwnedRecord, 0)
	other = make([]entity.OwnedRecord, 0)
	for _, r := range records {
		if r.IsCoinLike {
			coins = append(coins, r)
		} else {
			other = append(other, r)
		}
	}
	sort.SliceStable(other, func(i, j int) bool {
		if other[i].TypeTag != other[j].TypeTag {
			return other[i].TypeTag < other[j].TypeTag
		}
		return other[i].ID < other[j].ID
	})
	return coins, other
}

// GroupByType groups records by type tag in order of first occurrence.
// A group's TotalBalance is set only when every member is coin-like with a
// known balance.
func GroupByType(records []entity.OwnedRecord) []entity.TypeGroup {
	index := make(map[string]int)
	groups := make([]entity.TypeGroup, 0)
	for _, r := range records {
		i, ok := index[r.TypeTag]
		if !ok {
			i = len(groups)
			index[r.TypeTag] = i
			groups = append(groups, entity.TypeGroup{TypeTag: r.TypeTag})
		}
		groups[i].Members = append(groups[i].Members, r)
	}

	for i := range groups {
		groups[i].TotalBalance = groupTotal(groups[i].Members)
	}
	return groups
}

func groupTotal(members []entity.OwnedRecord) *big.Int {
	balances := make([]*big.Int, len(members))
	for i, m := range members {
		if !m.HasBalance() {
			return nil
		}
		balances[i] = m.Balance
	}
	return utils.SumBigInts(balances)
}
