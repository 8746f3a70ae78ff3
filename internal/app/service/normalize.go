package service

import (
	"object_explorer/internal/domain/entity"
	"object_explorer/internal/pkg/utils"
)

// packageTypeTag is the grouping key used for published packages, which
// carry no move type.
const packageTypeTag = "package"

// balanceField is the content field holding a coin's balance.
const balanceField = "balance"

// NormalizeRecord turns a resolved object into an OwnedRecord. Coin-ness comes
// from the type tag alone; a coin without a parsable balance keeps a nil
// Balance, which later makes its group total undefined.
func NormalizeRecord(rec entity.ObjectRecord, gateway string) entity.OwnedRecord {
	typeTag := rec.Type
	if typeTag == "" && rec.IsPackage() {
		typeTag = packageTypeTag
	}

	out := entity.OwnedRecord{
		ID:         rec.ID,
		TypeTag:    typeTag,
		IsCoinLike: utils.IsCoinType(typeTag),
		Version:    rec.Version,
	}
	if raw := utils.ParseImageURL(rec.Fields); raw != "" {
		out.DisplayURL = utils.TransformURL(raw, gateway)
	}
	if out.IsCoinLike {
		if bal, ok := utils.BalanceFromField(rec.Fields[balanceField]); ok {
			out.Balance = bal
		}
	}
	return out
}
