package service

import (
	"context"
	"fmt"
	"math/big"

	"object_explorer/internal/app/port"
	"object_explorer/internal/domain/entity"
	"object_explorer/internal/pkg/utils"
)

const unknownValidator = "-"

// Delegation content fields, newest name first.
var (
	delegationAmountFields    = []string{"delegate_amount", "active_delegation", "amount"}
	delegationValidatorFields = []string{"validator_address", "validator"}
)

// StakingServiceImpl implements port.StakingService.
type StakingServiceImpl struct {
	sources        port.ObjectSourceProvider
	networks       port.NetworkDefinitionProvider
	apyBasisPoints int
	logger         port.Logger
}

// NewStakingService creates a staking summary service. apyBasisPoints is the
// advertised APY shown on every card.
func NewStakingService(sources port.ObjectSourceProvider, networks port.NetworkDefinitionProvider, apyBasisPoints int, logger port.Logger) port.StakingService {
	return &StakingServiceImpl{sources: sources, networks: networks, apyBasisPoints: apyBasisPoints, logger: logger}
}

// GetStakingSummary lists the delegation objects owned by owner.
func (s *StakingServiceImpl) GetStakingSummary(ctx context.Context, network, owner string) (entity.StakingSummary, error) {
	if network == "" {
		network = s.networks.DefaultNetwork()
	}
	src, err := s.sources.GetSource(network)
	if err != nil {
		return entity.StakingSummary{}, err
	}

	refs, err := src.ListOwned(ctx, owner, false)
	if err != nil {
		return entity.StakingSummary{}, &entity.FetchError{Stage: entity.StageList, OwnerID: owner, Network: network, Err: err}
	}

	ids := make([]string, 0, len(refs))
	for _, ref := range refs {
		// listings carry the type, so non-delegations are skipped before resolving
		if ref.Type == "" || utils.IsDelegationType(ref.Type) {
			ids = append(ids, ref.ObjectID)
		}
	}

	recs, err := src.ResolveBatch(ctx, ids)
	if err != nil {
		return entity.StakingSummary{}, &entity.FetchError{Stage: entity.StageResolve, OwnerID: owner, Network: network, Err: err}
	}

	apy := FormatBasisPoints(s.apyBasisPoints)
	cards := make([]entity.DelegationCard, 0, len(recs))
	amounts := make([]*big.Int, 0, len(recs))
	for _, rec := range recs {
		if !rec.Exists() || !utils.IsDelegationType(rec.Type) {
			continue
		}
		card := BuildDelegationCard(rec, apy)
		cards = append(cards, card)
		amounts = append(amounts, card.Amount)
	}

	summary := entity.StakingSummary{Owner: owner, Network: network, Delegations: cards}
	if total := utils.SumBigInts(amounts); total != nil {
		summary.Total = total.String()
	}
	s.logger.Debug("Staking summary built", "owner", owner, "network", network, "delegations", len(cards))
	return summary, nil
}

// BuildDelegationCard renders one delegation object.
func BuildDelegationCard(rec entity.ObjectRecord, apy string) entity.DelegationCard {
	card := entity.DelegationCard{ID: rec.ID, Validator: unknownValidator, APY: apy}
	for _, key := range delegationValidatorFields {
		if v, ok := rec.Fields[key].(string); ok && v != "" {
			card.Validator = v
			break
		}
	}
	for _, key := range delegationAmountFields {
		if amount, ok := utils.BalanceFromField(rec.Fields[key]); ok {
			card.Amount = amount
			card.Balance = amount.String()
			break
		}
	}
	return card
}

// FormatBasisPoints renders basis points as a percentage, 125 => "1.25%".
func FormatBasisPoints(bps int) string {
	sign := ""
	if bps < 0 {
		sign = "-"
		bps = -bps
	}
	return fmt.Sprintf("%s%d.%02d%%", sign, bps/100, bps%100)
}
