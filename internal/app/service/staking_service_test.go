package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"object_explorer/internal/domain/entity"
	"object_explorer/internal/pkg/logger"
	"object_explorer/internal/pkg/utils"
)

func delegation(id string, fields map[string]any) entity.ObjectRecord {
	return entity.ObjectRecord{ID: id, Status: entity.StatusExists, Type: utils.DelegationType, Fields: fields}
}

func TestStakingService_Summary(t *testing.T) {
	src := newFakeSource()
	src.add("0xa", delegation("0xd1", map[string]any{"delegate_amount": json.Number("9007199254740993"), "validator_address": "0xval"}))
	src.add("0xa", coinRecord("0xc", "0x2::sui::SUI", map[string]any{"balance": "1"}))
	src.add("0xa", delegation("0xd2", map[string]any{"delegate_amount": "7"}))

	svc := NewStakingService(providerFor(src), testNetworks(), 100, logger.Nop{})
	summary, err := svc.GetStakingSummary(context.Background(), "", "0xa")
	require.NoError(t, err)

	assert.Equal(t, "devnet", summary.Network)
	require.Len(t, summary.Delegations, 2)
	assert.Equal(t, "0xval", summary.Delegations[0].Validator)
	assert.Equal(t, "9007199254740993", summary.Delegations[0].Balance)
	assert.Equal(t, "1.00%", summary.Delegations[0].APY)
	assert.Equal(t, "-", summary.Delegations[1].Validator)
	assert.Equal(t, "9007199254741000", summary.Total)

	// the coin was filtered out by its listed type before resolution
	require.Len(t, src.resolved, 1)
	assert.Equal(t, []string{"0xd1", "0xd2"}, src.resolved[0])
}

func TestStakingService_UndefinedTotal(t *testing.T) {
	src := newFakeSource()
	src.add("0xa", delegation("0xd1", map[string]any{"delegate_amount": "5"}))
	src.add("0xa", delegation("0xd2", nil))

	svc := NewStakingService(providerFor(src), testNetworks(), 100, logger.Nop{})
	summary, err := svc.GetStakingSummary(context.Background(), "devnet", "0xa")
	require.NoError(t, err)
	require.Len(t, summary.Delegations, 2)
	assert.Equal(t, "", summary.Delegations[1].Balance)
	assert.Equal(t, "", summary.Total)
}

func TestStakingService_Failure(t *testing.T) {
	src := newFakeSource()
	src.listErr = errors.New("down")
	svc := NewStakingService(providerFor(src), testNetworks(), 100, logger.Nop{})
	_, err := svc.GetStakingSummary(context.Background(), "devnet", "0xa")
	assert.ErrorIs(t, err, entity.ErrFetchFailed)
}

func TestFormatBasisPoints(t *testing.T) {
	assert.Equal(t, "1.00%", FormatBasisPoints(100))
	assert.Equal(t, "1.25%", FormatBasisPoints(125))
	assert.Equal(t, "0.05%", FormatBasisPoints(5))
	assert.Equal(t, "-2.50%", FormatBasisPoints(-250))
}
