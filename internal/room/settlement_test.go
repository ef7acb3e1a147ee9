package room

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var defaultFees = feeSchedule{CreatorBps: 500, ServiceBps: 300}

func TestPlanSettlementTwoPlayerRoom(t *testing.T) {
	// Two players paid 1000 each, custody was pre-funded with a
	// baseline of 890.
	baseline := uint64(890)
	plan, err := planSettlement(2000+baseline, baseline, defaultFees)
	require.NoError(t, err)

	assert.Equal(t, uint64(100), plan.CreatorFee)
	assert.Equal(t, uint64(60), plan.ServiceFee)
	assert.Equal(t, uint64(1840)+baseline, plan.WinnerTotal)
}

func TestPlanSettlementDrainsExactly(t *testing.T) {
	baseline := uint64(890)
	pools := []uint64{0, 1, 2, 7, 9999, 123456789, math.MaxUint64/500 - baseline}

	for _, pool := range pools {
		plan, err := planSettlement(pool+baseline, baseline, defaultFees)
		require.NoError(t, err, "prize pool %d", pool)

		total := plan.CreatorFee + plan.ServiceFee + plan.WinnerTotal
		assert.Equal(t, pool+baseline, total, "prize pool %d leaks funds", pool)
	}
}

func TestPlanSettlementFeesNeverExceedNominalRate(t *testing.T) {
	for _, pool := range []uint64{1, 19, 100, 9999, 10000, 10001, 999999999} {
		plan, err := planSettlement(pool, 0, defaultFees)
		require.NoError(t, err)

		assert.LessOrEqual(t, plan.CreatorFee, pool*500/10000, "pool %d", pool)
		assert.LessOrEqual(t, plan.ServiceFee, pool*300/10000, "pool %d", pool)
		// Rounding dust goes to the winner, never to the fee takers.
		assert.Equal(t, pool-plan.CreatorFee-plan.ServiceFee, plan.WinnerTotal)
	}
}

func TestPlanSettlementNineNineNineNine(t *testing.T) {
	plan, err := planSettlement(9999, 0, defaultFees)
	require.NoError(t, err)

	assert.Equal(t, uint64(499), plan.CreatorFee)
	assert.Equal(t, uint64(299), plan.ServiceFee)
	assert.Equal(t, uint64(9201), plan.WinnerTotal)
}

func TestPlanSettlementEmptyPrizePool(t *testing.T) {
	// Only the baseline is left: no fees, everything to the winner.
	plan, err := planSettlement(890, 890, defaultFees)
	require.NoError(t, err)
	assert.Equal(t, settlementPlan{WinnerTotal: 890}, plan)

	// Empty custody account: nothing moves at all.
	plan, err = planSettlement(0, 890, defaultFees)
	require.NoError(t, err)
	assert.Equal(t, settlementPlan{}, plan)
}

func TestPlanSettlementBalanceBelowBaseline(t *testing.T) {
	plan, err := planSettlement(100, 890, defaultFees)
	require.NoError(t, err)
	assert.Equal(t, settlementPlan{WinnerTotal: 100}, plan)
}

func TestPlanSettlementOverflowRejected(t *testing.T) {
	// The largest pool whose fee multiplication still fits.
	largest := uint64(math.MaxUint64) / 500
	plan, err := planSettlement(largest, 0, defaultFees)
	require.NoError(t, err)
	assert.Equal(t, largest, plan.CreatorFee+plan.ServiceFee+plan.WinnerTotal)

	_, err = planSettlement(largest+1, 0, defaultFees)
	assert.ErrorIs(t, err, errCalculationOverflow)
}

func TestCheckedArithmetic(t *testing.T) {
	_, err := checkedMul(math.MaxUint64, 2)
	assert.ErrorIs(t, err, errCalculationOverflow)

	_, err = checkedAdd(math.MaxUint64, 1)
	assert.ErrorIs(t, err, errCalculationOverflow)

	_, err = checkedSub(1, 2)
	assert.ErrorIs(t, err, errCalculationOverflow)

	product, err := checkedMul(0, math.MaxUint64)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), product)
}
