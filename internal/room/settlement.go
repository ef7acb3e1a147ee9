package room

import (
	"math"

	"github.com/spf13/viper"
)

const basisPointsDenominator = 10000

const (
	defaultCreatorFeeBps = 500
	defaultServiceFeeBps = 300
)

// feeSchedule is loaded once at startup. The basis point values are part
// of the wire contract with clients expecting the 5%/3% split, so they
// only ever change through configuration, never at runtime.
type feeSchedule struct {
	CreatorBps uint64
	ServiceBps uint64
}

func loadFeeSchedule() feeSchedule {
	viper.SetDefault("CREATOR_FEE_BPS", defaultCreatorFeeBps)
	viper.SetDefault("SERVICE_FEE_BPS", defaultServiceFeeBps)
	return feeSchedule{
		CreatorBps: viper.GetUint64("CREATOR_FEE_BPS"),
		ServiceBps: viper.GetUint64("SERVICE_FEE_BPS"),
	}
}

// settlementPlan is the set of outgoing custody transfers for one
// payout. Transfers with amount zero are skipped. The amounts always sum
// to the full custody balance so the account is drained exactly.
type settlementPlan struct {
	CreatorFee  uint64
	ServiceFee  uint64
	WinnerTotal uint64
}

// planSettlement splits a custody balance between creator, service
// wallet and winner. The baseline is the existence balance the custody
// account was funded with at creation; it is not part of the prize pool
// and travels to the winner untaxed. Both fees are floored
// independently so rounding dust accrues to the winner and the combined
// fee never exceeds its nominal percentage.
func planSettlement(custodyBalance uint64, baseline uint64, fees feeSchedule) (settlementPlan, error) {
	var prizePool uint64
	if custodyBalance > baseline {
		prizePool = custodyBalance - baseline
	}

	if prizePool == 0 {
		// Nothing to tax. Whatever is left (at most the baseline)
		// goes to the winner.
		return settlementPlan{WinnerTotal: custodyBalance}, nil
	}

	creatorFee, err := bpsShare(prizePool, fees.CreatorBps)
	if err != nil {
		return settlementPlan{}, err
	}
	serviceFee, err := bpsShare(prizePool, fees.ServiceBps)
	if err != nil {
		return settlementPlan{}, err
	}
	feesTotal, err := checkedAdd(creatorFee, serviceFee)
	if err != nil {
		return settlementPlan{}, err
	}
	winnerShare, err := checkedSub(prizePool, feesTotal)
	if err != nil {
		return settlementPlan{}, err
	}
	winnerTotal, err := checkedAdd(winnerShare, baseline)
	if err != nil {
		return settlementPlan{}, err
	}

	return settlementPlan{
		CreatorFee:  creatorFee,
		ServiceFee:  serviceFee,
		WinnerTotal: winnerTotal,
	}, nil
}

func bpsShare(amount uint64, bps uint64) (uint64, error) {
	product, err := checkedMul(amount, bps)
	if err != nil {
		return 0, err
	}
	return product / basisPointsDenominator, nil
}

func checkedMul(a uint64, b uint64) (uint64, error) {
	if a != 0 && b > math.MaxUint64/a {
		return 0, errCalculationOverflow
	}
	return a * b, nil
}

func checkedAdd(a uint64, b uint64) (uint64, error) {
	if a > math.MaxUint64-b {
		return 0, errCalculationOverflow
	}
	return a + b, nil
}

func checkedSub(a uint64, b uint64) (uint64, error) {
	if b > a {
		return 0, errCalculationOverflow
	}
	return a - b, nil
}
