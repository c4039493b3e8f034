package oddsmath

import (
	"math"

	"github.com/Bet-Zero/BetTracker-sub001/pkg/models"
)

// ToWin returns the total return (stake + profit) for a bet. A realized
// payout reported by the book is authoritative and returned as-is; otherwise
// the return is computed from the American odds. When neither is available
// the second return is false; callers render blank, never a fabricated
// number.
func ToWin(stake float64, odds int, payout float64) (float64, bool) {
	if payout > 0 && !math.IsNaN(payout) {
		return payout, true
	}

	mult, err := ProfitMultiplier(odds)
	if err != nil {
		return 0, false
	}

	return stake + stake*mult, true
}

// Net returns the realized profit or loss for a settled bet:
//
//	win  → payout-stake when a payout is known, else profit from odds
//	loss → -stake
//	push → 0
//
// Pending bets return false: a pending row renders blank, which is distinct
// from a confirmed push at 0. Portfolio aggregation elsewhere treats pending
// as contributing 0; see db.GetSummary.
func Net(result models.Result, stake float64, odds int, payout float64) (float64, bool) {
	switch result {
	case models.ResultWin:
		if payout > 0 && !math.IsNaN(payout) {
			return payout - stake, true
		}
		mult, err := ProfitMultiplier(odds)
		if err != nil {
			return 0, false
		}
		return stake * mult, true

	case models.ResultLoss:
		return -stake, true

	case models.ResultPush:
		return 0, true
	}

	return 0, false
}
