package battlemogs

import "github.com/ajuna-network/ajunacore/host"

func init() {
	Register(TransitionSacrifice, handleSacrifice)
}

// handleSacrifice requires a non-Bred mogwai owned by the caller. It
// withdraws floor(asset_balance / intrinsic_return(phase)) from the
// asset's escrow to the owner, consumes the mogwai, and bumps
// Sacrificer by 1 (spec.md §4.2's Sacrifice).
func handleSacrifice(h host.Host, req Request) ([]host.Output, error) {
	if err := ownedBy(h, req.Account, req.Mogwai); err != nil {
		return nil, err
	}
	_, m, err := asMogwai(h, req.Mogwai)
	if err != nil {
		return nil, err
	}
	if m.Phase == PhaseBred {
		return nil, NewTransitionError(ErrMogwaiStillInBredPhase)
	}

	fund := req.fund(h)
	balance, err := h.InspectAssetBalance(req.Mogwai, fund)
	if err != nil {
		return nil, NewTransitionError(ErrAssetCouldNotWithdrawFunds)
	}
	divisor := IntrinsicReturn(m.Phase)
	withdraw := uint64(0)
	if divisor > 0 {
		withdraw = balance / divisor
	}
	if withdraw > 0 {
		if err := h.WithdrawFromAsset(req.Mogwai, req.Account, fund, withdraw); err != nil {
			return nil, NewTransitionError(ErrAssetCouldNotWithdrawFunds)
		}
	}

	outputs := []host.Output{host.Consumed(req.Mogwai)}
	bump, err := bumpAchievement(h, req.Table, AchievementSacrificer, 1)
	if err != nil {
		return nil, err
	}
	outputs = append(outputs, bump)
	return outputs, nil
}
