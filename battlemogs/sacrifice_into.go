package battlemogs

import "github.com/ajuna-network/ajunacore/host"

func init() {
	Register(TransitionSacrificeInto, handleSacrificeInto)
}

// handleSacrificeInto requires both mogwais owned by caller, both
// non-Bred, both of rarity != Common. If the computed jump is positive
// and fits under generation 16, it drains the donor's escrow into the
// target's escrow and advances the target's generation (spec.md §4.2's
// SacrificeInto).
func handleSacrificeInto(h host.Host, req Request) ([]host.Output, error) {
	if err := ownedBy(h, req.Account, req.Mogwai); err != nil {
		return nil, err
	}
	if err := ownedBy(h, req.Account, req.Into); err != nil {
		return nil, err
	}
	donorRec, donor, err := asMogwai(h, req.Mogwai)
	if err != nil {
		return nil, err
	}
	targetRec, target, err := asMogwai(h, req.Into)
	if err != nil {
		return nil, err
	}
	if donor.Phase == PhaseBred || target.Phase == PhaseBred {
		return nil, NewTransitionError(ErrMogwaiStillInBredPhase)
	}
	if donor.Rarity == RarityCommon || target.Rarity == RarityCommon {
		return nil, NewTransitionError(ErrMogwaiHasInvalidRarity)
	}

	jump := Breeding.SacrificeJump(donor.Generation, donor.Rarity, donor.DNA, target.Generation, target.Rarity, target.DNA)

	outputs := make([]host.Output, 0, 3)
	if jump > 0 && uint16(target.Generation)+uint16(jump) <= uint16(MaxGeneration) {
		fund := req.fund(h)
		balance, err := h.InspectAssetBalance(req.Mogwai, fund)
		if err != nil {
			return nil, NewTransitionError(ErrAssetCouldNotWithdrawFunds)
		}
		if balance > 0 {
			if err := h.WithdrawFromAsset(req.Mogwai, req.Account, fund, balance); err != nil {
				return nil, NewTransitionError(ErrAssetCouldNotWithdrawFunds)
			}
			if err := h.DepositToAsset(req.Into, req.Account, fund, balance); err != nil {
				return nil, NewTransitionError(ErrAssetCouldNotReceiveFunds)
			}
		}
		newTarget := *target
		newTarget.Generation = GenerationFromU16(uint16(target.Generation) + uint16(jump))
		newTargetRec := &host.AssetRecord{ID: targetRec.ID, Genesis: targetRec.Genesis, Variant: &newTarget}
		outputs = append(outputs, host.Mutated(newTargetRec))
	}

	outputs = append(outputs, host.Consumed(donorRec.ID))

	bump, err := bumpAchievement(h, req.Table, AchievementSacrificer, 1)
	if err != nil {
		return nil, err
	}
	outputs = append(outputs, bump)
	return outputs, nil
}
