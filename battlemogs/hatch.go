package battlemogs

import "github.com/ajuna-network/ajunacore/host"

func init() {
	Register(TransitionHatch, handleHatch)
}

// handleHatch requires the mogwai in phase Bred, owned by the caller, and
// current_height - genesis >= time_till_hatch (spec.md §4.2's Hatch;
// concrete scenario 1 in spec.md §8).
func handleHatch(h host.Host, req Request) ([]host.Output, error) {
	if err := ownedBy(h, req.Account, req.Mogwai); err != nil {
		return nil, err
	}
	rec, m, err := asMogwai(h, req.Mogwai)
	if err != nil {
		return nil, err
	}
	if m.Phase != PhaseBred {
		return nil, NewTransitionError(ErrMogwaiNotInBredPhase)
	}
	height := h.CurrentBlockHeight()
	if height-rec.Genesis < TimeTillHatch {
		// AssetCouldNotReceiveFunds is the reused code for a timer
		// violation here, per spec.md §8 scenario 1.
		return nil, NewTransitionError(ErrAssetCouldNotReceiveFunds)
	}

	hash := h.RandomHash([]byte("mogwai_hatch:" + req.Mogwai.String()))
	next := *m
	next.DNA = Breeding.Segment(m.DNA, hash)
	next.Rarity = Breeding.Bake(m.Rarity, hash)
	next.Phase = PhaseHatched

	newRec := &host.AssetRecord{ID: rec.ID, Genesis: rec.Genesis, Variant: &next}
	outputs := []host.Output{host.Mutated(newRec)}

	bump, err := bumpAchievement(h, req.Table, AchievementEggHatcher, 1)
	if err != nil {
		return nil, err
	}
	outputs = append(outputs, bump)
	return outputs, nil
}
