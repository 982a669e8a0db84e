package battlemogs

import "github.com/ajuna-network/ajunacore/host"

func init() {
	Register(TransitionMorph, handleMorph)
}

// handleMorph advances phase Hatched -> Matured -> Mastered -> Exalted,
// drawing randomness to re-bake DNA and possibly rarity, and bumps
// Morpheus. Fee is fee_price(Default). This transition is reserved (not
// present in the source) per spec.md §4.2; it is built here following the
// forward-only phase lifecycle from spec.md §3 and the same
// draw-then-compute-then-effect-then-emit shape every other transition
// follows.
func handleMorph(h host.Host, req Request) ([]host.Output, error) {
	if err := ownedBy(h, req.Account, req.Mogwai); err != nil {
		return nil, err
	}
	rec, m, err := asMogwai(h, req.Mogwai)
	if err != nil {
		return nil, err
	}
	next, ok := m.Phase.Next()
	if !ok {
		return nil, NewTransitionError(ErrMogwaiNotInBredPhase)
	}

	hash := h.RandomHash([]byte("morph:" + req.Mogwai.String()))

	fund := req.fund(h)
	fee := FeePrice(FeeDefault)
	if err := h.DepositToAsset(req.Mogwai, req.Account, fund, fee); err != nil {
		return nil, NewTransitionError(ErrAssetCouldNotReceiveFunds)
	}

	updated := *m
	updated.DNA = Breeding.Segment(m.DNA, hash)
	updated.Rarity = Breeding.Bake(m.Rarity, hash)
	updated.Phase = next

	newRec := &host.AssetRecord{ID: rec.ID, Genesis: rec.Genesis, Variant: &updated}
	outputs := []host.Output{host.Mutated(newRec)}

	bump, err := bumpAchievement(h, req.Table, AchievementMorpheus, 1)
	if err != nil {
		return nil, err
	}
	outputs = append(outputs, bump)
	return outputs, nil
}
