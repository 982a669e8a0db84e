package battlemogs

import "github.com/ajuna-network/ajunacore/host"

func init() {
	Register(TransitionBreed, handleBreed)
}

// handleBreed requires two distinct ids, caller under max_mogwais, first
// mogwai owned by caller in non-Bred phase. The second mogwai need not be
// owned; if not, bumps Promiscuous. Deposits pairing(r1, r2) from the
// breeder to the second mogwai's escrow. Forms child DNA via
// Breeding.Pair. If the computed packed rarity equals Mythical, bumps
// LegendBreeder (spec.md §4.2's Breed; concrete scenario 2 in spec.md
// §8).
func handleBreed(h host.Host, req Request) ([]host.Output, error) {
	if req.Mogwai == req.Mogwai2 {
		return nil, NewTransitionError(ErrCannotUseSameAssetForBreeding)
	}
	cfg := battlemogsConfig(h)
	owned, err := countOwnedMogwais(h, req.Account)
	if err != nil {
		return nil, err
	}
	if owned > int(cfg.MaxMogwais) {
		return nil, NewTransitionError(ErrMogwaiLimitReached)
	}

	if err := ownedBy(h, req.Account, req.Mogwai); err != nil {
		return nil, err
	}
	_, parent1, err := asMogwai(h, req.Mogwai)
	if err != nil {
		return nil, err
	}
	if parent1.Phase == PhaseBred {
		return nil, NewTransitionError(ErrMogwaiStillInBredPhase)
	}

	_, parent2, err := asMogwai(h, req.Mogwai2)
	if err != nil {
		return nil, err
	}
	if parent2.Phase == PhaseBred {
		return nil, NewTransitionError(ErrMogwaiStillInBredPhase)
	}

	promiscuous := h.EnsureOwnership(req.Account, req.Mogwai2) != nil

	height := h.CurrentBlockHeight()
	hash := h.RandomHash([]byte("breed_next_gen:" + req.Mogwai.String() + ":" + req.Mogwai2.String()))
	rarityLow, nextGen, maxRarity := Generation.NextGen(parent1.Generation, parent1.Rarity, parent2.Generation, parent2.Rarity, hash)
	packed := (byte(maxRarity) << 4) | byte(rarityLow)
	rarity := RarityFromU8(packed & 0x0F)

	fund := req.fund(h)
	price := Pairing(parent1.Rarity, parent2.Rarity)
	if price > 0 {
		if err := h.DepositToAsset(req.Mogwai2, req.Account, fund, price); err != nil {
			return nil, NewTransitionError(ErrAssetCouldNotReceiveFunds)
		}
	}

	breedType := CalculateBreedType(height)
	childDNA := Breeding.Pair(breedType, parent1.DNA[0], parent2.DNA[0])

	nonce := (uint64(req.Mogwai) + uint64(req.Mogwai2)) % 31
	id := mintAssetID(h, []byte("breed:"+req.Mogwai.String()+":"+req.Mogwai2.String()), nonce)
	child := &Mogwai{DNA: childDNA, Generation: nextGen, Rarity: rarity, Phase: PhaseBred}
	rec := &host.AssetRecord{ID: id, Genesis: height, Variant: child}
	outputs := []host.Output{host.Minted(rec)}

	if promiscuous {
		bump, err := bumpAchievement(h, req.Table, AchievementPromiscuous, 1)
		if err != nil {
			return nil, err
		}
		outputs = append(outputs, bump)
	}
	if packed == byte(RarityMythical) {
		bump, err := bumpAchievement(h, req.Table, AchievementLegendBreeder, 1)
		if err != nil {
			return nil, err
		}
		outputs = append(outputs, bump)
	}
	return outputs, nil
}
