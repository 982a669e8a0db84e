package battlemogs

import "github.com/ajuna-network/ajunacore/host"

func init() {
	Register(TransitionCreateMogwai, handleCreateMogwai)
}

// countOwnedMogwais counts how many Mogwai assets account currently owns.
func countOwnedMogwais(h host.Host, account string) (int, error) {
	it, err := h.IterateAssetsOf(account)
	if err != nil {
		return 0, err
	}
	n := 0
	for it.Next() {
		_, rec := it.Asset()
		if _, ok := rec.Variant.(*Mogwai); ok {
			n++
		}
	}
	return n, it.Err()
}

// handleCreateMogwai mints a fresh Bred-phase mogwai (spec.md §4.2's
// CreateMogwai).
func handleCreateMogwai(h host.Host, req Request) ([]host.Output, error) {
	cfg := battlemogsConfig(h)
	owned, err := countOwnedMogwais(h, req.Account)
	if err != nil {
		return nil, err
	}
	if owned > int(cfg.MaxMogwais) {
		return nil, NewTransitionError(ErrMogwaiLimitReached)
	}

	height := h.CurrentBlockHeight()
	hash1 := h.RandomHash([]byte("create_mogwai:" + req.Account))
	hash2 := h.RandomHash([]byte("extend_mogwai:" + req.Account))

	rarityLow, nextGen, maxRarity := Generation.NextGen(MinGeneration, RarityCommon, MinGeneration, RarityCommon, hash2)
	packed := (byte(maxRarity) << 4) | byte(rarityLow)
	rarity := RarityFromU8(packed & 0x0F)

	breedType := CalculateBreedType(height)
	dna := Breeding.Pair(breedType, hash1, hash2)

	id := mintAssetID(h, []byte("create_mogwai:"+req.Account), height)
	mogwai := &Mogwai{DNA: dna, Generation: nextGen, Rarity: rarity, Phase: PhaseBred}
	rec := &host.AssetRecord{ID: id, Genesis: height, Variant: mogwai}
	return []host.Output{host.Minted(rec)}, nil
}
