package battlemogs

import "github.com/ajuna-network/ajunacore/host"

func init() {
	Register(TransitionRegisterPlayer, handleRegisterPlayer)
}

// handleRegisterPlayer mints an achievement table for a player who does
// not already have one (spec.md §4.2's RegisterPlayer).
func handleRegisterPlayer(h host.Host, req Request) ([]host.Output, error) {
	it, err := h.IterateAssetsOf(req.Account)
	if err != nil {
		return nil, err
	}
	for it.Next() {
		_, rec := it.Asset()
		if _, ok := rec.Variant.(*AchievementTable); ok {
			return nil, NewTransitionError(ErrPlayerAlreadyHasAchievementTable)
		}
	}
	if err := it.Err(); err != nil {
		return nil, err
	}

	cfg := battlemogsConfig(h)
	table := &AchievementTable{}
	for k := AchievementKind(0); k < achievementKindCount; k++ {
		table.States[k] = AchievementState{Current: 0, Target: cfg.TargetFor(k)}
	}

	id := mintAssetID(h, []byte("register_player:"+req.Account), h.CurrentBlockHeight())
	rec := &host.AssetRecord{ID: id, Genesis: h.CurrentBlockHeight(), Variant: table}
	return []host.Output{host.Minted(rec)}, nil
}
