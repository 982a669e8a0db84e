package battlemogs_test

import (
	"testing"

	"github.com/ajuna-network/ajunacore/battlemogs"
	"github.com/ajuna-network/ajunacore/host"
	"github.com/ajuna-network/ajunacore/internal/testutil"
)

// seedPlayer registers account and mints it one mogwai, returning the
// mogwai id and the achievement-table id.
func seedPlayer(t *testing.T, h *testutil.MockHost, engine *battlemogs.Engine, account string) (host.AssetID, host.AssetID) {
	t.Helper()
	if _, err := h.Apply(engine, account, battlemogs.TransitionRegisterPlayer, battlemogs.Request{}); err != nil {
		t.Fatalf("register player: %v", err)
	}
	if _, err := h.Apply(engine, account, battlemogs.TransitionCreateMogwai, battlemogs.Request{}); err != nil {
		t.Fatalf("create mogwai: %v", err)
	}

	var mogwai, table host.AssetID
	it, err := h.IterateAssetsOf(account)
	if err != nil {
		t.Fatalf("iterate assets: %v", err)
	}
	for it.Next() {
		id, rec := it.Asset()
		switch rec.Variant.(type) {
		case *battlemogs.Mogwai:
			mogwai = id
		case *battlemogs.AchievementTable:
			table = id
		}
	}
	return mogwai, table
}

func TestHatchBeforeTimerRejected(t *testing.T) {
	h := testutil.NewMockHost()
	h.Height = 1
	engine := battlemogs.NewEngine()
	mogwai, table := seedPlayer(t, h, engine, "alice")

	_, err := h.Apply(engine, "alice", battlemogs.TransitionHatch, battlemogs.Request{Mogwai: mogwai, Table: table})
	if err == nil {
		t.Fatal("expected hatch before time_till_hatch to fail")
	}
	te, ok := err.(*battlemogs.TransitionError)
	if !ok || te.Code != battlemogs.ErrAssetCouldNotReceiveFunds {
		t.Fatalf("expected ErrAssetCouldNotReceiveFunds, got %v", err)
	}
}

func TestHatchAfterTimerSucceeds(t *testing.T) {
	h := testutil.NewMockHost()
	h.Height = 1
	engine := battlemogs.NewEngine()
	mogwai, table := seedPlayer(t, h, engine, "alice")

	h.Height = 1 + battlemogs.TimeTillHatch
	outputs, err := h.Apply(engine, "alice", battlemogs.TransitionHatch, battlemogs.Request{Mogwai: mogwai, Table: table})
	if err != nil {
		t.Fatalf("hatch: %v", err)
	}
	if len(outputs) == 0 {
		t.Fatal("expected at least one output")
	}

	rec, err := h.GetAsset(mogwai)
	if err != nil {
		t.Fatalf("get mogwai: %v", err)
	}
	m := rec.Variant.(*battlemogs.Mogwai)
	if m.Phase != battlemogs.PhaseHatched {
		t.Fatalf("expected Hatched phase, got %v", m.Phase)
	}

	tableRec, err := h.GetAsset(table)
	if err != nil {
		t.Fatalf("get table: %v", err)
	}
	at := tableRec.Variant.(*battlemogs.AchievementTable)
	if at.States[battlemogs.AchievementEggHatcher].Current != 1 {
		t.Fatalf("expected EggHatcher bumped to 1, got %d", at.States[battlemogs.AchievementEggHatcher].Current)
	}
}

func TestHatchRejectsNonOwner(t *testing.T) {
	h := testutil.NewMockHost()
	h.Height = 1
	engine := battlemogs.NewEngine()
	mogwai, table := seedPlayer(t, h, engine, "alice")
	h.Height = 1 + battlemogs.TimeTillHatch

	_, err := h.Apply(engine, "mallory", battlemogs.TransitionHatch, battlemogs.Request{Mogwai: mogwai, Table: table})
	if err == nil {
		t.Fatal("expected ownership failure")
	}
	if _, ok := err.(*battlemogs.AssetOwnershipError); !ok {
		t.Fatalf("expected AssetOwnershipError, got %T: %v", err, err)
	}
}
