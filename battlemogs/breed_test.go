package battlemogs_test

import (
	"testing"

	"github.com/ajuna-network/ajunacore/battlemogs"
	"github.com/ajuna-network/ajunacore/internal/testutil"
)

func TestBreedRejectsSameAssetTwice(t *testing.T) {
	h := testutil.NewMockHost()
	h.Height = 1
	engine := battlemogs.NewEngine()
	mogwai, table := seedPlayer(t, h, engine, "alice")

	_, err := h.Apply(engine, "alice", battlemogs.TransitionBreed, battlemogs.Request{
		Mogwai: mogwai, Mogwai2: mogwai, Table: table,
	})
	if err == nil {
		t.Fatal("expected breeding a mogwai with itself to fail")
	}
	te, ok := err.(*battlemogs.TransitionError)
	if !ok || te.Code != battlemogs.ErrCannotUseSameAssetForBreeding {
		t.Fatalf("expected ErrCannotUseSameAssetForBreeding, got %v", err)
	}
}

func TestBreedWithForeignAssetBumpsPromiscuous(t *testing.T) {
	h := testutil.NewMockHost()
	h.Height = 1
	engine := battlemogs.NewEngine()
	mogwai1, table := seedPlayer(t, h, engine, "alice")
	mogwai2, table2 := seedPlayer(t, h, engine, "bob")

	h.Height = 1 + battlemogs.TimeTillHatch
	if _, err := h.Apply(engine, "alice", battlemogs.TransitionHatch, battlemogs.Request{Mogwai: mogwai1, Table: table}); err != nil {
		t.Fatalf("hatch alice's mogwai: %v", err)
	}
	if _, err := h.Apply(engine, "bob", battlemogs.TransitionHatch, battlemogs.Request{Mogwai: mogwai2, Table: table2}); err != nil {
		t.Fatalf("hatch bob's mogwai: %v", err)
	}

	outputs, err := h.Apply(engine, "alice", battlemogs.TransitionBreed, battlemogs.Request{
		Mogwai: mogwai1, Mogwai2: mogwai2, Table: table,
	})
	if err != nil {
		t.Fatalf("breed: %v", err)
	}
	if len(outputs) < 2 {
		t.Fatalf("expected a mint plus at least a promiscuous bump, got %d outputs", len(outputs))
	}

	tableRec, err := h.GetAsset(table)
	if err != nil {
		t.Fatalf("get table: %v", err)
	}
	at := tableRec.Variant.(*battlemogs.AchievementTable)
	if at.States[battlemogs.AchievementPromiscuous].Current != 1 {
		t.Fatalf("expected Promiscuous bumped to 1, got %d", at.States[battlemogs.AchievementPromiscuous].Current)
	}
}
