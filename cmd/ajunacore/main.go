// Command ajunacore stands up a local BattleMogs + Dot4Gravity host and
// runs a handful of sample transitions end to end, the way the teacher's
// cmd/node bootstraps a validator: parse flags, open storage, wire
// engines, log what happened.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/ajuna-network/ajunacore/battlemogs"
	"github.com/ajuna-network/ajunacore/config"
	"github.com/ajuna-network/ajunacore/crypto"
	"github.com/ajuna-network/ajunacore/dot4gravity"
	"github.com/ajuna-network/ajunacore/events"
	"github.com/ajuna-network/ajunacore/host"
	"github.com/ajuna-network/ajunacore/indexer"
	"github.com/ajuna-network/ajunacore/player"
	"github.com/ajuna-network/ajunacore/storage"
)

func main() {
	cfgPath := flag.String("config", "config.json", "path to config file")
	keyPath := flag.String("key", "player.key", "path to player keystore file")
	genKey := flag.Bool("genkey", false, "generate a new player key and exit")
	flag.Parse()

	password := os.Getenv("AJUNA_PASSWORD")
	if password == "" {
		log.Println("WARNING: AJUNA_PASSWORD not set — keystore will use an empty password")
	}

	if *genKey {
		p, err := player.Generate()
		if err != nil {
			log.Fatal(err)
		}
		if err := player.SaveKey(*keyPath, password, p.PrivKey()); err != nil {
			log.Fatal(err)
		}
		fmt.Printf("Generated key. Account: %s\n", p.Account())
		fmt.Printf("Saved to: %s\n", *keyPath)
		return
	}

	cfg, err := loadConfig(*cfgPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	if err := os.MkdirAll(cfg.DataDir, 0755); err != nil {
		log.Fatalf("mkdir data dir: %v", err)
	}
	db, err := storage.NewLevelDB(cfg.DataDir + "/state")
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	defer db.Close()

	emitter := events.NewEmitter()
	idx := indexer.New(db, emitter)
	store := storage.NewAssetStore(db, battlemogs.Codec{}, emitter)
	nodeHost := &localHost{store: store, cfg: cfg}

	alice, err := player.Generate()
	if err != nil {
		log.Fatal(err)
	}
	bob, err := player.Generate()
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("alice account: %s", alice.Account())
	log.Printf("bob account:   %s", bob.Account())

	mogwaiEngine := battlemogs.NewEngine()

	nodeHost.height = 1
	if _, err := applyBattleMogs(nodeHost, mogwaiEngine, alice.Account(), battlemogs.TransitionRegisterPlayer, battlemogs.Request{}); err != nil {
		log.Fatalf("register alice: %v", err)
	}
	if _, err := applyBattleMogs(nodeHost, mogwaiEngine, bob.Account(), battlemogs.TransitionRegisterPlayer, battlemogs.Request{}); err != nil {
		log.Fatalf("register bob: %v", err)
	}

	nodeHost.height = 2
	outputs, err := applyBattleMogs(nodeHost, mogwaiEngine, alice.Account(), battlemogs.TransitionCreateMogwai, battlemogs.Request{})
	if err != nil {
		log.Fatalf("create mogwai: %v", err)
	}
	log.Printf("alice minted %d asset(s)", len(outputs))

	dotEngine := dot4gravity.NewEngine()
	game := dotEngine.NewGame(alice.Account(), bob.Account(), nil)
	if err := idx.NoteGame("demo-game-1", alice.Account(), bob.Account()); err != nil {
		log.Printf("index game: %v", err)
	}
	log.Printf("dot4gravity game created, phase=%v, seed=%d", game.Phase, game.Seed)

	log.Printf("state root: %s", store.ComputeRoot())
}

func loadConfig(path string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Printf("Config file not found at %s, using defaults.", path)
			return config.DefaultConfig(), nil
		}
		return nil, err
	}
	return cfg, nil
}

// applyBattleMogs runs a transition and commits its outputs, the small
// slice of "host" responsibility spec.md §2 assigns to the embedder.
func applyBattleMogs(h *localHost, engine *battlemogs.Engine, account string, id battlemogs.TransitionID, req battlemogs.Request) ([]host.Output, error) {
	req.Account = account
	outputs, err := engine.Apply(h, id, req)
	if err != nil {
		return nil, err
	}
	if err := h.store.ApplyOutputs(account, outputs); err != nil {
		return nil, err
	}
	return outputs, h.store.Commit()
}

// localHost implements host.Host for the demo CLI: a persistent
// AssetStore, a height counter the caller advances explicitly (no block
// production loop in scope), and fund 0 as the native escrow fund.
type localHost struct {
	store  *storage.AssetStore
	cfg    *config.Config
	height uint64
}

func (h *localHost) RandomHash(subject []byte) [32]byte {
	return [32]byte(crypto.HashBytes(append([]byte(fmt.Sprintf("%d:", h.height)), subject...)))
}

func (h *localHost) CurrentBlockHeight() uint64 { return h.height }

func (h *localHost) GetAsset(id host.AssetID) (*host.AssetRecord, error) {
	return h.store.GetAsset(id)
}

func (h *localHost) IterateAssetsOf(owner string) (host.AssetIterator, error) {
	return h.store.IterateAssetsOf(owner)
}

func (h *localHost) EnsureOwnership(owner string, id host.AssetID) error {
	return h.store.EnsureOwnership(owner, id)
}

func (h *localHost) TransitionConfig() host.ConfigProvider { return localConfigProvider{h.cfg} }

func (h *localHost) InspectAssetBalance(id host.AssetID, fund host.FundID) (uint64, error) {
	return h.store.InspectAssetBalance(id, fund)
}

func (h *localHost) DepositToAsset(id host.AssetID, from string, fund host.FundID, amount uint64) error {
	return h.store.DepositToAsset(id, from, fund, amount)
}

func (h *localHost) WithdrawFromAsset(id host.AssetID, to string, fund host.FundID, amount uint64) error {
	return h.store.WithdrawFromAsset(id, to, fund, amount)
}

func (h *localHost) NativeFundID() host.FundID { return 0 }

type localConfigProvider struct{ cfg *config.Config }

func (p localConfigProvider) BattleMogs() any  { return p.cfg.BattleMogs }
func (p localConfigProvider) Dot4Gravity() any { return p.cfg.Dot4Gravity }
