// Package indexer maintains secondary lookup tables the AssetStore does
// not itself need: which Dot4Gravity games a player participates in. The
// BattleMogs owner->asset index lives on storage.AssetStore directly since
// every asset has exactly one owner; a Dot4Gravity game has two, which is
// the case this package still earns its keep on, grounded on the teacher's
// indexer.go player->session lookup.
package indexer

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/ajuna-network/ajunacore/events"
	"github.com/ajuna-network/ajunacore/storage"
)

const prefixPlayerGame = "idx:player:game:"

// Indexer subscribes to engine lifecycle events and updates the
// player->game lookup table.
type Indexer struct {
	db      storage.DB
	emitter *events.Emitter
}

// New creates an Indexer backed by db and subscribes to relevant events.
func New(db storage.DB, emitter *events.Emitter) *Indexer {
	idx := &Indexer{db: db, emitter: emitter}
	emitter.Subscribe(events.EventAssetMinted, idx.onGameCreated)
	return idx
}

// GetGamesByPlayer returns all game ids a player has participated in.
func (idx *Indexer) GetGamesByPlayer(player string) ([]string, error) {
	return idx.getList(prefixPlayerGame + player)
}

// NoteGame explicitly records that both players participate in gameID.
// Dot4Gravity games are not minted as host.Host assets (spec.md §4.5 has
// no such concept), so the event path alone cannot discover both
// participants; an embedder calls this directly after State.NewGame.
func (idx *Indexer) NoteGame(gameID string, players ...string) error {
	for _, p := range players {
		if p == "" {
			continue
		}
		if err := idx.addToList(prefixPlayerGame+p, gameID); err != nil {
			return fmt.Errorf("index game %s for player %s: %w", gameID, p, err)
		}
	}
	return nil
}

// onGameCreated is kept subscribed for forward compatibility with any
// future asset-backed game record; today NoteGame is the only writer.
func (idx *Indexer) onGameCreated(ev events.Event) {
	gameID, _ := ev.Data["game_id"].(string)
	players, _ := ev.Data["players"].([]any)
	if gameID == "" {
		return
	}
	for _, p := range players {
		player, _ := p.(string)
		if player == "" {
			continue
		}
		if err := idx.addToList(prefixPlayerGame+player, gameID); err != nil {
			log.Printf("[indexer] game index write failed (player=%s game=%s): %v", player, gameID, err)
		}
	}
}

// ---- list helpers ----

func (idx *Indexer) getList(key string) ([]string, error) {
	data, err := idx.db.Get([]byte(key))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, nil // empty list
		}
		return nil, err
	}
	var ids []string
	if err := json.Unmarshal(data, &ids); err != nil {
		return nil, fmt.Errorf("indexer unmarshal: %w", err)
	}
	return ids, nil
}

func (idx *Indexer) addToList(key, value string) error {
	ids, err := idx.getList(key)
	if err != nil {
		return fmt.Errorf("read list: %w", err)
	}
	for _, id := range ids {
		if id == value {
			return nil // already present
		}
	}
	ids = append(ids, value)
	data, err := json.Marshal(ids)
	if err != nil {
		return err
	}
	return idx.db.Set([]byte(key), data)
}
