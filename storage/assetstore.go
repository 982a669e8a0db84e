package storage

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/ajuna-network/ajunacore/crypto"
	"github.com/ajuna-network/ajunacore/events"
	"github.com/ajuna-network/ajunacore/host"
)

// registerPrefix records a state-key prefix into statePrefixes so that
// ComputeRoot() always covers it, grounded directly on the teacher's
// storage/statedb.go registerPrefix pattern.
func registerPrefix(p string) string {
	statePrefixes = append(statePrefixes, p)
	return p
}

var statePrefixes []string

var (
	prefixAsset   = registerPrefix("asset:")
	prefixOwner   = registerPrefix("owner:")
	prefixBalance = registerPrefix("balance:")
)

type assetSnapshot struct {
	dirty   map[string][]byte
	deleted map[string]bool
}

// storedAsset is the JSON-on-disk shape of an asset record: the envelope
// plus an owner and a type tag so the Variant (an `any`) round-trips.
type storedAsset struct {
	ID      uint64          `json:"id"`
	Genesis uint64          `json:"genesis"`
	Owner   string          `json:"owner"`
	Kind    string          `json:"kind"`
	Variant json.RawMessage `json:"variant"`
}

// VariantCodec lets a game package register how its asset variants
// marshal to/from JSON without storage importing battlemogs/dot4gravity
// directly (avoiding an import cycle).
type VariantCodec interface {
	Kind(variant any) (string, bool)
	Encode(variant any) (json.RawMessage, error)
	Decode(kind string, raw json.RawMessage) (any, error)
}

// AssetStore implements the asset-facing slice of host.Host on top of a DB
// with an in-memory write buffer, snapshot/rollback, and deterministic
// state-root computation — the teacher's storage/statedb.go StateDB
// pattern, generalized from accounts/templates/sessions/listings to game
// assets plus an asset-attached balance ledger.
type AssetStore struct {
	db        DB
	codec     VariantCodec
	emitter   *events.Emitter
	dirty     map[string][]byte
	deleted   map[string]bool
	snapshots []assetSnapshot
}

// NewAssetStore creates an AssetStore backed by db, encoding variants via
// codec and emitting lifecycle events through emitter (may be nil).
func NewAssetStore(db DB, codec VariantCodec, emitter *events.Emitter) *AssetStore {
	return &AssetStore{
		db:      db,
		codec:   codec,
		emitter: emitter,
		dirty:   make(map[string][]byte),
		deleted: make(map[string]bool),
	}
}

func (s *AssetStore) get(key string) ([]byte, error) {
	if s.deleted[key] {
		return nil, ErrNotFound
	}
	if v, ok := s.dirty[key]; ok {
		return v, nil
	}
	return s.db.Get([]byte(key))
}

func (s *AssetStore) set(key string, val []byte) {
	delete(s.deleted, key)
	s.dirty[key] = val
}

func (s *AssetStore) del(key string) {
	delete(s.dirty, key)
	s.deleted[key] = true
}

func assetKey(id host.AssetID) string {
	return prefixAsset + strconv.FormatUint(uint64(id), 10)
}

// ---- Asset read/write ----

// GetAsset implements the read half of host.Host.
func (s *AssetStore) GetAsset(id host.AssetID) (*host.AssetRecord, error) {
	data, err := s.get(assetKey(id))
	if errors.Is(err, ErrNotFound) {
		return nil, host.ErrAssetNotFound
	}
	if err != nil {
		return nil, err
	}
	var sa storedAsset
	if err := json.Unmarshal(data, &sa); err != nil {
		return nil, err
	}
	variant, err := s.codec.Decode(sa.Kind, sa.Variant)
	if err != nil {
		return nil, err
	}
	return &host.AssetRecord{ID: host.AssetID(sa.ID), Genesis: sa.Genesis, Variant: variant}, nil
}

// OwnerOf returns the current owner of asset id.
func (s *AssetStore) OwnerOf(id host.AssetID) (string, error) {
	data, err := s.get(assetKey(id))
	if errors.Is(err, ErrNotFound) {
		return "", host.ErrAssetNotFound
	}
	if err != nil {
		return "", err
	}
	var sa storedAsset
	if err := json.Unmarshal(data, &sa); err != nil {
		return "", err
	}
	return sa.Owner, nil
}

// EnsureOwnership implements host.Host.
func (s *AssetStore) EnsureOwnership(owner string, id host.AssetID) error {
	actual, err := s.OwnerOf(id)
	if err != nil {
		return err
	}
	if actual != owner {
		return host.ErrOwnership
	}
	return nil
}

// PutAssetOwned stores rec with the given owner (used when applying a
// Minted output, which is the only output kind that introduces a new
// owner relationship).
func (s *AssetStore) PutAssetOwned(rec *host.AssetRecord, owner string) error {
	kind, ok := s.codec.Kind(rec.Variant)
	if !ok {
		return fmt.Errorf("assetstore: unknown variant type for asset %d", rec.ID)
	}
	raw, err := s.codec.Encode(rec.Variant)
	if err != nil {
		return err
	}
	sa := storedAsset{ID: uint64(rec.ID), Genesis: rec.Genesis, Owner: owner, Kind: kind, Variant: raw}
	data, err := json.Marshal(sa)
	if err != nil {
		return err
	}
	s.set(assetKey(rec.ID), data)
	s.appendOwnerIndex(owner, rec.ID)
	if s.emitter != nil {
		s.emitter.Emit(events.Event{Type: events.EventAssetMinted, Data: map[string]any{"owner": owner, "asset_id": rec.ID.String()}})
	}
	return nil
}

// PutAsset updates an existing asset's variant, preserving its current
// owner (used when applying a Mutated output).
func (s *AssetStore) PutAsset(rec *host.AssetRecord) error {
	owner, err := s.OwnerOf(rec.ID)
	if err != nil {
		return err
	}
	kind, ok := s.codec.Kind(rec.Variant)
	if !ok {
		return fmt.Errorf("assetstore: unknown variant type for asset %d", rec.ID)
	}
	raw, err := s.codec.Encode(rec.Variant)
	if err != nil {
		return err
	}
	sa := storedAsset{ID: uint64(rec.ID), Genesis: rec.Genesis, Owner: owner, Kind: kind, Variant: raw}
	data, err := json.Marshal(sa)
	if err != nil {
		return err
	}
	s.set(assetKey(rec.ID), data)
	return nil
}

// DeleteAsset removes an asset and its owner-index entry (used when
// applying a Consumed output).
func (s *AssetStore) DeleteAsset(id host.AssetID) error {
	owner, err := s.OwnerOf(id)
	if err != nil {
		return err
	}
	s.del(assetKey(id))
	s.removeOwnerIndex(owner, id)
	if s.emitter != nil {
		s.emitter.Emit(events.Event{Type: events.EventAssetConsumed, Data: map[string]any{"owner": owner, "asset_id": id.String()}})
	}
	return nil
}

// ApplyOutputs commits an engine's Output list, the way the host's atomic
// commit layer does per spec.md §2's data-flow contract: Minted assets are
// owned by acting, Mutated assets keep their existing owner, Consumed
// assets are removed.
func (s *AssetStore) ApplyOutputs(acting string, outputs []host.Output) error {
	for _, out := range outputs {
		switch out.Kind {
		case host.OutputMinted:
			if err := s.PutAssetOwned(out.Asset, acting); err != nil {
				return err
			}
		case host.OutputMutated:
			if err := s.PutAsset(out.Asset); err != nil {
				return err
			}
		case host.OutputConsumed:
			if err := s.DeleteAsset(out.ID); err != nil {
				return err
			}
		}
	}
	return nil
}

// ---- Owner index ----

func ownerKey(owner string) string { return prefixOwner + owner }

func (s *AssetStore) ownerList(owner string) ([]uint64, error) {
	data, err := s.get(ownerKey(owner))
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var ids []uint64
	if err := json.Unmarshal(data, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

func (s *AssetStore) appendOwnerIndex(owner string, id host.AssetID) {
	ids, _ := s.ownerList(owner)
	for _, existing := range ids {
		if existing == uint64(id) {
			return
		}
	}
	ids = append(ids, uint64(id))
	data, _ := json.Marshal(ids)
	s.set(ownerKey(owner), data)
}

func (s *AssetStore) removeOwnerIndex(owner string, id host.AssetID) {
	ids, _ := s.ownerList(owner)
	filtered := ids[:0]
	for _, existing := range ids {
		if existing != uint64(id) {
			filtered = append(filtered, existing)
		}
	}
	data, _ := json.Marshal(filtered)
	s.set(ownerKey(owner), data)
}

// assetIterator implements host.AssetIterator over a snapshot of ids.
type assetIterator struct {
	store *AssetStore
	ids   []uint64
	idx   int
	err   error
}

func (it *assetIterator) Next() bool {
	it.idx++
	return it.idx < len(it.ids)
}

func (it *assetIterator) Asset() (host.AssetID, *host.AssetRecord) {
	id := host.AssetID(it.ids[it.idx])
	rec, err := it.store.GetAsset(id)
	if err != nil {
		it.err = err
		return id, nil
	}
	return id, rec
}

func (it *assetIterator) Err() error { return it.err }

// IterateAssetsOf implements host.Host.
func (s *AssetStore) IterateAssetsOf(owner string) (host.AssetIterator, error) {
	ids, err := s.ownerList(owner)
	if err != nil {
		return nil, err
	}
	return &assetIterator{store: s, ids: ids, idx: -1}, nil
}

// ---- Balance escrow ----

func balanceKey(id host.AssetID, fund host.FundID) string {
	return prefixBalance + strconv.FormatUint(uint64(id), 10) + ":" + strconv.FormatUint(uint64(fund), 10)
}

// InspectAssetBalance implements host.Host.
func (s *AssetStore) InspectAssetBalance(id host.AssetID, fund host.FundID) (uint64, error) {
	data, err := s.get(balanceKey(id, fund))
	if errors.Is(err, ErrNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(data), nil
}

func (s *AssetStore) setBalance(id host.AssetID, fund host.FundID, amount uint64) {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], amount)
	s.set(balanceKey(id, fund), buf[:])
}

// DepositToAsset implements host.Host: moves value from a player account
// into an asset-attached escrow. The reference host models player
// accounts as an unlimited faucet (no native-token ledger is in scope per
// spec.md §1's non-goals); only the asset-side balance is tracked.
func (s *AssetStore) DepositToAsset(id host.AssetID, from string, fund host.FundID, amount uint64) error {
	if _, err := s.GetAsset(id); err != nil {
		return err
	}
	balance, err := s.InspectAssetBalance(id, fund)
	if err != nil {
		return err
	}
	next := balance + amount
	if next < balance { // saturate on overflow
		next = ^uint64(0)
	}
	s.setBalance(id, fund, next)
	return nil
}

// WithdrawFromAsset implements host.Host: moves value from an
// asset-attached escrow to a player account.
func (s *AssetStore) WithdrawFromAsset(id host.AssetID, to string, fund host.FundID, amount uint64) error {
	if _, err := s.GetAsset(id); err != nil {
		return err
	}
	balance, err := s.InspectAssetBalance(id, fund)
	if err != nil {
		return err
	}
	if amount > balance {
		return fmt.Errorf("assetstore: insufficient escrow balance for asset %d fund %d: have %d want %d", id, fund, balance, amount)
	}
	s.setBalance(id, fund, balance-amount)
	return nil
}

// ---- Snapshot / Rollback / Commit ----

// Snapshot saves the current write buffer and returns a snapshot ID.
func (s *AssetStore) Snapshot() (int, error) {
	snap := assetSnapshot{
		dirty:   make(map[string][]byte, len(s.dirty)),
		deleted: make(map[string]bool, len(s.deleted)),
	}
	for k, v := range s.dirty {
		cp := make([]byte, len(v))
		copy(cp, v)
		snap.dirty[k] = cp
	}
	for k, v := range s.deleted {
		snap.deleted[k] = v
	}
	s.snapshots = append(s.snapshots, snap)
	return len(s.snapshots) - 1, nil
}

// RevertToSnapshot restores the write buffer to a previously saved
// snapshot (teacher's storage/statedb.go pattern, deep-copied so later
// writes cannot corrupt the saved snapshot).
func (s *AssetStore) RevertToSnapshot(id int) error {
	if id < 0 || id >= len(s.snapshots) {
		return fmt.Errorf("invalid snapshot id %d", id)
	}
	snap := s.snapshots[id]

	dirty := make(map[string][]byte, len(snap.dirty))
	for k, v := range snap.dirty {
		cp := make([]byte, len(v))
		copy(cp, v)
		dirty[k] = cp
	}
	deleted := make(map[string]bool, len(snap.deleted))
	for k, v := range snap.deleted {
		deleted[k] = v
	}

	s.dirty = dirty
	s.deleted = deleted
	s.snapshots = s.snapshots[:id]
	return nil
}

// ComputeRoot returns the deterministic hash of the complete asset-store
// state: merges persisted entries with the write buffer, excludes
// deletions, sorts keys, and length-prefix-encodes each key-value pair
// before hashing — the teacher's storage/statedb.go ComputeRoot routine,
// unchanged in shape, generalized to this store's key prefixes. This is
// the wire-format ledger-replay contract from spec.md §6: asset: entries
// are rehashed through host.EncodeAsset's byte-stable envelope rather than
// their JSON storage bytes, so the root does not change if the JSON
// library's output happens to change (field order, whitespace); owner:
// entries (small JSON id lists) and balance: entries (8-byte big-endian
// amounts) are hashed as stored.
func (s *AssetStore) ComputeRoot() string {
	merged := make(map[string][]byte)
	for _, prefix := range statePrefixes {
		it := s.db.NewIterator([]byte(prefix))
		for it.Next() {
			k := string(it.Key())
			v := make([]byte, len(it.Value()))
			copy(v, it.Value())
			merged[k] = v
		}
		it.Release()
	}
	for k, v := range s.dirty {
		merged[k] = v
	}
	for k := range s.deleted {
		delete(merged, k)
	}

	keys := make([]string, 0, len(merged))
	for k := range merged {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var buf bytes.Buffer
	var lenBuf [4]byte
	for _, k := range keys {
		v := merged[k]
		if strings.HasPrefix(k, prefixAsset) {
			if wire, err := rootEncodingOf(v); err == nil {
				v = wire
			}
		}
		kb := []byte(k)
		binary.BigEndian.PutUint32(lenBuf[:], uint32(len(kb)))
		buf.Write(lenBuf[:])
		buf.Write(kb)
		binary.BigEndian.PutUint32(lenBuf[:], uint32(len(v)))
		buf.Write(lenBuf[:])
		buf.Write(v)
	}
	return crypto.Hash(buf.Bytes())
}

// rootEncodingOf re-encodes a JSON-stored asset record through
// host.EncodeAsset for ComputeRoot. Falls back to the raw JSON bytes (via
// the caller ignoring the error) for a kind no game package has registered
// yet, so an unrecognized variant never panics a root computation.
func rootEncodingOf(jsonValue []byte) ([]byte, error) {
	var sa storedAsset
	if err := json.Unmarshal(jsonValue, &sa); err != nil {
		return nil, err
	}
	return host.EncodeAsset(host.AssetID(sa.ID), sa.Genesis, sa.Owner, sa.Kind, sa.Variant)
}

// Commit atomically flushes the write buffer to the underlying DB via a
// WriteBatch and clears it.
func (s *AssetStore) Commit() error {
	batch := s.db.NewBatch()
	for k, v := range s.dirty {
		batch.Set([]byte(k), v)
	}
	for k := range s.deleted {
		batch.Delete([]byte(k))
	}
	if err := batch.Write(); err != nil {
		return err
	}
	s.dirty = make(map[string][]byte)
	s.deleted = make(map[string]bool)
	s.snapshots = nil
	return nil
}
