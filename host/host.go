// Package host defines the capability surface the game engines consume.
// Engines never touch a database, a clock, or an entropy source directly;
// every external effect goes through a Host implementation supplied by the
// embedder.
package host

import (
	"errors"
	"strconv"
)

// AssetID identifies an asset within the embedder's asset store.
type AssetID uint64

func (id AssetID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}

// FundID names a balance pool an asset can hold an escrow in.
type FundID uint32

// ErrAssetNotFound is returned by GetAsset when no asset has the given id.
var ErrAssetNotFound = errors.New("host: asset not found")

// ErrOwnership is returned by EnsureOwnership when the caller does not own
// the asset. It is distinct from transition-level business errors.
var ErrOwnership = errors.New("host: caller does not own asset")

// AssetRecord is the envelope every stored asset carries: an id, the block
// height at which it was created, and a variant payload (one of
// *battlemogs.Mogwai or *battlemogs.AchievementTable today; new variants are
// plugged in as new game engines are added).
type AssetRecord struct {
	ID       AssetID
	Genesis  uint64
	Variant  any
}

// AssetIterator is a lazy sequence of (id, record) pairs owned by a player.
type AssetIterator interface {
	Next() bool
	Asset() (AssetID, *AssetRecord)
	Err() error
}

// ConfigProvider exposes engine configuration without forcing either engine
// to depend on the other's config record type.
type ConfigProvider interface {
	// BattleMogs returns the BattleMogs transition_config record. The
	// concrete type is *battlemogs.Config; it is returned as any to avoid
	// an import cycle between host and battlemogs.
	BattleMogs() any
	// Dot4Gravity returns the Dot4Gravity transition_config record. The
	// concrete type is *dot4gravity.Config.
	Dot4Gravity() any
}

// Host is the full capability interface the core depends on. The asset,
// ownership and balance methods return an explicit error result;
// RandomHash, CurrentBlockHeight, TransitionConfig and NativeFundID have
// none. The core treats a host failure as a transition-level error and
// never partially commits.
type Host interface {
	// RandomHash is a deterministic verifiable-randomness source keyed by
	// subject. Two calls with different subjects within the same
	// transition return independent values; replays are reproducible.
	RandomHash(subject []byte) [32]byte

	// CurrentBlockHeight is monotonically non-decreasing across transitions.
	CurrentBlockHeight() uint64

	GetAsset(id AssetID) (*AssetRecord, error)
	IterateAssetsOf(owner string) (AssetIterator, error)
	EnsureOwnership(owner string, id AssetID) error

	TransitionConfig() ConfigProvider

	InspectAssetBalance(id AssetID, fund FundID) (uint64, error)
	DepositToAsset(id AssetID, from string, fund FundID, amount uint64) error
	WithdrawFromAsset(id AssetID, to string, fund FundID, amount uint64) error

	// NativeFundID is used when a transition is invoked without an
	// explicit payment asset.
	NativeFundID() FundID
}
