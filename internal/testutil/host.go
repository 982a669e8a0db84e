package testutil

import (
	"crypto/sha256"

	"github.com/ajuna-network/ajunacore/battlemogs"
	"github.com/ajuna-network/ajunacore/dot4gravity"
	"github.com/ajuna-network/ajunacore/host"
	"github.com/ajuna-network/ajunacore/storage"
)

// MockHost is a minimal in-memory host.Host for engine tests: a
// MemDB-backed AssetStore, a monotonic block-height counter the test
// controls directly, and SHA-256-keyed deterministic "randomness" — no
// entropy source, so fixtures are reproducible.
type MockHost struct {
	Store        *storage.AssetStore
	Height       uint64
	BattleMogsCf *battlemogs.Config
	Dot4GravCf   *dot4gravity.Config
	nativeFund   host.FundID
}

// NewMockHost builds a MockHost with default engine configs and fund 0 as
// the native fund.
func NewMockHost() *MockHost {
	return &MockHost{
		Store:        NewAssetStore(battlemogs.Codec{}),
		Height:       0,
		BattleMogsCf: battlemogs.DefaultConfig(),
		Dot4GravCf:   dot4gravity.DefaultConfig(),
	}
}

func (h *MockHost) RandomHash(subject []byte) [32]byte {
	return sha256.Sum256(subject)
}

func (h *MockHost) CurrentBlockHeight() uint64 { return h.Height }

func (h *MockHost) GetAsset(id host.AssetID) (*host.AssetRecord, error) {
	return h.Store.GetAsset(id)
}

func (h *MockHost) IterateAssetsOf(owner string) (host.AssetIterator, error) {
	return h.Store.IterateAssetsOf(owner)
}

func (h *MockHost) EnsureOwnership(owner string, id host.AssetID) error {
	return h.Store.EnsureOwnership(owner, id)
}

func (h *MockHost) TransitionConfig() host.ConfigProvider { return mockConfigProvider{h} }

func (h *MockHost) InspectAssetBalance(id host.AssetID, fund host.FundID) (uint64, error) {
	return h.Store.InspectAssetBalance(id, fund)
}

func (h *MockHost) DepositToAsset(id host.AssetID, from string, fund host.FundID, amount uint64) error {
	return h.Store.DepositToAsset(id, from, fund, amount)
}

func (h *MockHost) WithdrawFromAsset(id host.AssetID, to string, fund host.FundID, amount uint64) error {
	return h.Store.WithdrawFromAsset(id, to, fund, amount)
}

func (h *MockHost) NativeFundID() host.FundID { return h.nativeFund }

// Apply runs a battlemogs transition and applies its outputs to the
// store's write buffer. It does not call Commit; reads go through the
// buffer, so tests see the applied state.
func (h *MockHost) Apply(engine *battlemogs.Engine, account string, id battlemogs.TransitionID, req battlemogs.Request) ([]host.Output, error) {
	req.Account = account
	outputs, err := engine.Apply(h, id, req)
	if err != nil {
		return nil, err
	}
	if err := h.Store.ApplyOutputs(account, outputs); err != nil {
		return nil, err
	}
	return outputs, nil
}

// MintAsset directly inserts an asset owned by owner, bypassing the
// engine dispatch layer — used by tests to seed fixtures.
func (h *MockHost) MintAsset(owner string, rec *host.AssetRecord) error {
	if err := h.Store.PutAssetOwned(rec, owner); err != nil {
		return err
	}
	return h.Store.Commit()
}

type mockConfigProvider struct{ h *MockHost }

func (p mockConfigProvider) BattleMogs() any  { return p.h.BattleMogsCf }
func (p mockConfigProvider) Dot4Gravity() any { return p.h.Dot4GravCf }
