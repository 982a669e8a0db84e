package battlemogs

import "github.com/ajuna-network/ajunacore/host"

// TransitionID is the tagged variant spec.md §4.2 dispatches on.
type TransitionID byte

const (
	TransitionRegisterPlayer TransitionID = iota
	TransitionCreateMogwai
	TransitionRemove
	TransitionHatch
	TransitionSacrifice
	TransitionSacrificeInto
	TransitionMorph
	TransitionBreed
)

func (t TransitionID) String() string {
	switch t {
	case TransitionRegisterPlayer:
		return "RegisterPlayer"
	case TransitionCreateMogwai:
		return "CreateMogwai"
	case TransitionRemove:
		return "Remove"
	case TransitionHatch:
		return "Hatch"
	case TransitionSacrifice:
		return "Sacrifice"
	case TransitionSacrificeInto:
		return "SacrificeInto"
	case TransitionMorph:
		return "Morph"
	case TransitionBreed:
		return "Breed"
	default:
		return "Unknown"
	}
}

// Request carries a transition's inputs: the calling account, an optional
// payment-asset tag, and the operation-specific asset ids.
type Request struct {
	Account      string
	PaymentFund  *host.FundID
	Mogwai       host.AssetID
	Mogwai2      host.AssetID
	Table        host.AssetID
	Into         host.AssetID
}

// fund returns the payment fund the request names, or the host's native
// fund if none was supplied.
func (r Request) fund(h host.Host) host.FundID {
	if r.PaymentFund != nil {
		return *r.PaymentFund
	}
	return h.NativeFundID()
}

// Handler is the function signature every transition module implements.
type Handler func(h host.Host, req Request) ([]host.Output, error)

var registry = map[TransitionID]Handler{}

// Register associates a TransitionID with a Handler. Called from each
// transition file's init(), mirroring the teacher's vm.Register
// self-registration pattern.
func Register(id TransitionID, h Handler) {
	if _, exists := registry[id]; exists {
		panic("battlemogs: handler already registered for " + id.String())
	}
	registry[id] = h
}

// Engine is the single entry point spec.md §4.2 describes: given
// (transition_id, account, payment_fund?) it returns either an ordered
// list of outputs or a structured error.
type Engine struct{}

// NewEngine creates a BattleMogs Engine. It holds no state of its own; all
// state lives behind the Host.
func NewEngine() *Engine { return &Engine{} }

// Apply dispatches req to the handler registered for id.
func (e *Engine) Apply(h host.Host, id TransitionID, req Request) ([]host.Output, error) {
	handler, ok := registry[id]
	if !ok {
		return nil, NewTransitionError(ErrAssetNotFound)
	}
	return handler(h, req)
}

func battlemogsConfig(h host.Host) *Config {
	cfg, _ := h.TransitionConfig().BattleMogs().(*Config)
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return cfg
}

// asMogwai fetches an asset and asserts it is a Mogwai.
func asMogwai(h host.Host, id host.AssetID) (*host.AssetRecord, *Mogwai, error) {
	rec, err := h.GetAsset(id)
	if err != nil {
		return nil, nil, NewTransitionError(ErrAssetNotFound)
	}
	m, ok := rec.Variant.(*Mogwai)
	if !ok {
		return nil, nil, NewTransitionError(ErrAssetIsNotMogwai)
	}
	return rec, m, nil
}

// asAchievementTable fetches an asset and asserts it is an AchievementTable.
func asAchievementTable(h host.Host, id host.AssetID) (*host.AssetRecord, *AchievementTable, error) {
	rec, err := h.GetAsset(id)
	if err != nil {
		return nil, nil, NewTransitionError(ErrAssetNotFound)
	}
	t, ok := rec.Variant.(*AchievementTable)
	if !ok {
		return nil, nil, NewTransitionError(ErrAssetIsNotAchievementTable)
	}
	return rec, t, nil
}

// ownedBy checks the account owns the asset id, translating a host
// ownership failure into the distinct AssetOwnershipError.
func ownedBy(h host.Host, account string, id host.AssetID) error {
	if err := h.EnsureOwnership(account, id); err != nil {
		return &AssetOwnershipError{Owner: account}
	}
	return nil
}

// mintAssetID derives a new asset id: random_hash(subject) -> 64-bit
// big-endian prefix, saturating-added to a nonce (spec.md §4.2).
func mintAssetID(h host.Host, subject []byte, nonce uint64) host.AssetID {
	hash := h.RandomHash(subject)
	var prefix uint64
	for i := 0; i < 8; i++ {
		prefix = prefix<<8 | uint64(hash[i])
	}
	id := prefix + nonce
	if id < prefix { // saturate on overflow
		id = ^uint64(0)
	}
	return host.AssetID(id)
}

// bumpAchievement loads the caller's achievement table and returns the
// Mutated output for the bumped table. The core never writes state
// directly (spec.md §2's data-flow contract); the host commits the
// returned output list atomically.
func bumpAchievement(h host.Host, tableID host.AssetID, kind AchievementKind, n uint32) (host.Output, error) {
	rec, table, err := asAchievementTable(h, tableID)
	if err != nil {
		return host.Output{}, err
	}
	updated := table.Bump(kind, n)
	newRec := &host.AssetRecord{ID: rec.ID, Genesis: rec.Genesis, Variant: &updated}
	return host.Mutated(newRec), nil
}
