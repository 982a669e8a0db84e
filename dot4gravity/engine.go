package dot4gravity

// Engine is the Dot4Gravity entry point, mirroring battlemogs.Engine's
// shape: a stateless dispatcher over an explicit *State value the host
// owns and persists between calls.
type Engine struct{}

// NewEngine creates a Dot4Gravity Engine. It holds no state of its own.
func NewEngine() *Engine { return &Engine{} }

// NewGame constructs a fresh game state (spec.md §4.5's "New game").
func (*Engine) NewGame(player1, player2 string, seed *uint32) *State {
	return NewGame(player1, player2, seed)
}

// DropBombLegacy applies the legacy bomb-placement transition to s.
func (*Engine) DropBombLegacy(s *State, account string, at Coordinates) error {
	return s.DropBombLegacy(account, at)
}

// DropBombCommitReveal applies the commit-reveal bomb-placement
// transition to s.
func (*Engine) DropBombCommitReveal(s *State, account string, claimedCoords Coordinates, secret uint64) error {
	return s.DropBombCommitReveal(account, claimedCoords, secret)
}

// Detonate reveals and applies a commit-reveal bomb's explosion to s.
func (*Engine) Detonate(s *State, account string, coords Coordinates, secret uint64) error {
	return s.Detonate(account, coords, secret)
}

// DropStone applies the stone-sliding transition to s.
func (*Engine) DropStone(s *State, account string, side Side, pos int) error {
	return s.DropStone(account, side, pos)
}
