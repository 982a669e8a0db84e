package dot4gravity

import "testing"

func TestDropBombLegacyFlipsPhaseWhenAllBombsPlaced(t *testing.T) {
	s := newTestState("alice", "bob")
	s.Phase = PhaseBomb
	s.BombsRemaining = [NumPlayers]int{1, 1}

	if err := s.DropBombLegacy("alice", Coordinates{Row: 0, Col: 0}); err != nil {
		t.Fatalf("alice drop bomb: %v", err)
	}
	if s.Phase != PhaseBomb {
		t.Fatalf("phase must stay Bomb until both players are done, got %v", s.Phase)
	}
	if err := s.DropBombLegacy("bob", Coordinates{Row: 9, Col: 9}); err != nil {
		t.Fatalf("bob drop bomb: %v", err)
	}
	if s.Phase != PhasePlay {
		t.Fatalf("expected phase to flip to Play once all bombs are placed, got %v", s.Phase)
	}
}

func TestDropBombLegacyRejectsRepeatedOwnOccupant(t *testing.T) {
	s := newTestState("alice", "bob")
	s.Phase = PhaseBomb
	s.BombsRemaining = [NumPlayers]int{3, 3}

	if err := s.DropBombLegacy("alice", Coordinates{Row: 2, Col: 2}); err != nil {
		t.Fatalf("first drop: %v", err)
	}
	// alice again at the same cell: already her own occupant slot.
	if err := s.DropBombLegacy("alice", Coordinates{Row: 2, Col: 2}); err != ErrInvalidBombPosition {
		t.Fatalf("expected ErrInvalidBombPosition for repeated own occupant, got %v", err)
	}
}

func TestDropBombCommitRevealPreservesBoardUntilDetonation(t *testing.T) {
	s := newTestState("alice", "bob")
	s.Phase = PhaseBomb
	for p := range s.BombsRemaining {
		s.BombsRemaining[p] = 0 // legacy slots unused in commit-reveal variant
	}

	coords := Coordinates{Row: 4, Col: 4}
	var secret uint64 = 0xC0FFEE

	if err := s.DropBombCommitReveal("alice", coords, secret); err != nil {
		t.Fatalf("commit bomb: %v", err)
	}
	if cell := s.Board.get(coords); cell.Kind != CellEmpty {
		t.Fatalf("board must not reveal bomb position before detonation, got %+v", cell)
	}
}

func TestDropBombCommitRevealRejectsDuplicateCoordinates(t *testing.T) {
	s := newTestState("alice", "bob")
	s.Phase = PhaseBomb

	coords := Coordinates{Row: 1, Col: 1}
	if err := s.DropBombCommitReveal("alice", coords, 111); err != nil {
		t.Fatalf("first commit: %v", err)
	}
	if err := s.DropBombCommitReveal("alice", coords, 222); err != ErrDuplicateBombCoordinates {
		t.Fatalf("expected ErrDuplicateBombCoordinates, got %v", err)
	}
}

func TestDetonateRejectsMismatchedSecret(t *testing.T) {
	s := newTestState("alice", "bob")
	s.Phase = PhaseBomb
	coords := Coordinates{Row: 7, Col: 2}
	if err := s.DropBombCommitReveal("alice", coords, 42); err != nil {
		t.Fatalf("commit: %v", err)
	}
	if err := s.Detonate("alice", coords, 43); err != ErrInvalidBombPosition {
		t.Fatalf("expected ErrInvalidBombPosition for wrong secret, got %v", err)
	}
}

func TestDetonateClearsNeighbourhoodAndPreservesBlocks(t *testing.T) {
	s := newTestState("alice", "bob")
	s.Phase = PhaseBomb
	coords := Coordinates{Row: 5, Col: 5}
	s.Board.set(Coordinates{Row: 5, Col: 6}, BlockCell())
	s.Board.set(Coordinates{Row: 4, Col: 5}, StoneCell(1))

	if err := s.DropBombCommitReveal("alice", coords, 7); err != nil {
		t.Fatalf("commit: %v", err)
	}
	if err := s.Detonate("alice", coords, 7); err != nil {
		t.Fatalf("detonate: %v", err)
	}

	if cell := s.Board.get(Coordinates{Row: 5, Col: 6}); cell.Kind != CellBlock {
		t.Fatal("block cells must survive an explosion")
	}
	if cell := s.Board.get(Coordinates{Row: 4, Col: 5}); cell.Kind != CellEmpty {
		t.Fatal("enemy stone in the blast radius must be destroyed")
	}
	if s.Scores[0] != NBPointEnemyDestroyed {
		t.Fatalf("expected triggering player score NBPointEnemyDestroyed, got %d", s.Scores[0])
	}
}
