package dot4gravity

import "testing"

func newTestState(player0, player1 string) *State {
	return &State{
		Board:      NewBoard(),
		Phase:      PhasePlay,
		NextPlayer: 0,
		Players:    [NumPlayers]string{player0, player1},
	}
}

func TestDropStoneSlidesAndStopsAtBlock(t *testing.T) {
	s := newTestState("alice", "bob")
	s.Board.set(Coordinates{Row: 5, Col: 3}, BlockCell())

	if err := s.DropStone("alice", SideNorth, 3); err != nil {
		t.Fatalf("drop stone: %v", err)
	}
	placed := s.Board.get(Coordinates{Row: 4, Col: 3})
	if placed.Kind != CellStone || placed.Stone != 0 {
		t.Fatalf("expected stone to stop at (4,3), got %+v", placed)
	}
	blocker := s.Board.get(Coordinates{Row: 5, Col: 3})
	if blocker.Kind != CellBlock {
		t.Fatal("block cell must remain a block after a stone stops against it")
	}
	if s.Scores[0] != NBPointStone {
		t.Fatalf("expected scorer to gain NBPointStone, got %d", s.Scores[0])
	}
	if s.NextPlayer != 1 {
		t.Fatalf("expected turn to pass to player 1, got %v", s.NextPlayer)
	}
}

func TestDropStoneTravelsToOppositeEdgeOnEmptyBoard(t *testing.T) {
	s := newTestState("alice", "bob")
	if err := s.DropStone("alice", SideNorth, 0); err != nil {
		t.Fatalf("drop stone: %v", err)
	}
	placed := s.Board.get(Coordinates{Row: BoardHeight - 1, Col: 0})
	if placed.Kind != CellStone {
		t.Fatalf("expected stone at the far edge, got %+v", placed)
	}
}

func TestDropStoneRejectsImmediateBlock(t *testing.T) {
	s := newTestState("alice", "bob")
	s.Board.set(Coordinates{Row: 0, Col: 5}, BlockCell())
	if err := s.DropStone("alice", SideNorth, 5); err != ErrInvalidStonePosition {
		t.Fatalf("expected ErrInvalidStonePosition, got %v", err)
	}
}

func TestDropStoneRejectsWrongTurn(t *testing.T) {
	s := newTestState("alice", "bob")
	if err := s.DropStone("bob", SideNorth, 0); err != ErrNotPlayerTurn {
		t.Fatalf("expected ErrNotPlayerTurn, got %v", err)
	}
}

func TestDropStoneRejectsDuringBombPhase(t *testing.T) {
	s := newTestState("alice", "bob")
	s.Phase = PhaseBomb
	if err := s.DropStone("alice", SideNorth, 0); err != ErrDroppedStoneOutsidePlayPhase {
		t.Fatalf("expected ErrDroppedStoneOutsidePlayPhase, got %v", err)
	}
}

func TestDropStoneDetonatesBombOnTheWay(t *testing.T) {
	s := newTestState("alice", "bob")
	s.Board.set(Coordinates{Row: 5, Col: 3}, Cell{Kind: CellBomb, Occupants: [2]*PlayerIndex{ptr(1)}})
	s.Board.set(Coordinates{Row: 5, Col: 4}, StoneCell(1))

	if err := s.DropStone("alice", SideNorth, 3); err != nil {
		t.Fatalf("drop stone: %v", err)
	}
	bomb := s.Board.get(Coordinates{Row: 5, Col: 3})
	if bomb.Kind != CellEmpty {
		t.Fatalf("expected bomb cell cleared by explosion, got %+v", bomb)
	}
	neighbourStone := s.Board.get(Coordinates{Row: 5, Col: 4})
	if neighbourStone.Kind != CellEmpty {
		t.Fatalf("expected neighbouring enemy stone destroyed, got %+v", neighbourStone)
	}
	if s.Scores[0] != NBPointStone+NBPointEnemyDestroyed {
		t.Fatalf("expected triggering player to score NBPointStone+NBPointEnemyDestroyed, got %d", s.Scores[0])
	}
}
