package dot4gravity

import "testing"

// fillSquare stamps a 2x2 square of player's stones at top-left (r, c).
func fillSquare(b *Board, r, c int, player PlayerIndex) {
	for _, d := range [4]Coordinates{{r, c}, {r, c + 1}, {r + 1, c}, {r + 1, c + 1}} {
		b.set(d, StoneCell(player))
	}
}

func TestCheckWinnerNoneBelowThreeSquares(t *testing.T) {
	b := NewBoard()
	fillSquare(&b, 0, 0, 0)
	fillSquare(&b, 2, 2, 0)
	if w := checkWinner(&b); w != nil {
		t.Fatalf("expected no winner with only 2 squares, got %v", *w)
	}
}

func TestCheckWinnerThreeDisjointSquares(t *testing.T) {
	b := NewBoard()
	fillSquare(&b, 0, 0, 1)
	fillSquare(&b, 3, 3, 1)
	fillSquare(&b, 6, 6, 1)
	w := checkWinner(&b)
	if w == nil {
		t.Fatal("expected player 1 to win with three squares")
	}
	if *w != 1 {
		t.Fatalf("expected winner 1, got %v", *w)
	}
}

func TestCheckWinnerMixedPlayersDoNotCount(t *testing.T) {
	b := NewBoard()
	b.set(Coordinates{0, 0}, StoneCell(0))
	b.set(Coordinates{0, 1}, StoneCell(1))
	b.set(Coordinates{1, 0}, StoneCell(0))
	b.set(Coordinates{1, 1}, StoneCell(0))
	if w := checkWinner(&b); w != nil {
		t.Fatalf("a mixed-owner square must not count, got %v", *w)
	}
}

func TestStateCheckWinnerLatches(t *testing.T) {
	s := NewGame("alice", "bob", nil)
	fillSquare(&s.Board, 0, 0, 0)
	fillSquare(&s.Board, 3, 3, 0)
	fillSquare(&s.Board, 6, 6, 0)
	w := s.CheckWinner()
	if w == nil || *w != 0 {
		t.Fatalf("expected player 0 to win, got %v", w)
	}
	if s.Winner == nil || *s.Winner != 0 {
		t.Fatal("CheckWinner must latch Winner on State")
	}
}
