package dot4gravity

import "testing"

func TestEncodeDecodeStateRoundTrips(t *testing.T) {
	s := NewGame("alice", "bob", nil)
	s.Board.set(Coordinates{Row: 2, Col: 2}, StoneCell(1))
	s.Board.set(Coordinates{Row: 3, Col: 3}, Cell{Kind: CellBomb, Occupants: [2]*PlayerIndex{ptr(0)}})
	s.BombSlots[0][0] = BombSlot{Status: BombPlaced, Coords: Coordinates{Row: 1, Col: 1}, hasCoords: true}
	s.Scores[0] = 3
	w := PlayerIndex(1)
	s.Winner = &w
	s.LastMove = &Move{Player: 0, Side: SideNorth, Pos: 4}

	wire := EncodeState(s)
	decoded, err := DecodeState(wire)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	if decoded.Seed != s.Seed {
		t.Fatalf("seed mismatch: %d != %d", decoded.Seed, s.Seed)
	}
	for r := 0; r < BoardHeight; r++ {
		for c := 0; c < BoardWidth; c++ {
			want := s.Board.Cells[r][c]
			got := decoded.Board.Cells[r][c]
			if got.Kind != want.Kind || got.Stone != want.Stone {
				t.Fatalf("cell (%d,%d) mismatch: got %+v want %+v", r, c, got, want)
			}
			for i := range want.Occupants {
				switch {
				case want.Occupants[i] == nil && got.Occupants[i] != nil:
					t.Fatalf("cell (%d,%d) occupant %d: want nil, got %v", r, c, i, *got.Occupants[i])
				case want.Occupants[i] != nil && got.Occupants[i] == nil:
					t.Fatalf("cell (%d,%d) occupant %d: want %v, got nil", r, c, i, *want.Occupants[i])
				case want.Occupants[i] != nil && *want.Occupants[i] != *got.Occupants[i]:
					t.Fatalf("cell (%d,%d) occupant %d mismatch: got %v want %v", r, c, i, *got.Occupants[i], *want.Occupants[i])
				}
			}
		}
	}
	if decoded.Phase != s.Phase {
		t.Fatalf("phase mismatch: %v != %v", decoded.Phase, s.Phase)
	}
	if decoded.Winner == nil || *decoded.Winner != *s.Winner {
		t.Fatalf("winner mismatch: %v != %v", decoded.Winner, s.Winner)
	}
	if decoded.Players != s.Players {
		t.Fatalf("players mismatch: %v != %v", decoded.Players, s.Players)
	}
	if decoded.BombSlots[0][0].Coords != s.BombSlots[0][0].Coords {
		t.Fatal("bomb slot coordinates mismatch after round trip")
	}
	if decoded.Scores != s.Scores {
		t.Fatalf("scores mismatch: %v != %v", decoded.Scores, s.Scores)
	}
	if decoded.LastMove == nil || *decoded.LastMove != *s.LastMove {
		t.Fatalf("last move mismatch: %v != %v", decoded.LastMove, s.LastMove)
	}
}

func TestEncodeStateIsDeterministic(t *testing.T) {
	s1 := NewGame("alice", "bob", nil)
	s2 := NewGame("alice", "bob", nil)
	if string(EncodeState(s1)) != string(EncodeState(s2)) {
		t.Fatal("expected identical states to encode to identical bytes")
	}
}

func TestDecodeStateRejectsTruncatedInput(t *testing.T) {
	s := NewGame("alice", "bob", nil)
	wire := EncodeState(s)
	if _, err := DecodeState(wire[:10]); err == nil {
		t.Fatal("expected an error decoding truncated state bytes")
	}
}
