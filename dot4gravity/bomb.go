package dot4gravity

import (
	"encoding/binary"

	"github.com/ajuna-network/ajunacore/crypto"
)

// DropBombLegacy is the legacy variant of spec.md §4.5's "Drop bomb":
// position is recorded directly on the board. Empty -> single-occupant
// Bomb, single-occupant Bomb (different player) -> two-occupant Bomb.
// When all players' remaining bombs hit zero, phase flips to Play in the
// same transition.
func (s *State) DropBombLegacy(account string, at Coordinates) error {
	if s.Winner != nil {
		return ErrGameAlreadyFinished
	}
	if s.Phase != PhaseBomb {
		return ErrDroppedBombOutsideBombPhase
	}
	idx := s.playerIndex(account)
	if idx < 0 {
		return ErrNotPlayerTurn
	}
	if s.BombsRemaining[idx] <= 0 {
		return ErrNoMoreBombsAvailable
	}
	if !at.IsInsideBoard() {
		return ErrInvalidBombPosition
	}
	player := PlayerIndex(idx)
	cell := s.Board.get(at)
	switch cell.Kind {
	case CellEmpty:
		s.Board.set(at, Cell{Kind: CellBomb, Occupants: [2]*PlayerIndex{ptr(player)}})
	case CellBomb:
		if cell.occupantCount() != 1 || *cell.Occupants[0] == player {
			return ErrInvalidBombPosition
		}
		cell.Occupants[1] = ptr(player)
		s.Board.set(at, cell)
	default:
		return ErrInvalidBombPosition
	}
	s.BombsRemaining[idx]--

	allDone := true
	for _, n := range s.BombsRemaining {
		if n > 0 {
			allDone = false
			break
		}
	}
	if allDone {
		s.Phase = PhasePlay
	}
	return nil
}

// bombCommitHash computes hash(coords, secret) for the commit-reveal
// protocol.
func bombCommitHash(coords Coordinates, secret uint64) [32]byte {
	var buf [20]byte
	binary.BigEndian.PutUint64(buf[0:8], uint64(int64(coords.Row)))
	binary.BigEndian.PutUint64(buf[8:16], uint64(int64(coords.Col)))
	binary.BigEndian.PutUint32(buf[16:20], uint32(secret))
	var h [32]byte
	copy(h[:], crypto.HashBytes(append(buf[:], byteSecretTail(secret)...)))
	return h
}

// byteSecretTail folds the full 64-bit secret into the hash input so two
// secrets differing only in their high bits never collide.
func byteSecretTail(secret uint64) []byte {
	var tail [8]byte
	binary.BigEndian.PutUint64(tail[:], secret)
	return tail[:]
}

// DropBombCommitReveal is the commit-reveal variant of "Drop bomb": the
// player supplies (claimedCoords, secret); the board is not modified. A
// duplicate Placed slot from the same player at the same coordinates
// (different secret) is rejected here, resolving spec.md §9's flagged
// design choice in favor of rejection (it would otherwise allow
// double-detonation of one cell at reveal time).
func (s *State) DropBombCommitReveal(account string, claimedCoords Coordinates, secret uint64) error {
	if s.Winner != nil {
		return ErrGameAlreadyFinished
	}
	if s.Phase != PhaseBomb {
		return ErrDroppedBombOutsideBombPhase
	}
	idx := s.playerIndex(account)
	if idx < 0 {
		return ErrNotPlayerTurn
	}
	if !claimedCoords.IsInsideBoard() {
		return ErrInvalidBombPosition
	}

	slot := -1
	for i, sl := range s.BombSlots[idx] {
		if sl.Status == BombNotPlaced {
			slot = i
			break
		}
		if sl.Status == BombPlaced && sl.hasCoords && sl.Coords == claimedCoords {
			return ErrDuplicateBombCoordinates
		}
	}
	if slot == -1 {
		return ErrNoMoreBombsAvailable
	}

	s.BombSlots[idx][slot] = BombSlot{
		Status:    BombPlaced,
		Hash:      bombCommitHash(claimedCoords, secret),
		Coords:    claimedCoords,
		hasCoords: true,
	}

	allDone := true
	for _, slots := range s.BombSlots {
		for _, sl := range slots {
			if sl.Status == BombNotPlaced {
				allDone = false
			}
		}
	}
	if allDone {
		s.Phase = PhasePlay
	}
	return nil
}

// Detonate reveals (coords, secret) for the commit-reveal variant,
// verifies the hash matches a Placed slot belonging to account, then
// applies the explosion (spec.md §4.5's "Detonate"; concrete scenario 6
// in spec.md §8).
func (s *State) Detonate(account string, coords Coordinates, secret uint64) error {
	if s.Winner != nil {
		return ErrGameAlreadyFinished
	}
	idx := s.playerIndex(account)
	if idx < 0 {
		return ErrNotPlayerTurn
	}
	want := bombCommitHash(coords, secret)
	found := -1
	for i, sl := range s.BombSlots[idx] {
		if sl.Status == BombPlaced && sl.Hash == want {
			found = i
			break
		}
	}
	if found == -1 {
		return ErrInvalidBombPosition
	}
	s.BombSlots[idx][found].Status = BombDetonated
	s.explode(coords, PlayerIndex(idx))
	s.checkAndSetWinner()
	return nil
}

// explode clears the 3x3 neighbourhood centred at `at`, skipping
// out-of-bounds cells and preserving Block cells. The triggering player
// scores NBPointEnemyDestroyed per opponent stone destroyed in the
// neighbourhood, counted before the clear (spec.md §4.5).
func (s *State) explode(at Coordinates, trigger PlayerIndex) {
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			pos := Coordinates{Row: at.Row + dr, Col: at.Col + dc}
			if !pos.IsInsideBoard() {
				continue
			}
			cell := s.Board.get(pos)
			if cell.Kind == CellBlock {
				continue
			}
			if cell.Kind == CellStone && cell.Stone != trigger {
				s.Scores[trigger] += NBPointEnemyDestroyed
			}
			s.Board.set(pos, EmptyCell())
		}
	}
}
