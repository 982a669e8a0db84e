package dot4gravity

import (
	"encoding/binary"
	"errors"
)

// ErrTruncatedState is returned by DecodeState when data ends before a
// complete State has been read.
var ErrTruncatedState = errors.New("dot4gravity: truncated state encoding")

// EncodeState produces the wire-stable byte encoding of a full game State:
// fixed-width fields in declaration order, one-byte enum discriminants, no
// length prefix on the fixed-size board and bomb-slot arrays (spec.md §6's
// wire-format rule, same shape as host.EncodeAsset). Player account names
// are the only length-prefixed fields; LastMove is a one-byte presence flag
// followed by the move only when present.
func EncodeState(s *State) []byte {
	var buf []byte
	var u32 [4]byte

	binary.BigEndian.PutUint32(u32[:], s.Seed)
	buf = append(buf, u32[:]...)

	for r := 0; r < BoardHeight; r++ {
		for c := 0; c < BoardWidth; c++ {
			buf = appendCell(buf, s.Board.Cells[r][c])
		}
	}

	buf = append(buf, byte(s.Phase))
	buf = appendOptionalPlayer(buf, s.Winner)
	buf = append(buf, byte(s.NextPlayer))

	for _, p := range s.Players {
		buf = appendLenPrefixedString(buf, p)
	}
	for _, n := range s.BombsRemaining {
		binary.BigEndian.PutUint32(u32[:], uint32(n))
		buf = append(buf, u32[:]...)
	}
	for _, slots := range s.BombSlots {
		for _, slot := range slots {
			buf = append(buf, byte(slot.Status))
			buf = append(buf, slot.Hash[:]...)
			binary.BigEndian.PutUint32(u32[:], uint32(int32(slot.Coords.Row)))
			buf = append(buf, u32[:]...)
			binary.BigEndian.PutUint32(u32[:], uint32(int32(slot.Coords.Col)))
			buf = append(buf, u32[:]...)
			if slot.hasCoords {
				buf = append(buf, 1)
			} else {
				buf = append(buf, 0)
			}
		}
	}
	for _, sc := range s.Scores {
		binary.BigEndian.PutUint32(u32[:], sc)
		buf = append(buf, u32[:]...)
	}
	buf = appendOptionalMove(buf, s.LastMove)
	return buf
}

func appendCell(buf []byte, c Cell) []byte {
	buf = append(buf, byte(c.Kind), byte(c.Stone))
	for _, o := range c.Occupants {
		if o == nil {
			buf = append(buf, 0xFF)
		} else {
			buf = append(buf, byte(*o))
		}
	}
	return buf
}

func appendOptionalPlayer(buf []byte, p *PlayerIndex) []byte {
	if p == nil {
		return append(buf, 0xFF)
	}
	return append(buf, byte(*p))
}

func appendLenPrefixedString(buf []byte, s string) []byte {
	var l [4]byte
	b := []byte(s)
	binary.BigEndian.PutUint32(l[:], uint32(len(b)))
	buf = append(buf, l[:]...)
	return append(buf, b...)
}

func appendOptionalMove(buf []byte, m *Move) []byte {
	if m == nil {
		return append(buf, 0)
	}
	var p [4]byte
	buf = append(buf, 1, byte(m.Player), byte(m.Side))
	binary.BigEndian.PutUint32(p[:], uint32(int32(m.Pos)))
	return append(buf, p[:]...)
}

// DecodeState parses the encoding EncodeState produces.
func DecodeState(data []byte) (*State, error) {
	r := &stateReader{data: data}
	s := &State{Board: NewBoard()}

	s.Seed = r.u32()
	for row := 0; row < BoardHeight; row++ {
		for col := 0; col < BoardWidth; col++ {
			cell, err := r.cell()
			if err != nil {
				return nil, err
			}
			s.Board.Cells[row][col] = cell
		}
	}
	s.Phase = GamePhase(r.byte_())
	s.Winner = r.optionalPlayer()
	s.NextPlayer = PlayerIndex(r.byte_())

	for i := range s.Players {
		str, err := r.lenPrefixedString()
		if err != nil {
			return nil, err
		}
		s.Players[i] = str
	}
	for i := range s.BombsRemaining {
		s.BombsRemaining[i] = int(int32(r.u32()))
	}
	for p := range s.BombSlots {
		for i := range s.BombSlots[p] {
			var slot BombSlot
			slot.Status = BombSlotStatus(r.byte_())
			copy(slot.Hash[:], r.bytes(32))
			slot.Coords.Row = int(int32(r.u32()))
			slot.Coords.Col = int(int32(r.u32()))
			slot.hasCoords = r.byte_() == 1
			s.BombSlots[p][i] = slot
		}
	}
	for i := range s.Scores {
		s.Scores[i] = r.u32()
	}
	s.LastMove = r.optionalMove()

	if r.err != nil {
		return nil, r.err
	}
	return s, nil
}

// stateReader sequentially consumes a byte slice, latching the first
// out-of-bounds read into err so DecodeState can check it once at the end
// instead of threading an error return through every helper call.
type stateReader struct {
	data []byte
	pos  int
	err  error
}

func (r *stateReader) take(n int) []byte {
	if r.err != nil {
		return nil
	}
	if r.pos+n > len(r.data) {
		r.err = ErrTruncatedState
		return nil
	}
	b := r.data[r.pos : r.pos+n]
	r.pos += n
	return b
}

func (r *stateReader) byte_() byte {
	b := r.take(1)
	if b == nil {
		return 0
	}
	return b[0]
}

func (r *stateReader) bytes(n int) []byte {
	return r.take(n)
}

func (r *stateReader) u32() uint32 {
	b := r.take(4)
	if b == nil {
		return 0
	}
	return binary.BigEndian.Uint32(b)
}

func (r *stateReader) cell() (Cell, error) {
	kind := CellKind(r.byte_())
	stone := PlayerIndex(r.byte_())
	var occ [2]*PlayerIndex
	for i := range occ {
		tag := r.byte_()
		if tag != 0xFF {
			p := PlayerIndex(tag)
			occ[i] = &p
		}
	}
	return Cell{Kind: kind, Stone: stone, Occupants: occ}, r.err
}

func (r *stateReader) optionalPlayer() *PlayerIndex {
	tag := r.byte_()
	if tag == 0xFF {
		return nil
	}
	p := PlayerIndex(tag)
	return &p
}

func (r *stateReader) lenPrefixedString() (string, error) {
	n := int(r.u32())
	b := r.take(n)
	if r.err != nil {
		return "", r.err
	}
	return string(b), nil
}

func (r *stateReader) optionalMove() *Move {
	present := r.byte_()
	if present == 0 {
		return nil
	}
	player := PlayerIndex(r.byte_())
	side := Side(r.byte_())
	pos := int(int32(r.u32()))
	return &Move{Player: player, Side: side, Pos: pos}
}
