package dot4gravity

import "errors"

// The Dot4Gravity error taxonomy from spec.md §6, as sentinel error values.
var (
	ErrDroppedBombOutsideBombPhase   = errors.New("dot4gravity: dropped bomb outside bomb phase")
	ErrDroppedStoneOutsidePlayPhase  = errors.New("dot4gravity: dropped stone outside play phase")
	ErrNoMoreBombsAvailable          = errors.New("dot4gravity: no more bombs available")
	ErrInvalidBombPosition           = errors.New("dot4gravity: invalid bomb position")
	ErrInvalidStonePosition          = errors.New("dot4gravity: invalid stone position")
	ErrNotPlayerTurn                 = errors.New("dot4gravity: not player's turn")
	ErrGameAlreadyFinished           = errors.New("dot4gravity: game already finished")
	ErrDuplicateBombCoordinates      = errors.New("dot4gravity: duplicate bomb coordinates for player")
)
