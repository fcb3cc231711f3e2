package engine

import "errors"

// Sentinel errors surfaced to callers of Engine. IllegalMove and
// InvalidTurn are fatal to the in-flight search loop. Protocol framing
// errors are defined in pkg/protocol, which owns that wire format.
// TreeMiss is deliberately not a sentinel error here: it is recovered
// locally inside Move, which reports it only as a boolean.
var (
	ErrIllegalMove    = errors.New("engine: illegal move")
	ErrInvalidTurn    = errors.New("engine: invalid turn")
	ErrAlreadyDecided = errors.New("engine: root state already has a winner")
)
