package protocol

// Code identifies a message type on the wire.
// The code registry is append-only: codes are never renumbered or reused,
// so a peer can always skip kinds it does not know.
type Code int

// Message codes.
const (
	GameText       Code = 1010
	LeaveGame      Code = 1011
	JoinGame       Code = 1013
	GameState      Code = 1025
	DiscardRequest Code = 1029
	RollDice       Code = 1031
	EndTurn        Code = 1032
	Discard        Code = 1033
)
