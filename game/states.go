package game

// State is a game-state code broadcast by the arbiter in GameState messages.
// The values are part of the wire format.
type State int

// Game states.
const (
	// StateNew is a game that has been created but not started.
	StateNew State = 0
	// StatePlay is normal turn play.
	StatePlay State = 15
	// StateWaitingForDiscards means one or more players still must discard
	// after a robber roll.
	StateWaitingForDiscards State = 50
	// StateOver is a finished game.
	StateOver State = 1000
)

// String returns a readable name for the state.
func (s State) String() string {
	switch s {
	case StateNew:
		return "New"
	case StatePlay:
		return "Play"
	case StateWaitingForDiscards:
		return "WaitingForDiscards"
	case StateOver:
		return "Over"
	default:
		return "Unknown"
	}
}
