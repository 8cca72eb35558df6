package messages

import (
	"fmt"

	"github.com/colonyprotocol/gocolony/game"
	"github.com/colonyprotocol/gocolony/protocol"
)

// GameState is the arbiter's broadcast of a game's current state.
//
// One of these is the "redundant" broadcast governed by
// VersionForAlwaysSendGameState: after a discard, peers at or above that
// version receive GameState(WaitingForDiscards) even when the state did
// not change.
type GameState struct {
	game  string
	state game.State
}

// NewGameState creates a GameState message.
func NewGameState(ga string, state game.State) *GameState {
	return &GameState{game: ga, state: state}
}

// Code returns the message code.
func (m *GameState) Code() protocol.Code {
	return protocol.GameState
}

// Game returns the name of the game.
func (m *GameState) Game() string {
	return m.game
}

// State returns the game state.
func (m *GameState) State() game.State {
	return m.state
}

// Encode renders the message as GameState sep game sep2 state.
func (m *GameState) Encode() string {
	w := protocol.NewFieldWriter(protocol.GameState)
	w.WriteString(m.game)
	w.WriteInt(int(m.state))
	return w.String()
}

// String returns a human readable form of the message.
func (m *GameState) String() string {
	return fmt.Sprintf("GameState:game=%s|state=%d", m.game, int(m.state))
}

func decodeGameState(payload string) (Message, error) {
	r := protocol.NewFieldReader(payload)
	ga := r.ReadString()
	state := r.ReadInt()
	if err := r.Finish(); err != nil {
		return nil, fmt.Errorf("decode game state: %w", err)
	}
	return NewGameState(ga, game.State(state)), nil
}
