package messages

import (
	"fmt"

	"github.com/colonyprotocol/gocolony/protocol"
)

// JoinGame is a client's request to join a game, and the arbiter's
// broadcast that a player has joined.
type JoinGame struct {
	game   string
	player string
}

// NewJoinGame creates a JoinGame message.
// Both names must satisfy protocol.ValidIdentifier.
func NewJoinGame(ga, player string) *JoinGame {
	return &JoinGame{game: ga, player: player}
}

// Code returns the message code.
func (m *JoinGame) Code() protocol.Code {
	return protocol.JoinGame
}

// Game returns the name of the game.
func (m *JoinGame) Game() string {
	return m.game
}

// Player returns the joining player's name.
func (m *JoinGame) Player() string {
	return m.player
}

// Encode renders the message as JoinGame sep game sep2 player.
func (m *JoinGame) Encode() string {
	w := protocol.NewFieldWriter(protocol.JoinGame)
	w.WriteString(m.game)
	w.WriteString(m.player)
	return w.String()
}

// String returns a human readable form of the message.
func (m *JoinGame) String() string {
	return fmt.Sprintf("JoinGame:game=%s|player=%s", m.game, m.player)
}

func decodeJoinGame(payload string) (Message, error) {
	r := protocol.NewFieldReader(payload)
	ga := r.ReadString()
	player := r.ReadString()
	if err := r.Finish(); err != nil {
		return nil, fmt.Errorf("decode join game: %w", err)
	}
	return NewJoinGame(ga, player), nil
}
