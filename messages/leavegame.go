package messages

import (
	"fmt"

	"github.com/colonyprotocol/gocolony/protocol"
)

// LeaveGame announces that a player is leaving a game.
type LeaveGame struct {
	game   string
	player string
}

// NewLeaveGame creates a LeaveGame message.
func NewLeaveGame(ga, player string) *LeaveGame {
	return &LeaveGame{game: ga, player: player}
}

// Code returns the message code.
func (m *LeaveGame) Code() protocol.Code {
	return protocol.LeaveGame
}

// Game returns the name of the game.
func (m *LeaveGame) Game() string {
	return m.game
}

// Player returns the leaving player's name.
func (m *LeaveGame) Player() string {
	return m.player
}

// Encode renders the message as LeaveGame sep game sep2 player.
func (m *LeaveGame) Encode() string {
	w := protocol.NewFieldWriter(protocol.LeaveGame)
	w.WriteString(m.game)
	w.WriteString(m.player)
	return w.String()
}

// String returns a human readable form of the message.
func (m *LeaveGame) String() string {
	return fmt.Sprintf("LeaveGame:game=%s|player=%s", m.game, m.player)
}

func decodeLeaveGame(payload string) (Message, error) {
	r := protocol.NewFieldReader(payload)
	ga := r.ReadString()
	player := r.ReadString()
	if err := r.Finish(); err != nil {
		return nil, fmt.Errorf("decode leave game: %w", err)
	}
	return NewLeaveGame(ga, player), nil
}
