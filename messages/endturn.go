package messages

import (
	"fmt"

	"github.com/colonyprotocol/gocolony/protocol"
)

// EndTurn is the current player's request to end their turn.
type EndTurn struct {
	game string
}

// NewEndTurn creates an EndTurn message.
func NewEndTurn(ga string) *EndTurn {
	return &EndTurn{game: ga}
}

// Code returns the message code.
func (m *EndTurn) Code() protocol.Code {
	return protocol.EndTurn
}

// Game returns the name of the game.
func (m *EndTurn) Game() string {
	return m.game
}

// Encode renders the message as EndTurn sep game.
func (m *EndTurn) Encode() string {
	w := protocol.NewFieldWriter(protocol.EndTurn)
	w.WriteString(m.game)
	return w.String()
}

// String returns a human readable form of the message.
func (m *EndTurn) String() string {
	return fmt.Sprintf("EndTurn:game=%s", m.game)
}

func decodeEndTurn(payload string) (Message, error) {
	r := protocol.NewFieldReader(payload)
	ga := r.ReadString()
	if err := r.Finish(); err != nil {
		return nil, fmt.Errorf("decode end turn: %w", err)
	}
	return NewEndTurn(ga), nil
}
