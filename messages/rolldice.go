package messages

import (
	"fmt"

	"github.com/colonyprotocol/gocolony/protocol"
)

// RollDice is the current player's request to roll the dice.
type RollDice struct {
	game string
}

// NewRollDice creates a RollDice message.
func NewRollDice(ga string) *RollDice {
	return &RollDice{game: ga}
}

// Code returns the message code.
func (m *RollDice) Code() protocol.Code {
	return protocol.RollDice
}

// Game returns the name of the game.
func (m *RollDice) Game() string {
	return m.game
}

// Encode renders the message as RollDice sep game.
func (m *RollDice) Encode() string {
	w := protocol.NewFieldWriter(protocol.RollDice)
	w.WriteString(m.game)
	return w.String()
}

// String returns a human readable form of the message.
func (m *RollDice) String() string {
	return fmt.Sprintf("RollDice:game=%s", m.game)
}

func decodeRollDice(payload string) (Message, error) {
	r := protocol.NewFieldReader(payload)
	ga := r.ReadString()
	if err := r.Finish(); err != nil {
		return nil, fmt.Errorf("decode roll dice: %w", err)
	}
	return NewRollDice(ga), nil
}
