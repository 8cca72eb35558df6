package messages

import (
	"fmt"

	"github.com/colonyprotocol/gocolony/protocol"
)

// GameText is a text line from the arbiter to everyone in a game, used
// for play-by-play narration ("alice discarded 4 resources").
type GameText struct {
	game string
	text string
}

// NewGameText creates a GameText message.
// The text must not contain the wire delimiters.
func NewGameText(ga, text string) *GameText {
	return &GameText{game: ga, text: text}
}

// Code returns the message code.
func (m *GameText) Code() protocol.Code {
	return protocol.GameText
}

// Game returns the name of the game.
func (m *GameText) Game() string {
	return m.game
}

// Text returns the text of the message.
func (m *GameText) Text() string {
	return m.text
}

// Encode renders the message as GameText sep game sep2 text.
func (m *GameText) Encode() string {
	w := protocol.NewFieldWriter(protocol.GameText)
	w.WriteString(m.game)
	w.WriteString(m.text)
	return w.String()
}

// String returns a human readable form of the message.
func (m *GameText) String() string {
	return fmt.Sprintf("GameText:game=%s|text=%s", m.game, m.text)
}

func decodeGameText(payload string) (Message, error) {
	r := protocol.NewFieldReader(payload)
	ga := r.ReadString()
	text := r.ReadString()
	if err := r.Finish(); err != nil {
		return nil, fmt.Errorf("decode game text: %w", err)
	}
	return NewGameText(ga, text), nil
}
