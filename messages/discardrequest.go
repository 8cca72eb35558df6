package messages

import (
	"fmt"

	"github.com/colonyprotocol/gocolony/protocol"
)

// DiscardRequest is the arbiter telling a player how many resources to
// discard. The player answers with a Discard; if its total is wrong the
// arbiter re-sends this request with the required count.
type DiscardRequest struct {
	game  string
	count int
}

// NewDiscardRequest creates a DiscardRequest message.
func NewDiscardRequest(ga string, count int) *DiscardRequest {
	return &DiscardRequest{game: ga, count: count}
}

// Code returns the message code.
func (m *DiscardRequest) Code() protocol.Code {
	return protocol.DiscardRequest
}

// Game returns the name of the game.
func (m *DiscardRequest) Game() string {
	return m.game
}

// Count returns the number of resources the player must discard.
func (m *DiscardRequest) Count() int {
	return m.count
}

// Encode renders the message as DiscardRequest sep game sep2 count.
func (m *DiscardRequest) Encode() string {
	w := protocol.NewFieldWriter(protocol.DiscardRequest)
	w.WriteString(m.game)
	w.WriteInt(m.count)
	return w.String()
}

// String returns a human readable form of the message.
func (m *DiscardRequest) String() string {
	return fmt.Sprintf("DiscardRequest:game=%s|count=%d", m.game, m.count)
}

func decodeDiscardRequest(payload string) (Message, error) {
	r := protocol.NewFieldReader(payload)
	ga := r.ReadString()
	count := r.ReadInt()
	if err := r.Finish(); err != nil {
		return nil, fmt.Errorf("decode discard request: %w", err)
	}
	return NewDiscardRequest(ga, count), nil
}
