// Package messages provides encoding and decoding for Colony game messages.
//
// Every message kind is an immutable value type with a constructor, a
// total Encode, and a strict decoder reached through Decode's registry.
// A decoder either reconstructs the full message or fails with an error;
// it never returns a partially-filled message, so one garbled line can
// be logged and skipped without destabilizing the connection.
package messages

import (
	"errors"
	"fmt"

	"github.com/colonyprotocol/gocolony/protocol"
)

// Message is the interface for all game messages.
type Message interface {
	// Code returns the message code.
	Code() protocol.Code
	// Game returns the name of the game the message belongs to.
	Game() string
	// Encode renders the message as a wire command line.
	Encode() string
}

// ErrUnknownCode is returned by Decode for a code with no registered kind.
var ErrUnknownCode = errors.New("unknown message code")

// kind ties a message code to its name and codec hooks.
type kind struct {
	name   string
	decode func(payload string) (Message, error)
	// strip removes attribute labels from a diagnostic params string,
	// leaving the fields ready for StripAttribNames. Nil when the
	// generic transform is enough.
	strip func(params string) string
}

var kinds = map[protocol.Code]kind{
	protocol.GameText:       {name: "GameText", decode: decodeGameText},
	protocol.LeaveGame:      {name: "LeaveGame", decode: decodeLeaveGame},
	protocol.JoinGame:       {name: "JoinGame", decode: decodeJoinGame},
	protocol.GameState:      {name: "GameState", decode: decodeGameState},
	protocol.DiscardRequest: {name: "DiscardRequest", decode: decodeDiscardRequest},
	protocol.RollDice:       {name: "RollDice", decode: decodeRollDice},
	protocol.EndTurn:        {name: "EndTurn", decode: decodeEndTurn},
	protocol.Discard:        {name: "Discard", decode: decodeDiscard, strip: stripDiscardAttribs},
}

// Decode parses a wire command line into a message.
// It returns an error, never a partial message, when the line has no
// valid code, the code is unregistered, or the payload is garbled.
func Decode(line string) (Message, error) {
	code, payload, err := protocol.SplitCommand(line)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	k, ok := kinds[code]
	if !ok {
		return nil, fmt.Errorf("decode: %w: %d", ErrUnknownCode, code)
	}
	return k.decode(payload)
}
