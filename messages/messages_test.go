package messages_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyprotocol/gocolony/game"
	"github.com/colonyprotocol/gocolony/messages"
)

func TestDecode_Dispatch(t *testing.T) {
	tests := []struct {
		name string
		line string
		want messages.Message
	}{
		{"join game", "1013|game42,alice", messages.NewJoinGame("game42", "alice")},
		{"leave game", "1011|game42,alice", messages.NewLeaveGame("game42", "alice")},
		{"game text", "1010|game42,alice rolled a 7", messages.NewGameText("game42", "alice rolled a 7")},
		{"game state", "1025|game42,50", messages.NewGameState("game42", game.StateWaitingForDiscards)},
		{"discard request", "1029|game42,4", messages.NewDiscardRequest("game42", 4)},
		{"roll dice", "1031|game42", messages.NewRollDice("game42")},
		{"end turn", "1032|game42", messages.NewEndTurn("game42")},
		{"discard", "1033|game42,1,0,2,0,1,0", messages.NewDiscard("game42", 1, 0, 2, 0, 1, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := messages.Decode(tt.line)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecode_Encode_RoundTrip(t *testing.T) {
	msgs := []messages.Message{
		messages.NewJoinGame("game42", "alice"),
		messages.NewLeaveGame("game42", "bob"),
		messages.NewGameText("game42", "bob built a road"),
		messages.NewGameState("game42", game.StatePlay),
		messages.NewDiscardRequest("game42", 5),
		messages.NewRollDice("game42"),
		messages.NewEndTurn("game42"),
		messages.NewDiscard("game42", 0, 0, 0, 0, 0, 0),
	}

	for _, m := range msgs {
		got, err := messages.Decode(m.Encode())

		require.NoError(t, err, "round trip of %s", m.Encode())
		assert.Equal(t, m, got)
	}
}

func TestDecode_UnknownCode(t *testing.T) {
	msg, err := messages.Decode("9999|game42")

	require.Error(t, err)
	assert.Nil(t, msg)
	assert.ErrorIs(t, err, messages.ErrUnknownCode)
}

func TestDecode_Malformed(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{"empty line", ""},
		{"no separator", "1033"},
		{"non-numeric code", "discard|game42"},
		{"wrong field type", "1025|game42,notanumber"},
		{"missing fields", "1013|game42"},
		{"extra fields", "1031|game42,extra"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg, err := messages.Decode(tt.line)

			assert.Error(t, err)
			assert.Nil(t, msg)
		})
	}
}

func TestMessage_Accessors(t *testing.T) {
	join := messages.NewJoinGame("game42", "alice")
	assert.Equal(t, "game42", join.Game())
	assert.Equal(t, "alice", join.Player())

	req := messages.NewDiscardRequest("game42", 4)
	assert.Equal(t, 4, req.Count())

	text := messages.NewGameText("game42", "hi")
	assert.Equal(t, "hi", text.Text())

	state := messages.NewGameState("game42", game.StateOver)
	assert.Equal(t, game.StateOver, state.State())
}
