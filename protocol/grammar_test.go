package protocol_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyprotocol/gocolony/protocol"
)

func TestSplitCommand(t *testing.T) {
	code, payload, err := protocol.SplitCommand("1033|game42,1,0,2,0,1,0")

	require.NoError(t, err)
	assert.Equal(t, protocol.Discard, code)
	assert.Equal(t, "game42,1,0,2,0,1,0", payload)
}

func TestSplitCommand_EmptyPayload(t *testing.T) {
	code, payload, err := protocol.SplitCommand("1031|")

	require.NoError(t, err)
	assert.Equal(t, protocol.RollDice, code)
	assert.Empty(t, payload)
}

func TestSplitCommand_MissingSeparator(t *testing.T) {
	_, _, err := protocol.SplitCommand("1033")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "separator")
}

func TestSplitCommand_BadCode(t *testing.T) {
	_, _, err := protocol.SplitCommand("discard|game42")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid message code")
}

func TestValidIdentifier(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want bool
	}{
		{"simple", "game42", true},
		{"mixed", "Alice-2_test.v1", true},
		{"empty", "", false},
		{"space", "game 42", false},
		{"sep", "game|42", false},
		{"sep2", "game,42", false},
		{"unicode", "jeué", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, protocol.ValidIdentifier(tt.in))
		})
	}
}
