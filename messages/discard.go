package messages

import (
	"fmt"
	"strings"

	"github.com/colonyprotocol/gocolony/game"
	"github.com/colonyprotocol/gocolony/protocol"
)

// VersionForAlwaysSendGameState is the first arbiter version that, after a
// player discards while others still must discard, sends a
// GameState(WaitingForDiscards) broadcast even though the state has not
// changed. The extra broadcast regularizes the message sequence so bots
// can rely on one consistent shape per turn phase; when the peer's
// negotiated version is below this threshold the arbiter suppresses it
// and the peer infers progress from the other messages already sent.
//
// The bound is inclusive: a peer at exactly this version gets the
// broadcast. The codec itself never branches on version; this constant
// is data for the sequencing layer.
const VersionForAlwaysSendGameState = 2500

// AlwaysSendsGameState reports whether a peer at the given negotiated
// version expects the redundant GameState broadcast after a discard.
func AlwaysSendsGameState(peerVersion int) bool {
	return peerVersion >= VersionForAlwaysSendGameState
}

// Discard reports the resources a player has chosen to discard; it is a
// client's response to the arbiter's DiscardRequest. If the total is
// wrong, the arbiter re-sends DiscardRequest with the required count.
type Discard struct {
	game      string
	resources game.ResourceSet
}

// NewDiscard creates a Discard message from six counts in wire order.
func NewDiscard(ga string, brick, ore, wool, grain, lumber, unknown int) *Discard {
	return &Discard{
		game:      ga,
		resources: game.NewResourceSet(brick, ore, wool, grain, lumber, unknown),
	}
}

// NewDiscardSet creates a Discard message from a resource set.
func NewDiscardSet(ga string, rs game.ResourceSet) *Discard {
	return &Discard{game: ga, resources: rs}
}

// Code returns the message code.
func (m *Discard) Code() protocol.Code {
	return protocol.Discard
}

// Game returns the name of the game.
func (m *Discard) Game() string {
	return m.game
}

// Resources returns the set of resources being discarded.
func (m *Discard) Resources() game.ResourceSet {
	return m.resources
}

// Encode renders the message as
// Discard sep game sep2 brick sep2 ore sep2 wool sep2 grain sep2 lumber sep2 unknown.
func (m *Discard) Encode() string {
	w := protocol.NewFieldWriter(protocol.Discard)
	w.WriteString(m.game)
	for _, k := range game.Kinds {
		w.WriteInt(m.resources.Amount(k))
	}
	return w.String()
}

// String returns a human readable form of the message.
func (m *Discard) String() string {
	return fmt.Sprintf("Discard:game=%s|resources=%s", m.game, m.resources)
}

// decodeDiscard parses a Discard payload: the game name followed by
// exactly six counts.
func decodeDiscard(payload string) (Message, error) {
	r := protocol.NewFieldReader(payload)
	ga := r.ReadString()
	brick := r.ReadInt()
	ore := r.ReadInt()
	wool := r.ReadInt()
	grain := r.ReadInt()
	lumber := r.ReadInt()
	unknown := r.ReadInt()
	if err := r.Finish(); err != nil {
		return nil, fmt.Errorf("decode discard: %w", err)
	}
	return NewDiscard(ga, brick, ore, wool, grain, lumber, unknown), nil
}

// stripDiscardAttribs removes the resources= label so the per-kind
// labels inside the set line up with the generic transform.
func stripDiscardAttribs(params string) string {
	return strings.Replace(params, "resources=", "", 1)
}
