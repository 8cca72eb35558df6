package messages

import (
	"fmt"
	"strings"

	"github.com/colonyprotocol/gocolony/protocol"
)

// StripAttribNames converts the params part of a message's String() form
// into a comma-delimited field list matching the wire payload: each
// Sep-separated token loses everything up to and including its first '='.
// Tokens without a '=' pass through unchanged.
func StripAttribNames(params string) string {
	parts := strings.Split(params, protocol.Sep)
	for i, p := range parts {
		if j := strings.Index(p, "="); j >= 0 {
			parts[i] = p[j+1:]
		}
	}
	return strings.Join(parts, protocol.Sep2)
}

// StripAttribNamesFor strips attribute labels from the params part of the
// given kind's String() form, applying the kind's own label fixups (for
// example Discard's resources= label) before the generic transform. The
// result's comma-separated fields match the kind's wire payload exactly.
func StripAttribNamesFor(code protocol.Code, params string) (string, error) {
	k, ok := kinds[code]
	if !ok {
		return "", fmt.Errorf("strip attribs: %w: %d", ErrUnknownCode, code)
	}
	if k.strip != nil {
		params = k.strip(params)
	}
	return StripAttribNames(params), nil
}

// DecodeDiagnostic parses a line in String() log form, "Name:key=value|...",
// back into a message. It strips the attribute labels and feeds the result
// to the kind's wire decoder. This is for offline log-replay tooling; the
// live decoder only ever sees wire lines.
func DecodeDiagnostic(s string) (Message, error) {
	name, params, found := strings.Cut(s, ":")
	if !found {
		return nil, fmt.Errorf("decode diagnostic: missing ':' in %q", s)
	}
	for code, k := range kinds {
		if k.name != name {
			continue
		}
		stripped, err := StripAttribNamesFor(code, params)
		if err != nil {
			return nil, err
		}
		msg, err := k.decode(stripped)
		if err != nil {
			return nil, fmt.Errorf("decode diagnostic %s: %w", name, err)
		}
		return msg, nil
	}
	return nil, fmt.Errorf("decode diagnostic: unknown message name %q", name)
}
