// Package protocol defines the flat text wire grammar of the Colony
// protocol and the low-level tokenizing used by the message codecs.
//
// Each command is a single line:
//
//	CODE|field,field,...
//
// Sep separates the type code from the payload, Sep2 separates payload
// fields from each other. The split is deliberately two-level: a
// dispatcher can read the code without knowing how many fields the kind
// has, then hand the payload to the kind-specific decoder. Field values
// must not contain either delimiter; the grammar has no escaping.
package protocol

import (
	"fmt"
	"strconv"
	"strings"
)

// Wire delimiters.
const (
	// Sep separates the message code from the payload.
	Sep = "|"
	// Sep2 separates payload fields from each other.
	Sep2 = ","
)

// SplitCommand splits a wire line into its message code and payload.
// It fails if the line has no Sep or the code is not an integer.
func SplitCommand(line string) (Code, string, error) {
	tag, payload, found := strings.Cut(line, Sep)
	if !found {
		return 0, "", fmt.Errorf("missing %q separator in %q", Sep, line)
	}
	n, err := strconv.Atoi(tag)
	if err != nil {
		return 0, "", fmt.Errorf("invalid message code %q", tag)
	}
	return Code(n), payload, nil
}

// ValidIdentifier reports whether s may be used as a game or player name
// on the wire. Identifiers are nonempty and limited to ASCII letters,
// digits, '-', '_' and '.', which keeps them clear of both delimiters.
// Callers that accept names from users must check this before building
// messages; the codecs themselves do not re-validate.
func ValidIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		case r == '-' || r == '_' || r == '.':
		default:
			return false
		}
	}
	return true
}
