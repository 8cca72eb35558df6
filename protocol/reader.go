package protocol

import (
	"fmt"
	"strconv"
	"strings"
)

// FieldReader tokenizes a command payload on Sep2.
//
// FieldReader uses the sticky error pattern: after an error occurs, all
// subsequent reads return zero values. Call Finish() after a series of
// reads; it also rejects payloads with leftover fields so decoders are
// strict about token count.
type FieldReader struct {
	fields []string
	pos    int
	err    error
}

// NewFieldReader creates a FieldReader over the given payload.
func NewFieldReader(payload string) *FieldReader {
	if payload == "" {
		return &FieldReader{}
	}
	return &FieldReader{fields: strings.Split(payload, Sep2)}
}

// Err returns the first error encountered during reads.
func (r *FieldReader) Err() error {
	return r.err
}

// ReadString reads the next field verbatim.
func (r *FieldReader) ReadString() string {
	if r.err != nil {
		return ""
	}
	if r.pos >= len(r.fields) {
		r.err = fmt.Errorf("missing field %d", r.pos+1)
		return ""
	}
	s := r.fields[r.pos]
	r.pos++
	return s
}

// ReadInt reads the next field as a base-10 integer.
func (r *FieldReader) ReadInt() int {
	s := r.ReadString()
	if r.err != nil {
		return 0
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		r.err = fmt.Errorf("field %d: invalid integer %q", r.pos, s)
		return 0
	}
	return n
}

// Finish returns the first read error, or an error if the payload had
// more fields than were read. A decoder that reads all its fields and
// gets a nil Finish has consumed exactly the expected token count.
func (r *FieldReader) Finish() error {
	if r.err != nil {
		return r.err
	}
	if r.pos != len(r.fields) {
		return fmt.Errorf("%d trailing fields", len(r.fields)-r.pos)
	}
	return nil
}
