package protocol

import (
	"strconv"
	"strings"
)

// FieldWriter builds a wire command: the message code, Sep, then the
// payload fields joined with Sep2. Writes cannot fail; rendering is a
// pure string operation.
type FieldWriter struct {
	b      strings.Builder
	fields int
}

// NewFieldWriter starts a command for the given message code.
func NewFieldWriter(code Code) *FieldWriter {
	w := &FieldWriter{}
	w.b.WriteString(strconv.Itoa(int(code)))
	w.b.WriteString(Sep)
	return w
}

// WriteString appends a string field.
// The value must not contain Sep or Sep2; the grammar has no escaping.
func (w *FieldWriter) WriteString(s string) {
	if w.fields > 0 {
		w.b.WriteString(Sep2)
	}
	w.b.WriteString(s)
	w.fields++
}

// WriteInt appends a base-10 integer field.
func (w *FieldWriter) WriteInt(n int) {
	w.WriteString(strconv.Itoa(n))
}

// String returns the finished command line, without a trailing newline;
// framing is the transport's job.
func (w *FieldWriter) String() string {
	return w.b.String()
}
