package stream

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/plistfmt/go-plist/ir"
)

func binaryRoundTrip(t *testing.T, node *ir.Node) {
	t.Helper()
	var buf bytes.Buffer
	w := NewBinaryWriter(&buf)
	if err := Copy(w, NewNodeReader(node)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, err := ReadNode(NewDecoder(bytes.NewReader(buf.Bytes())))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ir.Equal(node, got) {
		t.Errorf("round trip changed the tree:\nwant %+v\ngot  %+v", node, got)
	}
}

func TestBinaryWriter_RoundTrip(t *testing.T) {
	binaryRoundTrip(t, ir.FromKeyVals(
		"Author", ir.FromString("William Shakespeare"),
		"Height", ir.FromReal(1.6),
		"Death", ir.FromInt(1616),
		"Negative", ir.FromInt(-42),
		"Data", ir.FromData([]byte{0, 0, 0, 0xbe}),
		"Unicode", ir.FromString("héllo ☃"),
		"Empty", ir.FromSlice(nil),
		"IsAuthor", ir.FromBool(true),
	))
}

func TestBinaryWriter_RoundTripScalarRoot(t *testing.T) {
	binaryRoundTrip(t, ir.FromString("alone"))
	binaryRoundTrip(t, ir.FromBool(false))
	binaryRoundTrip(t, ir.FromInt(70000))
}

func TestBinaryWriter_RoundTripDate(t *testing.T) {
	binaryRoundTrip(t, ir.FromDate(time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)))
}

func TestBinaryWriter_LongString(t *testing.T) {
	// Length spills past the marker nibble.
	binaryRoundTrip(t, ir.FromString(strings.Repeat("x", 300)))
}

func TestBinaryWriter_Signature(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteBinaryNode(&buf, ir.FromInt(1)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("bplist00")) {
		t.Errorf("output does not start with the signature: % x", buf.Bytes()[:8])
	}
	if buf.Len() < 8+32 {
		t.Errorf("output too short: %d bytes", buf.Len())
	}
}
