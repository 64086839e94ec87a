package stream

import (
	"bytes"
	"errors"
	"math"
	"reflect"
	"testing"
	"time"
)

// bplist assembles a binary plist from object byte strings, generating
// the offset table and trailer with one-byte offsets and refs.
func bplist(topRef uint64, objs ...[]byte) []byte {
	var buf bytes.Buffer
	buf.WriteString("bplist00")
	var offsets []byte
	for _, o := range objs {
		offsets = append(offsets, byte(buf.Len()))
		buf.Write(o)
	}
	tableOffset := buf.Len()
	buf.Write(offsets)
	var trailer [32]byte
	trailer[6] = 1
	trailer[7] = 1
	trailer[15] = byte(len(objs))
	trailer[23] = byte(topRef)
	trailer[31] = byte(tableOffset)
	buf.Write(trailer[:])
	return buf.Bytes()
}

func TestBinary_EmptyArray(t *testing.T) {
	d := NewDecoder(bytes.NewReader(bplist(0, []byte{0xa0})))
	events := drain(t, d)
	expected := []Event{
		{Type: EventStartArray, Size: sz(0)},
		{Type: EventEndArray},
	}
	if !reflect.DeepEqual(events, expected) {
		t.Errorf("got %+v, want %+v", events, expected)
	}
}

func TestBinary_Scalars(t *testing.T) {
	doc := bplist(0,
		[]byte{0xa4, 1, 2, 3, 4},
		[]byte{0x09},
		[]byte{0x11, 0x01, 0x00}, // 256
		[]byte{0x23, 0x40, 0x04, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, // 2.5
		[]byte{0x44, 0xde, 0xad, 0xbe, 0xef},
	)
	node, err := ReadNode(NewDecoder(bytes.NewReader(doc)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if node.Len() != 4 {
		t.Fatalf("got %d elements, want 4", node.Len())
	}
	if v := node.Values[0]; !v.Bool {
		t.Errorf("element 0: got %+v", v)
	}
	if v := node.Values[1]; v.Int != 256 {
		t.Errorf("element 1: got %+v", v)
	}
	if v := node.Values[2]; v.Real != 2.5 {
		t.Errorf("element 2: got %+v", v)
	}
	if v := node.Values[3]; !bytes.Equal(v.Data, []byte{0xde, 0xad, 0xbe, 0xef}) {
		t.Errorf("element 3: got %+v", v)
	}
}

func TestBinary_UTF16String(t *testing.T) {
	// "héllo" as UTF-16BE code units
	doc := bplist(0, []byte{0x65, 0x00, 'h', 0x00, 0xe9, 0x00, 'l', 0x00, 'l', 0x00, 'o'})
	node, err := ReadNode(NewDecoder(bytes.NewReader(doc)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if node.String != "héllo" {
		t.Errorf("got %q", node.String)
	}
}

func TestBinary_LongCount(t *testing.T) {
	// 15-element data object: the info nibble spills into an integer.
	payload := bytes.Repeat([]byte{0xab}, 15)
	obj := append([]byte{0x4f, 0x10, 15}, payload...)
	node, err := ReadNode(NewDecoder(bytes.NewReader(bplist(0, obj))))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Equal(node.Data, payload) {
		t.Errorf("got %d bytes", len(node.Data))
	}
}

func TestBinary_Date(t *testing.T) {
	// 100.5 seconds past the reference date.
	var obj [9]byte
	obj[0] = 0x33
	bits := math.Float64bits(100.5)
	for i := 0; i < 8; i++ {
		obj[1+i] = byte(bits >> (8 * (7 - i)))
	}
	node, err := ReadNode(NewDecoder(bytes.NewReader(bplist(0, obj[:]))))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := time.Date(2001, 1, 1, 0, 1, 40, 500000000, time.UTC)
	if !node.Date.Equal(want) {
		t.Errorf("got %v, want %v", node.Date, want)
	}
}

func TestBinary_NegativeInt(t *testing.T) {
	doc := bplist(0, []byte{0x13, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xfe})
	node, err := ReadNode(NewDecoder(bytes.NewReader(doc)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if node.Int != -2 {
		t.Errorf("got %d, want -2", node.Int)
	}
}

func TestBinary_CyclicReference(t *testing.T) {
	// An array whose single element is the array itself.
	doc := bplist(0, []byte{0xa1, 0x00})
	_, err := ReadNode(NewDecoder(bytes.NewReader(doc)))
	if !errors.Is(err, ErrInvalidData) {
		t.Errorf("got %v, want ErrInvalidData", err)
	}
}

func TestBinary_TruncatedTrailer(t *testing.T) {
	doc := bplist(0, []byte{0xa0})
	_, err := ReadNode(NewDecoder(bytes.NewReader(doc[:20])))
	if !errors.Is(err, ErrUnexpectedEOF) {
		t.Errorf("got %v, want ErrUnexpectedEOF", err)
	}
}

func TestBinary_BadTopRef(t *testing.T) {
	doc := bplist(9, []byte{0xa0})
	_, err := ReadNode(NewDecoder(bytes.NewReader(doc)))
	if !errors.Is(err, ErrInvalidData) {
		t.Errorf("got %v, want ErrInvalidData", err)
	}
}
