package stream

import (
	"bytes"
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/plistfmt/go-plist/ir"
)

func TestXMLReader_AllScalars(t *testing.T) {
	doc := `<plist version="1.0"><array>
		<string>hi &amp; bye</string>
		<integer>-7</integer>
		<real>1.5</real>
		<true/>
		<false/>
		<data>AAEC</data>
		<date>2024-03-01T12:00:00Z</date>
	</array></plist>`
	events := drain(t, newXMLReader(strings.NewReader(doc)))
	expected := []Event{
		{Type: EventStartArray},
		{Type: EventStringValue, String: "hi & bye"},
		{Type: EventIntegerValue, Int: -7},
		{Type: EventRealValue, Real: 1.5},
		{Type: EventBooleanValue, Bool: true},
		{Type: EventBooleanValue, Bool: false},
		{Type: EventDataValue, Data: []byte{0, 1, 2}},
		{Type: EventDateValue, Date: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)},
		{Type: EventEndArray},
	}
	if !reflect.DeepEqual(events, expected) {
		t.Errorf("got %+v, want %+v", events, expected)
	}
}

func TestXMLReader_DataWithWhitespace(t *testing.T) {
	doc := "<data>\n\tAAEC\n\tAwQF\n</data>"
	events := drain(t, newXMLReader(strings.NewReader(doc)))
	expected := []Event{{Type: EventDataValue, Data: []byte{0, 1, 2, 3, 4, 5}}}
	if !reflect.DeepEqual(events, expected) {
		t.Errorf("got %+v, want %+v", events, expected)
	}
}

func TestXMLReader_KeyOutsideDict(t *testing.T) {
	r := newXMLReader(strings.NewReader("<array><key>bad</key></array>"))
	if _, err := r.ReadEvent(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, err := r.ReadEvent()
	if !errors.Is(err, ErrInvalidData) {
		t.Errorf("got %v, want ErrInvalidData", err)
	}
}

func TestXMLReader_BadInteger(t *testing.T) {
	r := newXMLReader(strings.NewReader("<integer>twelve</integer>"))
	_, err := r.ReadEvent()
	if !errors.Is(err, ErrInvalidData) {
		t.Errorf("got %v, want ErrInvalidData", err)
	}
}

func TestXMLWriter_Document(t *testing.T) {
	var buf bytes.Buffer
	w := NewXMLWriter(&buf)
	node := ir.FromKeyVals(
		"Age", ir.FromInt(28),
		"Tags", ir.FromSlice([]*ir.Node{ir.FromString("a<b")}),
	)
	if err := Copy(w, NewNodeReader(node)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expected := `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd">
<plist version="1.0">
<dict>
	<key>Age</key>
	<integer>28</integer>
	<key>Tags</key>
	<array>
		<string>a&lt;b</string>
	</array>
</dict>
</plist>
`
	if buf.String() != expected {
		t.Errorf("got:\n%s\nwant:\n%s", buf.String(), expected)
	}
}

func TestXMLWriter_RoundTrip(t *testing.T) {
	node := ir.FromKeyVals(
		"Author", ir.FromString("William Shakespeare"),
		"Birthdate", ir.FromDate(time.Date(1564, 4, 26, 0, 0, 0, 0, time.UTC)),
		"Data", ir.FromData([]byte{0, 0, 0, 0xbe}),
		"Height", ir.FromReal(1.6),
		"IsAuthor", ir.FromBool(true),
		"Empty", ir.FromSlice(nil),
	)
	var buf bytes.Buffer
	w := NewXMLWriter(&buf)
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

func TestXMLWriter_CloseWithoutRoot(t *testing.T) {
	w := NewXMLWriter(&bytes.Buffer{})
	if err := w.Close(); !errors.Is(err, ErrBadEvent) {
		t.Errorf("got %v, want ErrBadEvent", err)
	}
}

func TestXMLWriter_EventAfterRoot(t *testing.T) {
	w := NewXMLWriter(&bytes.Buffer{})
	if err := w.WriteEvent(&Event{Type: EventIntegerValue, Int: 1}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	err := w.WriteEvent(&Event{Type: EventIntegerValue, Int: 2})
	if !errors.Is(err, ErrBadEvent) {
		t.Errorf("got %v, want ErrBadEvent", err)
	}
}
