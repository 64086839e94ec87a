package stream

import (
	"errors"
	"testing"
	"time"

	"github.com/plistfmt/go-plist/ir"
)

func roundTrip(t *testing.T, node *ir.Node) {
	t.Helper()
	got, err := EventsToNode(NodeToEvents(node))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ir.Equal(node, got) {
		t.Errorf("round trip changed the tree:\nwant %+v\ngot  %+v", node, got)
	}
}

func TestRoundTrip_Scalars(t *testing.T) {
	roundTrip(t, ir.FromBool(false))
	roundTrip(t, ir.FromInt(-12))
	roundTrip(t, ir.FromReal(2.5))
	roundTrip(t, ir.FromString(""))
	roundTrip(t, ir.FromData([]byte{0x00, 0xff}))
	roundTrip(t, ir.FromDate(time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)))
}

func TestRoundTrip_Containers(t *testing.T) {
	roundTrip(t, ir.FromSlice(nil))
	roundTrip(t, ir.FromKeyVals())
	roundTrip(t, ir.FromKeyVals(
		"Author", ir.FromString("William Shakespeare"),
		"Lines", ir.FromSlice([]*ir.Node{
			ir.FromString("It is a tale told by an idiot,"),
			ir.FromString("Full of sound and fury, signifying nothing."),
		}),
		"Death", ir.FromInt(1564),
		"Height", ir.FromReal(1.6),
		"Data", ir.FromData([]byte{0, 0, 0, 0xbe}),
		"BiggestNumber", ir.FromInt(9223372036854775807),
		"SmallestNumber", ir.FromInt(-9223372036854775808),
		"IsAuthor", ir.FromBool(true),
	))
}

func TestBuilder_ValueWithoutKey(t *testing.T) {
	b := NewBuilder()
	if err := b.WriteEvent(&Event{Type: EventStartDictionary}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	err := b.WriteEvent(&Event{Type: EventIntegerValue, Int: 1})
	if !errors.Is(err, ErrBadEvent) {
		t.Errorf("got %v, want ErrBadEvent", err)
	}
}

func TestBuilder_KeyWithoutValue(t *testing.T) {
	b := NewBuilder()
	for _, ev := range []Event{
		{Type: EventStartDictionary},
		{Type: EventStringValue, String: "orphan"},
	} {
		ev := ev
		if err := b.WriteEvent(&ev); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	err := b.WriteEvent(&Event{Type: EventEndDictionary})
	if !errors.Is(err, ErrBadEvent) {
		t.Errorf("got %v, want ErrBadEvent", err)
	}
}

func TestBuilder_EndMismatch(t *testing.T) {
	b := NewBuilder()
	if err := b.WriteEvent(&Event{Type: EventStartArray}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	err := b.WriteEvent(&Event{Type: EventEndDictionary})
	if !errors.Is(err, ErrBadEvent) {
		t.Errorf("got %v, want ErrBadEvent", err)
	}
}

func TestBuilder_EventAfterRoot(t *testing.T) {
	b := NewBuilder()
	if err := b.WriteEvent(&Event{Type: EventIntegerValue, Int: 1}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	err := b.WriteEvent(&Event{Type: EventIntegerValue, Int: 2})
	if !errors.Is(err, ErrBadEvent) {
		t.Errorf("got %v, want ErrBadEvent", err)
	}
}

func TestBuilder_ResultUnclosed(t *testing.T) {
	b := NewBuilder()
	if err := b.WriteEvent(&Event{Type: EventStartArray}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := b.Result(); !errors.Is(err, ErrBadEvent) {
		t.Errorf("got %v, want ErrBadEvent", err)
	}
}

func TestBuilder_ResultEmpty(t *testing.T) {
	if _, err := NewBuilder().Result(); !errors.Is(err, ErrBadEvent) {
		t.Errorf("got %v, want ErrBadEvent", err)
	}
}

func TestBuilder_StringAsDictKey(t *testing.T) {
	node, err := EventsToNode([]Event{
		{Type: EventStartDictionary, Size: sz(1)},
		{Type: EventStringValue, String: "name"},
		{Type: EventStringValue, String: "value"},
		{Type: EventEndDictionary},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	v, ok := node.Get("name")
	if !ok || v.Type != ir.StringType || v.String != "value" {
		t.Errorf("got %+v", node)
	}
}
