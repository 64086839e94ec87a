package stream

import (
	"io"

	"github.com/plistfmt/go-plist/ir"
)

// NodeReader is an EventReader over the flattened form of an ir.Node tree.
// The event sequence is materialized up front by a pre-order depth-first
// walk and then served one event per ReadEvent call.
//
// The tree is consumed: nested Data payloads are referenced, not copied, so
// the caller must not mutate the tree after handing it over.
type NodeReader struct {
	events []Event
	pos    int
}

// NewNodeReader flattens node into its event sequence.
func NewNodeReader(node *ir.Node) *NodeReader {
	return &NodeReader{events: NodeToEvents(node)}
}

// ReadEvent returns the next event, or io.EOF once the sequence is
// exhausted (and on every call after that).
func (r *NodeReader) ReadEvent() (*Event, error) {
	if r.pos >= len(r.events) {
		return nil, io.EOF
	}
	ev := &r.events[r.pos]
	r.pos++
	return ev, nil
}

// NodeToEvents flattens node into its event sequence.
//
// Arrays and dictionaries produce Start/End pairs with an exact length
// hint; dictionary entries appear as key (StringValue) then value, in the
// dictionary's order. Flattening a well-formed tree cannot fail; a node
// with an unknown Type is a programming error and panics.
func NodeToEvents(node *ir.Node) []Event {
	return appendEvents(nil, node)
}

func appendEvents(events []Event, node *ir.Node) []Event {
	switch node.Type {
	case ir.ArrayType:
		events = append(events, Event{Type: EventStartArray, Size: sizeHint(len(node.Values))})
		for _, v := range node.Values {
			events = appendEvents(events, v)
		}
		events = append(events, Event{Type: EventEndArray})
	case ir.DictType:
		events = append(events, Event{Type: EventStartDictionary, Size: sizeHint(len(node.Keys))})
		for i, key := range node.Keys {
			events = append(events, Event{Type: EventStringValue, String: key})
			events = appendEvents(events, node.Values[i])
		}
		events = append(events, Event{Type: EventEndDictionary})
	case ir.BoolType:
		events = append(events, Event{Type: EventBooleanValue, Bool: node.Bool})
	case ir.DataType:
		events = append(events, Event{Type: EventDataValue, Data: node.Data})
	case ir.DateType:
		events = append(events, Event{Type: EventDateValue, Date: node.Date})
	case ir.IntegerType:
		events = append(events, Event{Type: EventIntegerValue, Int: node.Int})
	case ir.RealType:
		events = append(events, Event{Type: EventRealValue, Real: node.Real})
	case ir.StringType:
		events = append(events, Event{Type: EventStringValue, String: node.String})
	default:
		panic("unhandled node type " + node.Type.String())
	}
	return events
}
