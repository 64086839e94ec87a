package stream

import (
	"fmt"
	"time"
)

// Event represents one step of a flattened property list: a container
// boundary or a scalar value. Events are produced by the format readers and
// by NodeReader, and consumed by sinks.
//
// Only the payload field matching Type is set. Size is the optional declared
// length hint on StartArray/StartDictionary events: the exact number of
// direct children (elements, or key-value pairs), or nil when the source
// encoding does not declare one.
type Event struct {
	Type EventType

	Size *uint64

	Bool   bool
	Data   []byte
	Date   time.Time
	Int    int64
	Real   float64
	String string
}

// IsValue returns true if this event carries a scalar value (as opposed to
// a container boundary).
func (e *Event) IsValue() bool {
	switch e.Type {
	case EventBooleanValue, EventDataValue, EventDateValue,
		EventIntegerValue, EventRealValue, EventStringValue:
		return true
	default:
		return false
	}
}

// EventType represents the type of a structural event.
type EventType int

const (
	EventStartArray EventType = iota
	EventEndArray
	EventStartDictionary
	EventEndDictionary
	EventBooleanValue
	EventDataValue
	EventDateValue
	EventIntegerValue
	EventRealValue
	EventStringValue
)

func (t EventType) String() string {
	switch t {
	case EventStartArray:
		return "StartArray"
	case EventEndArray:
		return "EndArray"
	case EventStartDictionary:
		return "StartDictionary"
	case EventEndDictionary:
		return "EndDictionary"
	case EventBooleanValue:
		return "BooleanValue"
	case EventDataValue:
		return "DataValue"
	case EventDateValue:
		return "DateValue"
	case EventIntegerValue:
		return "IntegerValue"
	case EventRealValue:
		return "RealValue"
	case EventStringValue:
		return "StringValue"
	default:
		return "Unknown"
	}
}

func (t EventType) IsStart() bool {
	return t == EventStartArray || t == EventStartDictionary
}

func (t EventType) IsEnd() bool {
	return t == EventEndArray || t == EventEndDictionary
}

func (t EventType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *EventType) UnmarshalText(d []byte) error {
	k := string(d)
	pt, ok := map[string]EventType{
		"StartArray":      EventStartArray,
		"EndArray":        EventEndArray,
		"StartDictionary": EventStartDictionary,
		"EndDictionary":   EventEndDictionary,
		"BooleanValue":    EventBooleanValue,
		"DataValue":       EventDataValue,
		"DateValue":       EventDateValue,
		"IntegerValue":    EventIntegerValue,
		"RealValue":       EventRealValue,
		"StringValue":     EventStringValue,
	}[k]
	if ok {
		*t = pt
		return nil
	}
	return fmt.Errorf("unknown type %q", k)
}

// SizeHint returns the declared length hint of a Start event.
func (e *Event) SizeHint() (uint64, bool) {
	if e.Size == nil {
		return 0, false
	}
	return *e.Size, true
}

func sizeHint(n int) *uint64 {
	u := uint64(n)
	return &u
}
