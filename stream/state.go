package stream

import (
	"fmt"
	"strconv"
	"strings"
)

// State provides minimal stack/state/path management for event sequences.
// It validates that events arrive in a structurally legal order and tracks
// the current nesting, key, and index. Sinks use it to reconstruct
// structure from the flat stream.
type State struct {
	stack []item
}

type item struct {
	dict   bool
	key    string
	hasKey bool
	n      int // children (elements or key-value pairs) completed so far
}

// NewState creates a new State for tracking structure state.
func NewState() *State {
	return &State{}
}

func (s *State) pop() {
	n := len(s.stack)
	s.stack = s.stack[:n-1]
}

func (s *State) current() *item {
	n := len(s.stack)
	return &s.stack[n-1]
}

// ProcessEvent processes an event and updates state/path tracking.
// Call this for each event in order.
//
// Inside a dictionary, a StringValue with no pending key is the key of the
// next entry; any other value event without a pending key is an error.
func (s *State) ProcessEvent(event *Event) error {
	switch event.Type {
	case EventStartArray, EventStartDictionary:
		if err := s.beginValue(); err != nil {
			return err
		}
		s.stack = append(s.stack, item{dict: event.Type == EventStartDictionary})

	case EventEndArray:
		if s.Depth() <= 0 {
			return fmt.Errorf("%w: EndArray at depth 0", ErrBadEvent)
		}
		if s.current().dict {
			return fmt.Errorf("%w: EndArray closes dictionary", ErrBadEvent)
		}
		s.pop()
		s.endValue()

	case EventEndDictionary:
		if s.Depth() <= 0 {
			return fmt.Errorf("%w: EndDictionary at depth 0", ErrBadEvent)
		}
		cur := s.current()
		if !cur.dict {
			return fmt.Errorf("%w: EndDictionary closes array", ErrBadEvent)
		}
		if cur.hasKey {
			return fmt.Errorf("%w: key %q has no value", ErrBadEvent, cur.key)
		}
		s.pop()
		s.endValue()

	case EventStringValue:
		if s.Depth() > 0 {
			cur := s.current()
			if cur.dict && !cur.hasKey {
				cur.hasKey = true
				cur.key = event.String
				return nil
			}
		}
		if err := s.beginValue(); err != nil {
			return err
		}
		s.endValue()

	case EventBooleanValue, EventDataValue, EventDateValue,
		EventIntegerValue, EventRealValue:
		if err := s.beginValue(); err != nil {
			return err
		}
		s.endValue()
	}
	return nil
}

func (s *State) beginValue() error {
	if s.Depth() == 0 {
		return nil
	}
	cur := s.current()
	if cur.dict && !cur.hasKey {
		return fmt.Errorf("%w: value in dictionary without key", ErrBadEvent)
	}
	return nil
}

func (s *State) endValue() {
	if s.Depth() == 0 {
		return
	}
	cur := s.current()
	cur.n++
	cur.hasKey = false
}

// Depth returns the current nesting depth (0 = top level).
func (s *State) Depth() int {
	return len(s.stack)
}

// IsInDict returns true if currently inside a dictionary.
func (s *State) IsInDict() bool {
	if len(s.stack) == 0 {
		return false
	}
	return s.current().dict
}

// IsInArray returns true if currently inside an array.
func (s *State) IsInArray() bool {
	if len(s.stack) == 0 {
		return false
	}
	return !s.current().dict
}

// CurrentKey returns the pending dictionary key (if one has been seen and
// its value has not completed yet).
func (s *State) CurrentKey() (string, bool) {
	if len(s.stack) == 0 {
		return "", false
	}
	cur := s.current()
	if !cur.dict || !cur.hasKey {
		return "", false
	}
	return cur.key, true
}

// CurrentIndex returns the index of the array element being processed
// (if in an array).
func (s *State) CurrentIndex() (int, bool) {
	if len(s.stack) == 0 {
		return 0, false
	}
	cur := s.current()
	if cur.dict {
		return 0, false
	}
	return cur.n, true
}

// CurrentPath returns the current key path (e.g., "", "key", "key[0]").
func (s *State) CurrentPath() string {
	var b strings.Builder
	for i := range s.stack {
		item := &s.stack[i]
		if item.dict {
			if !item.hasKey {
				continue
			}
			if b.Len() > 0 {
				b.WriteByte('.')
			}
			b.WriteString(item.key)
			continue
		}
		b.WriteByte('[')
		b.WriteString(strconv.Itoa(item.n))
		b.WriteByte(']')
	}
	return b.String()
}
