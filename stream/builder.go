package stream

import (
	"fmt"

	"github.com/plistfmt/go-plist/ir"
)

// Builder is an EventSink that reconstructs an ir.Node tree from an event
// sequence. It is the inverse of NodeReader: replaying a flattened tree
// into a Builder yields a structurally equal tree.
type Builder struct {
	stack []buildFrame
	root  *ir.Node
	done  bool
}

type buildFrame struct {
	node   *ir.Node
	key    string
	hasKey bool
}

// NewBuilder creates a Builder with no document.
func NewBuilder() *Builder {
	return &Builder{}
}

// WriteEvent incorporates one event into the tree being built.
func (b *Builder) WriteEvent(ev *Event) error {
	if b.done {
		return fmt.Errorf("%w: %s after document completed", ErrBadEvent, ev.Type)
	}
	switch ev.Type {
	case EventStartArray:
		if err := b.checkPlacement(); err != nil {
			return err
		}
		node := &ir.Node{Type: ir.ArrayType}
		if n, ok := ev.SizeHint(); ok {
			node.Values = make([]*ir.Node, 0, n)
		}
		b.push(node)

	case EventStartDictionary:
		if err := b.checkPlacement(); err != nil {
			return err
		}
		node := &ir.Node{Type: ir.DictType}
		if n, ok := ev.SizeHint(); ok {
			node.Keys = make([]string, 0, n)
			node.Values = make([]*ir.Node, 0, n)
		}
		b.push(node)

	case EventEndArray:
		if len(b.stack) == 0 || b.top().node.Type != ir.ArrayType {
			return fmt.Errorf("%w: unexpected EndArray", ErrBadEvent)
		}
		b.close()

	case EventEndDictionary:
		if len(b.stack) == 0 || b.top().node.Type != ir.DictType {
			return fmt.Errorf("%w: unexpected EndDictionary", ErrBadEvent)
		}
		if b.top().hasKey {
			return fmt.Errorf("%w: key %q has no value", ErrBadEvent, b.top().key)
		}
		b.close()

	case EventStringValue:
		if len(b.stack) > 0 {
			top := b.top()
			if top.node.Type == ir.DictType && !top.hasKey {
				top.key = ev.String
				top.hasKey = true
				return nil
			}
		}
		return b.addValue(ir.FromString(ev.String))

	case EventBooleanValue:
		return b.addValue(ir.FromBool(ev.Bool))
	case EventDataValue:
		return b.addValue(ir.FromData(ev.Data))
	case EventDateValue:
		return b.addValue(ir.FromDate(ev.Date))
	case EventIntegerValue:
		return b.addValue(ir.FromInt(ev.Int))
	case EventRealValue:
		return b.addValue(ir.FromReal(ev.Real))

	default:
		return fmt.Errorf("%w: unknown event type %d", ErrBadEvent, ev.Type)
	}
	return nil
}

// Result returns the completed tree. It errors if no document was built or
// containers remain unclosed.
func (b *Builder) Result() (*ir.Node, error) {
	if len(b.stack) != 0 {
		return nil, fmt.Errorf("%w: %d unclosed containers", ErrBadEvent, len(b.stack))
	}
	if !b.done {
		return nil, fmt.Errorf("%w: empty event stream", ErrBadEvent)
	}
	return b.root, nil
}

func (b *Builder) top() *buildFrame {
	return &b.stack[len(b.stack)-1]
}

func (b *Builder) push(node *ir.Node) {
	b.stack = append(b.stack, buildFrame{node: node})
}

// close finishes the open container at the top of the stack and attaches
// it to its parent.
func (b *Builder) close() {
	node := b.top().node
	b.stack = b.stack[:len(b.stack)-1]
	b.attach(node)
}

// checkPlacement verifies a new value may begin here: a dictionary parent
// must have a pending key.
func (b *Builder) checkPlacement() error {
	if len(b.stack) == 0 {
		return nil
	}
	top := b.top()
	if top.node.Type == ir.DictType && !top.hasKey {
		return fmt.Errorf("%w: value in dictionary without key", ErrBadEvent)
	}
	return nil
}

func (b *Builder) addValue(node *ir.Node) error {
	if err := b.checkPlacement(); err != nil {
		return err
	}
	b.attach(node)
	return nil
}

func (b *Builder) attach(node *ir.Node) {
	if len(b.stack) == 0 {
		b.root = node
		b.done = true
		return
	}
	top := b.top()
	if top.node.Type == ir.DictType {
		top.node.Keys = append(top.node.Keys, top.key)
		top.node.Values = append(top.node.Values, node)
		top.hasKey = false
		return
	}
	top.node.Values = append(top.node.Values, node)
}

// EventsToNode reconstructs a tree from a complete event sequence.
func EventsToNode(events []Event) (*ir.Node, error) {
	b := NewBuilder()
	for i := range events {
		if err := b.WriteEvent(&events[i]); err != nil {
			return nil, fmt.Errorf("event %d: %w", i, err)
		}
	}
	return b.Result()
}

// ReadNode pulls src to exhaustion and reconstructs the tree it describes.
func ReadNode(src EventReader) (*ir.Node, error) {
	b := NewBuilder()
	if err := Copy(b, src); err != nil {
		return nil, err
	}
	return b.Result()
}
