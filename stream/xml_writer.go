package stream

import (
	"encoding/base64"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const xmlHeader = `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd">
<plist version="1.0">
`

// xmlEscaper covers the characters Apple's tools escape in plist text.
var xmlEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// XMLWriter is an EventSink producing the XML plist encoding. It tracks
// nesting and pending-key state itself, so callers just replay a flat
// event sequence. Close finishes the document; without it the output is
// truncated.
type XMLWriter struct {
	w      io.Writer
	state  *State
	opts   *writerOpts
	offset int64

	started  bool
	rootDone bool
	closed   bool
}

// WriterOption configures XMLWriter behavior.
type WriterOption func(*writerOpts)

type writerOpts struct {
	indent string
	header bool
}

// WithIndent sets the per-level indentation string (default "\t").
func WithIndent(indent string) WriterOption {
	return func(opts *writerOpts) {
		opts.indent = indent
	}
}

// WithoutHeader suppresses the XML declaration, DOCTYPE, and <plist>
// wrapper, producing a bare fragment.
func WithoutHeader() WriterOption {
	return func(opts *writerOpts) {
		opts.header = false
	}
}

// NewXMLWriter creates an XMLWriter writing to w.
func NewXMLWriter(w io.Writer, opts ...WriterOption) *XMLWriter {
	writerOpts := &writerOpts{indent: "\t", header: true}
	for _, opt := range opts {
		opt(writerOpts)
	}
	return &XMLWriter{
		w:     w,
		state: NewState(),
		opts:  writerOpts,
	}
}

// Offset returns the byte offset in the output stream.
func (x *XMLWriter) Offset() int64 {
	return x.offset
}

// WriteEvent writes one event. The first event emits the document header;
// events after the root value completes are rejected.
func (x *XMLWriter) WriteEvent(ev *Event) error {
	if x.closed {
		return fmt.Errorf("%w: write after Close", ErrBadEvent)
	}
	if x.rootDone {
		return fmt.Errorf("%w: %s after root value completed", ErrBadEvent, ev.Type)
	}
	if !x.started {
		if x.opts.header {
			if err := x.writeString(xmlHeader); err != nil {
				return err
			}
		}
		x.started = true
	}

	depth := x.state.Depth()
	isKey := ev.Type == EventStringValue && x.state.IsInDict() && !hasPendingKey(x.state)
	if err := x.state.ProcessEvent(ev); err != nil {
		return err
	}

	var err error
	switch ev.Type {
	case EventStartDictionary:
		err = x.writeLine(depth, "<dict>")
	case EventEndDictionary:
		err = x.writeLine(depth-1, "</dict>")
	case EventStartArray:
		err = x.writeLine(depth, "<array>")
	case EventEndArray:
		err = x.writeLine(depth-1, "</array>")
	case EventStringValue:
		if isKey {
			err = x.writeLine(depth, "<key>"+xmlEscaper.Replace(ev.String)+"</key>")
		} else {
			err = x.writeLine(depth, "<string>"+xmlEscaper.Replace(ev.String)+"</string>")
		}
	case EventBooleanValue:
		if ev.Bool {
			err = x.writeLine(depth, "<true/>")
		} else {
			err = x.writeLine(depth, "<false/>")
		}
	case EventDataValue:
		err = x.writeLine(depth, "<data>"+base64.StdEncoding.EncodeToString(ev.Data)+"</data>")
	case EventDateValue:
		err = x.writeLine(depth, "<date>"+ev.Date.UTC().Format("2006-01-02T15:04:05Z")+"</date>")
	case EventIntegerValue:
		err = x.writeLine(depth, "<integer>"+strconv.FormatInt(ev.Int, 10)+"</integer>")
	case EventRealValue:
		err = x.writeLine(depth, "<real>"+strconv.FormatFloat(ev.Real, 'g', -1, 64)+"</real>")
	default:
		return fmt.Errorf("%w: unknown event type %d", ErrBadEvent, ev.Type)
	}
	if err != nil {
		return err
	}
	if x.state.Depth() == 0 && !isKey {
		x.rootDone = true
	}
	return nil
}

// Close finishes the document. It errors if no root value was written or
// a container is still open.
func (x *XMLWriter) Close() error {
	if x.closed {
		return nil
	}
	if !x.rootDone {
		return fmt.Errorf("%w: document has no root value", ErrBadEvent)
	}
	x.closed = true
	if x.opts.header {
		return x.writeString("</plist>\n")
	}
	return nil
}

func (x *XMLWriter) writeLine(depth int, s string) error {
	if err := x.writeString(strings.Repeat(x.opts.indent, depth)); err != nil {
		return err
	}
	return x.writeString(s + "\n")
}

func (x *XMLWriter) writeString(s string) error {
	n, err := io.WriteString(x.w, s)
	x.offset += int64(n)
	return err
}

func hasPendingKey(s *State) bool {
	_, ok := s.CurrentKey()
	return ok
}
