package stream

import "io"

// EventReader provides events one pull at a time. ReadEvent returns io.EOF
// once the stream is exhausted, and keeps returning io.EOF on every call
// after that.
type EventReader interface {
	ReadEvent() (*Event, error)
}

// EventSink receives events one at a time. A sink maintains its own
// nesting and pending-key state across calls; the contract makes no
// guarantee about buffering or flushing.
type EventSink interface {
	WriteEvent(*Event) error
}

// EmptyEventReader provides an empty event stream.
type EmptyEventReader struct{}

func NewEmptyEventReader() *EmptyEventReader {
	return &EmptyEventReader{}
}

// ReadEvent returns io.EOF immediately (empty stream).
func (r *EmptyEventReader) ReadEvent() (*Event, error) {
	return nil, io.EOF
}

// Copy pumps events from src into sink until src is exhausted. Errors from
// either side are returned as-is.
func Copy(sink EventSink, src EventReader) error {
	for {
		ev, err := src.ReadEvent()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if err := sink.WriteEvent(ev); err != nil {
			return err
		}
	}
}
