package stream

import (
	"encoding/base64"
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/plistfmt/go-plist/debug"
)

// xmlDateLayouts are the timestamp forms accepted in <date> elements.
// Apple's tools write the first; the rest show up in the wild.
var xmlDateLayouts = []string{
	"2006-01-02T15:04:05Z",
	time.RFC3339,
	"2006-01-02T15:04:05",
}

// xmlReader reads the XML plist encoding by pulling tokens from an
// encoding/xml decoder and translating elements into events. XML gives no
// length declarations, so Start events carry no size hint.
type xmlReader struct {
	d        *xml.Decoder
	finished bool
	// open container elements, true for dict
	stack []bool
}

func newXMLReader(r io.Reader) *xmlReader {
	return &xmlReader{d: xml.NewDecoder(r)}
}

func (x *xmlReader) ReadEvent() (*Event, error) {
	if x.finished {
		return nil, io.EOF
	}
	for {
		tok, err := x.d.Token()
		if err == io.EOF {
			x.finished = true
			return nil, io.EOF
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidData, err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			ev, err := x.startElement(t)
			if err != nil {
				return nil, err
			}
			if ev != nil {
				if debug.XML() {
					debug.Logf("xml: <%s> -> %s\n", t.Name.Local, ev.Type)
				}
				return ev, nil
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "dict":
				x.stack = x.stack[:len(x.stack)-1]
				return &Event{Type: EventEndDictionary}, nil
			case "array":
				x.stack = x.stack[:len(x.stack)-1]
				return &Event{Type: EventEndArray}, nil
			}
			// </plist> and scalar end tags are consumed elsewhere.
		}
		// Character data, comments, directives between elements are skipped.
	}
}

func (x *xmlReader) startElement(t xml.StartElement) (*Event, error) {
	switch t.Name.Local {
	case "plist":
		return nil, nil
	case "dict":
		x.stack = append(x.stack, true)
		return &Event{Type: EventStartDictionary}, nil
	case "array":
		x.stack = append(x.stack, false)
		return &Event{Type: EventStartArray}, nil
	case "key":
		s, err := x.text(t)
		if err != nil {
			return nil, err
		}
		if len(x.stack) == 0 || !x.stack[len(x.stack)-1] {
			return nil, fmt.Errorf("%w: <key> outside <dict>", ErrInvalidData)
		}
		return &Event{Type: EventStringValue, String: s}, nil
	case "string":
		s, err := x.text(t)
		if err != nil {
			return nil, err
		}
		return &Event{Type: EventStringValue, String: s}, nil
	case "integer":
		s, err := x.text(t)
		if err != nil {
			return nil, err
		}
		n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: <integer> %q", ErrInvalidData, s)
		}
		return &Event{Type: EventIntegerValue, Int: n}, nil
	case "real":
		s, err := x.text(t)
		if err != nil {
			return nil, err
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: <real> %q", ErrInvalidData, s)
		}
		return &Event{Type: EventRealValue, Real: f}, nil
	case "true":
		if err := x.d.Skip(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidData, err)
		}
		return &Event{Type: EventBooleanValue, Bool: true}, nil
	case "false":
		if err := x.d.Skip(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidData, err)
		}
		return &Event{Type: EventBooleanValue, Bool: false}, nil
	case "data":
		s, err := x.text(t)
		if err != nil {
			return nil, err
		}
		s = strings.Map(dropSpace, s)
		data, err := base64.StdEncoding.DecodeString(s)
		if err != nil {
			return nil, fmt.Errorf("%w: <data> is not base64: %v", ErrInvalidData, err)
		}
		return &Event{Type: EventDataValue, Data: data}, nil
	case "date":
		s, err := x.text(t)
		if err != nil {
			return nil, err
		}
		s = strings.TrimSpace(s)
		for _, layout := range xmlDateLayouts {
			if d, err := time.Parse(layout, s); err == nil {
				return &Event{Type: EventDateValue, Date: d}, nil
			}
		}
		return nil, fmt.Errorf("%w: <date> %q", ErrInvalidData, s)
	default:
		return nil, fmt.Errorf("%w: unexpected element <%s>", ErrInvalidData, t.Name.Local)
	}
}

// text collects the character data of a scalar element up to its end tag.
func (x *xmlReader) text(start xml.StartElement) (string, error) {
	var b strings.Builder
	for {
		tok, err := x.d.Token()
		if err != nil {
			return "", eofErr(err)
		}
		switch t := tok.(type) {
		case xml.CharData:
			b.Write(t)
		case xml.EndElement:
			return b.String(), nil
		case xml.StartElement:
			return "", fmt.Errorf("%w: unexpected element <%s> inside <%s>", ErrInvalidData, t.Name.Local, start.Name.Local)
		}
	}
}

func dropSpace(r rune) rune {
	switch r {
	case ' ', '\t', '\n', '\r':
		return -1
	}
	return r
}
