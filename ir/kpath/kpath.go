package kpath

import (
	"fmt"
	"strconv"
	"strings"
)

// Segment is one step in a key path: a dictionary field or an array index.
// Exactly one of Field, Index is set.
type Segment struct {
	Field *string
	Index *int
}

func Field(name string) Segment {
	return Segment{Field: &name}
}

func Index(i int) Segment {
	return Segment{Index: &i}
}

func (s Segment) String() string {
	if s.Field != nil {
		if needsQuote(*s.Field) {
			return strconv.Quote(*s.Field)
		}
		return *s.Field
	}
	return "[" + strconv.Itoa(*s.Index) + "]"
}

// KPath is a parsed key path.
type KPath struct {
	Segments []Segment
}

func (p *KPath) String() string {
	var b strings.Builder
	for i, seg := range p.Segments {
		if seg.Field != nil && i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(seg.String())
	}
	return b.String()
}

// Parse parses a key path. The empty string parses to the empty path,
// which addresses the root.
func Parse(s string) (*KPath, error) {
	p := &KPath{}
	i := 0
	for i < len(s) {
		switch {
		case s[i] == '.':
			if i == 0 || len(p.Segments) == 0 {
				return nil, fmt.Errorf("%w: leading '.' at %d", ErrParse, i)
			}
			i++
			if i == len(s) {
				return nil, fmt.Errorf("%w: trailing '.'", ErrParse)
			}
		case s[i] == '[':
			j := strings.IndexByte(s[i:], ']')
			if j < 0 {
				return nil, fmt.Errorf("%w: unterminated index at %d", ErrParse, i)
			}
			idx, err := strconv.Atoi(s[i+1 : i+j])
			if err != nil || idx < 0 {
				return nil, fmt.Errorf("%w: bad index %q", ErrParse, s[i+1:i+j])
			}
			p.Segments = append(p.Segments, Index(idx))
			i += j + 1
		case s[i] == '"':
			field, rest, err := unquoteField(s[i:])
			if err != nil {
				return nil, err
			}
			p.Segments = append(p.Segments, Field(field))
			i = len(s) - len(rest)
		default:
			j := i
			for j < len(s) && s[j] != '.' && s[j] != '[' {
				j++
			}
			p.Segments = append(p.Segments, Field(s[i:j]))
			i = j
		}
	}
	return p, nil
}

func unquoteField(s string) (field, rest string, err error) {
	for j := 1; j < len(s); j++ {
		if s[j] == '\\' {
			j++
			continue
		}
		if s[j] == '"' {
			field, err = strconv.Unquote(s[:j+1])
			if err != nil {
				return "", "", fmt.Errorf("%w: %q", ErrParse, s[:j+1])
			}
			return field, s[j+1:], nil
		}
	}
	return "", "", fmt.Errorf("%w: unterminated quoted field", ErrParse)
}

func needsQuote(field string) bool {
	if field == "" {
		return true
	}
	return strings.ContainsAny(field, ".[]\" \t")
}
