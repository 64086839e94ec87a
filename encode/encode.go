package encode

import (
	"encoding/base64"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/plistfmt/go-plist/ir"
)

type EncodeOption func(*EncState)

type EncState struct {
	indent string
	colors *Colors
}

// WithIndent sets the per-level indentation string (default two spaces).
func WithIndent(indent string) EncodeOption {
	return func(es *EncState) { es.indent = indent }
}

// WithColors sets the color scheme (default plain).
func WithColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.colors = c }
}

// Encode pretty-prints node onto w.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{indent: "  ", colors: PlainColors()}
	for _, opt := range opts {
		opt(es)
	}
	if err := es.encode(w, node, 0); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

func (es *EncState) encode(w io.Writer, node *ir.Node, depth int) error {
	c := es.colors
	switch node.Type {
	case ir.DictType:
		if len(node.Keys) == 0 {
			_, err := io.WriteString(w, c.Sep("{}"))
			return err
		}
		if _, err := io.WriteString(w, c.Sep("{")+"\n"); err != nil {
			return err
		}
		for i, key := range node.Keys {
			line := es.pad(depth+1) + c.Key("%s", strconv.Quote(key)) + c.Sep(" => ")
			if _, err := io.WriteString(w, line); err != nil {
				return err
			}
			if err := es.encode(w, node.Values[i], depth+1); err != nil {
				return err
			}
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, es.pad(depth)+c.Sep("}"))
		return err
	case ir.ArrayType:
		if len(node.Values) == 0 {
			_, err := io.WriteString(w, c.Sep("[]"))
			return err
		}
		if _, err := io.WriteString(w, c.Sep("[")+"\n"); err != nil {
			return err
		}
		for _, v := range node.Values {
			if _, err := io.WriteString(w, es.pad(depth+1)); err != nil {
				return err
			}
			if err := es.encode(w, v, depth+1); err != nil {
				return err
			}
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, es.pad(depth)+c.Sep("]"))
		return err
	case ir.BoolType:
		_, err := io.WriteString(w, c.Bool("%v", node.Bool))
		return err
	case ir.DataType:
		_, err := io.WriteString(w, c.Data("<%s>", base64.StdEncoding.EncodeToString(node.Data)))
		return err
	case ir.DateType:
		_, err := io.WriteString(w, c.Date("%s", node.Date.UTC().Format("2006-01-02T15:04:05Z")))
		return err
	case ir.IntegerType:
		_, err := io.WriteString(w, c.Number("%d", node.Int))
		return err
	case ir.RealType:
		_, err := io.WriteString(w, c.Number("%s", strconv.FormatFloat(node.Real, 'g', -1, 64)))
		return err
	case ir.StringType:
		_, err := io.WriteString(w, c.String("%s", strconv.Quote(node.String)))
		return err
	default:
		return fmt.Errorf("cannot encode node type %s", node.Type)
	}
}

func (es *EncState) pad(depth int) string {
	return strings.Repeat(es.indent, depth)
}

// MustString renders node, falling back to a raw description on error.
// Useful in error messages.
func MustString(node *ir.Node) string {
	var b strings.Builder
	if err := Encode(node, &b); err != nil {
		return fmt.Sprintf("[raw node] %v", node)
	}
	return strings.TrimSuffix(b.String(), "\n")
}
