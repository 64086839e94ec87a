package libdiff

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/plistfmt/go-plist/ir"
	"github.com/plistfmt/go-plist/stream"
)

// Colors holds the rendering functions for diff output.
type Colors struct {
	Insert func(string, ...any) string
	Delete func(string, ...any) string
	Equal  func(string, ...any) string
}

func plain(format string, args ...any) string {
	return fmt.Sprintf(format, args...)
}

// NewColors returns the default diff colors.
func NewColors() *Colors {
	return &Colors{
		Insert: color.GreenString,
		Delete: color.RedString,
		Equal:  plain,
	}
}

// PlainColors returns pass-through rendering functions.
func PlainColors() *Colors {
	return &Colors{Insert: plain, Delete: plain, Equal: plain}
}

// Diff renders from and to as XML and returns their line diff with +/-
// prefixes. The second return is false when the documents render equal.
func Diff(from, to *ir.Node) (string, bool, error) {
	var buf bytes.Buffer
	different, err := Fprint(&buf, from, to, PlainColors())
	if err != nil {
		return "", false, err
	}
	return buf.String(), different, nil
}

// Fprint writes the line diff of from and to onto w using colors.
func Fprint(w io.Writer, from, to *ir.Node, colors *Colors) (bool, error) {
	fromXML, err := renderXML(from)
	if err != nil {
		return false, err
	}
	toXML, err := renderXML(to)
	if err != nil {
		return false, err
	}
	if fromXML == toXML {
		return false, nil
	}

	dmp := diffmatchpatch.New()
	fromRunes, toRunes, lines := dmp.DiffLinesToRunes(fromXML, toXML)
	diffs := dmp.DiffCharsToLines(dmp.DiffMainRunes(fromRunes, toRunes, false), lines)

	for _, d := range diffs {
		for line := range strings.Lines(d.Text) {
			line = strings.TrimSuffix(line, "\n")
			switch d.Type {
			case diffmatchpatch.DiffInsert:
				if _, err := io.WriteString(w, colors.Insert("+%s", line)+"\n"); err != nil {
					return true, err
				}
			case diffmatchpatch.DiffDelete:
				if _, err := io.WriteString(w, colors.Delete("-%s", line)+"\n"); err != nil {
					return true, err
				}
			case diffmatchpatch.DiffEqual:
				if _, err := io.WriteString(w, colors.Equal(" %s", line)+"\n"); err != nil {
					return true, err
				}
			}
		}
	}
	return true, nil
}

func renderXML(node *ir.Node) (string, error) {
	var buf bytes.Buffer
	w := stream.NewXMLWriter(&buf, stream.WithoutHeader())
	if err := stream.Copy(w, stream.NewNodeReader(node)); err != nil {
		return "", err
	}
	if err := w.Close(); err != nil {
		return "", err
	}
	return buf.String(), nil
}
