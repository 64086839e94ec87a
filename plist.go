package plist

import (
	"bytes"
	"fmt"
	"io"

	"github.com/goccy/go-yaml"
	"github.com/plistfmt/go-plist/eval"
	"github.com/plistfmt/go-plist/format"
	"github.com/plistfmt/go-plist/gomap"
	"github.com/plistfmt/go-plist/ir"
	"github.com/plistfmt/go-plist/stream"
)

// Read parses a property list from r, detecting the format from the
// leading bytes.
func Read(r io.ReadSeeker) (*ir.Node, error) {
	return stream.ReadNode(stream.NewDecoder(r))
}

// ReadBytes parses a property list from d.
func ReadBytes(d []byte) (*ir.Node, error) {
	return Read(bytes.NewReader(d))
}

type WriteOpts struct {
	Format format.Format
	Indent string
}

type WriteOpt func(*WriteOpts)

func WithFormat(f format.Format) WriteOpt {
	return func(o *WriteOpts) { o.Format = f }
}

func WithIndent(indent string) WriteOpt {
	return func(o *WriteOpts) { o.Indent = indent }
}

// Write serializes node to w in the requested format (XML when no
// format option is given).
func Write(w io.Writer, node *ir.Node, opts ...WriteOpt) error {
	wOpts := &WriteOpts{Format: format.XMLFormat, Indent: "\t"}
	for _, opt := range opts {
		opt(wOpts)
	}
	switch wOpts.Format {
	case format.XMLFormat:
		xw := stream.NewXMLWriter(w, stream.WithIndent(wOpts.Indent))
		if err := stream.Copy(xw, stream.NewNodeReader(node)); err != nil {
			return err
		}
		return xw.Close()
	case format.BinaryFormat:
		bw := stream.NewBinaryWriter(w)
		if err := stream.Copy(bw, stream.NewNodeReader(node)); err != nil {
			return err
		}
		return bw.Close()
	case format.JSONFormat:
		d, err := eval.MarshalJSONIndent(node, "  ")
		if err != nil {
			return err
		}
		d = append(d, '\n')
		_, err = w.Write(d)
		return err
	case format.YAMLFormat:
		d, err := yaml.Marshal(gomap.ToGo(node, gomap.ForJSON()))
		if err != nil {
			return err
		}
		_, err = w.Write(d)
		return err
	default:
		return fmt.Errorf("%w: %v", format.ErrBadFormat, wOpts.Format)
	}
}

// WriteBytes serializes node and returns the resulting document.
func WriteBytes(node *ir.Node, opts ...WriteOpt) ([]byte, error) {
	var b bytes.Buffer
	if err := Write(&b, node, opts...); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

// Extract returns the subtree of node at the key path p, such as
// "CFBundleURLTypes[0].CFBundleURLSchemes".
func Extract(node *ir.Node, p string) (*ir.Node, error) {
	return node.GetKPath(p)
}
