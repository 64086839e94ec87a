package stream

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"unicode/utf16"

	"github.com/plistfmt/go-plist/ir"
)

// BinaryWriter is an EventSink producing the bplist00 encoding. The binary
// form needs the whole object graph before anything can be laid out (the
// trailer and offset table come last but describe everything), so events
// are buffered into a tree and the document is written on Close.
type BinaryWriter struct {
	w       io.Writer
	builder *Builder
	closed  bool
}

// NewBinaryWriter creates a BinaryWriter writing to w.
func NewBinaryWriter(w io.Writer) *BinaryWriter {
	return &BinaryWriter{w: w, builder: NewBuilder()}
}

// WriteEvent buffers one event.
func (b *BinaryWriter) WriteEvent(ev *Event) error {
	if b.closed {
		return fmt.Errorf("%w: write after Close", ErrBadEvent)
	}
	return b.builder.WriteEvent(ev)
}

// Close lays out and writes the document.
func (b *BinaryWriter) Close() error {
	if b.closed {
		return nil
	}
	b.closed = true
	node, err := b.builder.Result()
	if err != nil {
		return err
	}
	return WriteBinaryNode(b.w, node)
}

// WriteBinaryNode writes node to w in the bplist00 encoding.
func WriteBinaryNode(w io.Writer, node *ir.Node) error {
	objs := collectObjects(node)
	refSize := minBytes(uint64(len(objs)))

	var body bytes.Buffer
	offsets := make([]uint64, len(objs))
	for i, o := range objs {
		offsets[i] = 8 + uint64(body.Len())
		if err := encodeObject(&body, o, refSize); err != nil {
			return err
		}
	}
	tableOffset := 8 + uint64(body.Len())
	offsetSize := minBytes(tableOffset)

	if _, err := w.Write(binarySignature[:]); err != nil {
		return err
	}
	if _, err := w.Write(body.Bytes()); err != nil {
		return err
	}
	var table bytes.Buffer
	for _, off := range offsets {
		putBE(&table, off, offsetSize)
	}
	if _, err := w.Write(table.Bytes()); err != nil {
		return err
	}
	var trailer [32]byte
	trailer[6] = byte(offsetSize)
	trailer[7] = byte(refSize)
	binary.BigEndian.PutUint64(trailer[8:16], uint64(len(objs)))
	binary.BigEndian.PutUint64(trailer[16:24], 0) // top object
	binary.BigEndian.PutUint64(trailer[24:32], tableOffset)
	_, err := w.Write(trailer[:])
	return err
}

// binObj is one entry of the object table: a node plus, for containers,
// the refs of its children (dictionaries list key refs then value refs).
type binObj struct {
	node      *ir.Node
	childRefs []int
}

// collectObjects lays out the object table in pre-order, with the top
// object first. No deduplication is performed; equal subtrees get
// distinct entries.
func collectObjects(root *ir.Node) []*binObj {
	var objs []*binObj
	var walk func(n *ir.Node) int
	walk = func(n *ir.Node) int {
		id := len(objs)
		o := &binObj{node: n}
		objs = append(objs, o)
		switch n.Type {
		case ir.ArrayType:
			for _, v := range n.Values {
				o.childRefs = append(o.childRefs, walk(v))
			}
		case ir.DictType:
			for _, key := range n.Keys {
				o.childRefs = append(o.childRefs, len(objs))
				objs = append(objs, &binObj{node: ir.FromString(key)})
			}
			for _, v := range n.Values {
				o.childRefs = append(o.childRefs, walk(v))
			}
		}
		return id
	}
	walk(root)
	return objs
}

func encodeObject(buf *bytes.Buffer, o *binObj, refSize int) error {
	n := o.node
	switch n.Type {
	case ir.BoolType:
		if n.Bool {
			buf.WriteByte(0x09)
		} else {
			buf.WriteByte(0x08)
		}
	case ir.IntegerType:
		encodeInt(buf, n.Int)
	case ir.RealType:
		buf.WriteByte(0x23)
		putBE(buf, math.Float64bits(n.Real), 8)
	case ir.DateType:
		buf.WriteByte(0x33)
		secs := n.Date.Sub(appleEpoch).Seconds()
		putBE(buf, math.Float64bits(secs), 8)
	case ir.DataType:
		writeMarker(buf, 0x4, uint64(len(n.Data)))
		buf.Write(n.Data)
	case ir.StringType:
		if isASCII(n.String) {
			writeMarker(buf, 0x5, uint64(len(n.String)))
			buf.WriteString(n.String)
		} else {
			units := utf16.Encode([]rune(n.String))
			writeMarker(buf, 0x6, uint64(len(units)))
			for _, u := range units {
				putBE(buf, uint64(u), 2)
			}
		}
	case ir.ArrayType:
		writeMarker(buf, 0xa, uint64(len(o.childRefs)))
		for _, ref := range o.childRefs {
			putBE(buf, uint64(ref), refSize)
		}
	case ir.DictType:
		writeMarker(buf, 0xd, uint64(len(n.Keys)))
		for _, ref := range o.childRefs {
			putBE(buf, uint64(ref), refSize)
		}
	default:
		return fmt.Errorf("%w: cannot encode node type %s", ErrInvalidData, n.Type)
	}
	return nil
}

// writeMarker writes a marker byte for a variable-size object, spilling
// the length into a following integer when it exceeds the info nibble.
func writeMarker(buf *bytes.Buffer, token byte, n uint64) {
	if n < 0x0f {
		buf.WriteByte(token<<4 | byte(n))
		return
	}
	buf.WriteByte(token<<4 | 0x0f)
	encodeInt(buf, int64(n))
}

// encodeInt writes an integer object using the smallest of the 1, 2, 4,
// 8-byte forms. Negative values always take the signed 8-byte form.
func encodeInt(buf *bytes.Buffer, v int64) {
	switch {
	case v < 0:
		buf.WriteByte(0x13)
		putBE(buf, uint64(v), 8)
	case v < 1<<8:
		buf.WriteByte(0x10)
		putBE(buf, uint64(v), 1)
	case v < 1<<16:
		buf.WriteByte(0x11)
		putBE(buf, uint64(v), 2)
	case v < 1<<32:
		buf.WriteByte(0x12)
		putBE(buf, uint64(v), 4)
	default:
		buf.WriteByte(0x13)
		putBE(buf, uint64(v), 8)
	}
}

func putBE(buf *bytes.Buffer, v uint64, n int) {
	for i := n - 1; i >= 0; i-- {
		buf.WriteByte(byte(v >> (8 * i)))
	}
}

func minBytes(v uint64) int {
	switch {
	case v < 1<<8:
		return 1
	case v < 1<<16:
		return 2
	case v < 1<<32:
		return 4
	default:
		return 8
	}
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] > 0x7f {
			return false
		}
	}
	return true
}
