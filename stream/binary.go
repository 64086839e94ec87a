package stream

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"time"
	"unicode/utf16"

	"github.com/plistfmt/go-plist/debug"
)

// appleEpoch is the reference date of binary plist timestamps.
var appleEpoch = time.Date(2001, time.January, 1, 0, 0, 0, 0, time.UTC)

// binaryReader reads the bplist00 encoding: an 8-byte signature, a table of
// marker-prefixed objects, an offset table, and a 32-byte trailer locating
// everything. Containers reference their children by object ref, so the
// reader walks the object graph with an explicit stack, emitting Start and
// End events at container boundaries.
type binaryReader struct {
	r    io.ReadSeeker
	size int64

	started  bool
	finished bool

	refSize uint32
	topRef  uint64
	offsets []uint64
	stack   []binaryFrame
}

type binaryFrame struct {
	ref  uint64
	dict bool
	// child refs in emission order; dictionaries interleave key,value
	refs []uint64
	pos  int
}

func newBinaryReader(r io.ReadSeeker) *binaryReader {
	return &binaryReader{r: r}
}

func (b *binaryReader) ReadEvent() (*Event, error) {
	if b.finished {
		return nil, io.EOF
	}
	if !b.started {
		if err := b.init(); err != nil {
			return nil, err
		}
		b.started = true
		return b.readObject(b.topRef)
	}
	if len(b.stack) == 0 {
		b.finished = true
		return nil, io.EOF
	}
	top := &b.stack[len(b.stack)-1]
	if top.pos >= len(top.refs) {
		dict := top.dict
		b.stack = b.stack[:len(b.stack)-1]
		if dict {
			return &Event{Type: EventEndDictionary}, nil
		}
		return &Event{Type: EventEndArray}, nil
	}
	ref := top.refs[top.pos]
	top.pos++
	return b.readObject(ref)
}

// init reads the trailer and the offset table.
func (b *binaryReader) init() error {
	size, err := b.r.Seek(0, io.SeekEnd)
	if err != nil {
		return err
	}
	b.size = size
	if size < 8+32 {
		return fmt.Errorf("%w: %d bytes is too short for a binary plist", ErrUnexpectedEOF, size)
	}
	if _, err := b.r.Seek(size-32, io.SeekStart); err != nil {
		return err
	}
	var trailer [32]byte
	if _, err := io.ReadFull(b.r, trailer[:]); err != nil {
		return eofErr(err)
	}
	offsetSize := uint32(trailer[6])
	b.refSize = uint32(trailer[7])
	numObjects := binary.BigEndian.Uint64(trailer[8:16])
	b.topRef = binary.BigEndian.Uint64(trailer[16:24])
	tableOffset := binary.BigEndian.Uint64(trailer[24:32])

	if offsetSize < 1 || offsetSize > 8 || b.refSize < 1 || b.refSize > 8 {
		return fmt.Errorf("%w: trailer sizes %d/%d", ErrInvalidData, offsetSize, b.refSize)
	}
	// Every object takes at least one byte, so the object count is bounded
	// by the file size.
	if numObjects == 0 || numObjects > uint64(size) {
		return fmt.Errorf("%w: object count %d", ErrInvalidData, numObjects)
	}
	if b.topRef >= numObjects {
		return fmt.Errorf("%w: top object %d out of range", ErrInvalidData, b.topRef)
	}
	if tableOffset > uint64(size) || tableOffset+numObjects*uint64(offsetSize) > uint64(size)-32 {
		return fmt.Errorf("%w: offset table exceeds stream", ErrInvalidData)
	}

	if debug.Binary() {
		debug.Logf("bplist: %d objects, top=%d, offsetSize=%d, refSize=%d\n",
			numObjects, b.topRef, offsetSize, b.refSize)
	}
	if _, err := b.r.Seek(int64(tableOffset), io.SeekStart); err != nil {
		return err
	}
	buf := make([]byte, numObjects*uint64(offsetSize))
	if _, err := io.ReadFull(b.r, buf); err != nil {
		return eofErr(err)
	}
	b.offsets = make([]uint64, numObjects)
	for i := range b.offsets {
		off := beUint(buf[uint64(i)*uint64(offsetSize) : uint64(i+1)*uint64(offsetSize)])
		if off >= uint64(size) {
			return fmt.Errorf("%w: object %d offset %d out of range", ErrInvalidData, i, off)
		}
		b.offsets[i] = off
	}
	return nil
}

// readObject decodes the object at ref, pushing a stack frame for
// containers and emitting the corresponding event.
func (b *binaryReader) readObject(ref uint64) (*Event, error) {
	if ref >= uint64(len(b.offsets)) {
		return nil, fmt.Errorf("%w: object ref %d out of range", ErrInvalidData, ref)
	}
	for i := range b.stack {
		if b.stack[i].ref == ref {
			return nil, fmt.Errorf("%w: cyclic reference to object %d", ErrInvalidData, ref)
		}
	}
	if _, err := b.r.Seek(int64(b.offsets[ref]), io.SeekStart); err != nil {
		return nil, err
	}
	marker, err := b.readByte()
	if err != nil {
		return nil, err
	}
	token, info := marker>>4, uint64(marker&0x0f)
	switch token {
	case 0x0:
		switch info {
		case 0x8:
			return &Event{Type: EventBooleanValue, Bool: false}, nil
		case 0x9:
			return &Event{Type: EventBooleanValue, Bool: true}, nil
		default:
			return nil, fmt.Errorf("%w: marker %#02x", ErrInvalidData, marker)
		}
	case 0x1:
		if info > 3 {
			return nil, fmt.Errorf("%w: %d-byte integer", ErrInvalidData, 1<<info)
		}
		n, err := b.readBE(1 << info)
		if err != nil {
			return nil, err
		}
		// Only the 8-byte form is signed; shorter forms are unsigned, so
		// the reinterpreting conversion is correct for every width.
		return &Event{Type: EventIntegerValue, Int: int64(n)}, nil
	case 0x2:
		switch info {
		case 2:
			n, err := b.readBE(4)
			if err != nil {
				return nil, err
			}
			return &Event{Type: EventRealValue, Real: float64(math.Float32frombits(uint32(n)))}, nil
		case 3:
			n, err := b.readBE(8)
			if err != nil {
				return nil, err
			}
			return &Event{Type: EventRealValue, Real: math.Float64frombits(n)}, nil
		default:
			return nil, fmt.Errorf("%w: %d-byte real", ErrInvalidData, 1<<info)
		}
	case 0x3:
		if info != 3 {
			return nil, fmt.Errorf("%w: date marker %#02x", ErrInvalidData, marker)
		}
		n, err := b.readBE(8)
		if err != nil {
			return nil, err
		}
		return &Event{Type: EventDateValue, Date: appleTime(math.Float64frombits(n))}, nil
	case 0x4:
		n, err := b.readCount(info)
		if err != nil {
			return nil, err
		}
		data := make([]byte, n)
		if _, err := io.ReadFull(b.r, data); err != nil {
			return nil, eofErr(err)
		}
		return &Event{Type: EventDataValue, Data: data}, nil
	case 0x5:
		n, err := b.readCount(info)
		if err != nil {
			return nil, err
		}
		data := make([]byte, n)
		if _, err := io.ReadFull(b.r, data); err != nil {
			return nil, eofErr(err)
		}
		return &Event{Type: EventStringValue, String: string(data)}, nil
	case 0x6:
		n, err := b.readCount(info)
		if err != nil {
			return nil, err
		}
		data := make([]byte, n*2)
		if _, err := io.ReadFull(b.r, data); err != nil {
			return nil, eofErr(err)
		}
		units := make([]uint16, n)
		for i := range units {
			units[i] = binary.BigEndian.Uint16(data[i*2:])
		}
		return &Event{Type: EventStringValue, String: string(utf16.Decode(units))}, nil
	case 0xa:
		n, err := b.readCount(info)
		if err != nil {
			return nil, err
		}
		refs, err := b.readRefs(n)
		if err != nil {
			return nil, err
		}
		b.stack = append(b.stack, binaryFrame{ref: ref, refs: refs})
		return &Event{Type: EventStartArray, Size: &n}, nil
	case 0xd:
		n, err := b.readCount(info)
		if err != nil {
			return nil, err
		}
		keyRefs, err := b.readRefs(n)
		if err != nil {
			return nil, err
		}
		valRefs, err := b.readRefs(n)
		if err != nil {
			return nil, err
		}
		refs := make([]uint64, 0, 2*n)
		for i := range keyRefs {
			refs = append(refs, keyRefs[i], valRefs[i])
		}
		b.stack = append(b.stack, binaryFrame{ref: ref, dict: true, refs: refs})
		return &Event{Type: EventStartDictionary, Size: &n}, nil
	default:
		return nil, fmt.Errorf("%w: marker %#02x", ErrInvalidData, marker)
	}
}

// readCount resolves the length of a variable-size object: the marker's
// info nibble, or a following integer object when the nibble is 0xF.
func (b *binaryReader) readCount(info uint64) (uint64, error) {
	if info != 0x0f {
		return info, nil
	}
	marker, err := b.readByte()
	if err != nil {
		return 0, err
	}
	if marker>>4 != 0x1 || marker&0x0f > 3 {
		return 0, fmt.Errorf("%w: length marker %#02x", ErrInvalidData, marker)
	}
	n, err := b.readBE(1 << (marker & 0x0f))
	if err != nil {
		return 0, err
	}
	if n > uint64(b.size) {
		return 0, fmt.Errorf("%w: length %d exceeds stream size", ErrInvalidData, n)
	}
	return n, nil
}

func (b *binaryReader) readRefs(n uint64) ([]uint64, error) {
	if n*uint64(b.refSize) > uint64(b.size) {
		return nil, fmt.Errorf("%w: %d object refs exceed stream size", ErrInvalidData, n)
	}
	buf := make([]byte, n*uint64(b.refSize))
	if _, err := io.ReadFull(b.r, buf); err != nil {
		return nil, eofErr(err)
	}
	refs := make([]uint64, n)
	for i := range refs {
		refs[i] = beUint(buf[uint64(i)*uint64(b.refSize) : uint64(i+1)*uint64(b.refSize)])
	}
	return refs, nil
}

func (b *binaryReader) readByte() (byte, error) {
	var buf [1]byte
	if _, err := io.ReadFull(b.r, buf[:]); err != nil {
		return 0, eofErr(err)
	}
	return buf[0], nil
}

func (b *binaryReader) readBE(n int) (uint64, error) {
	var buf [8]byte
	if _, err := io.ReadFull(b.r, buf[8-n:]); err != nil {
		return 0, eofErr(err)
	}
	return binary.BigEndian.Uint64(buf[:]), nil
}

func beUint(buf []byte) uint64 {
	var res uint64
	for _, c := range buf {
		res = res<<8 | uint64(c)
	}
	return res
}

func appleTime(secs float64) time.Time {
	whole, frac := math.Modf(secs)
	return appleEpoch.Add(time.Duration(whole)*time.Second + time.Duration(frac*float64(time.Second)))
}

func eofErr(err error) error {
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return fmt.Errorf("%w: %v", ErrUnexpectedEOF, err)
	}
	return err
}
