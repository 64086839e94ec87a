package stream

import (
	"fmt"
	"io"

	"github.com/plistfmt/go-plist/debug"
)

// binarySignature is the 8 bytes at absolute offset 0 that select the
// binary plist reader. Anything else selects the XML reader.
var binarySignature = [8]byte{'b', 'p', 'l', 'i', 's', 't', '0', '0'}

// Decoder reads events from a plist stream of either physical encoding.
//
// The encoding is sniffed lazily, on the first ReadEvent: the decoder seeks
// to the start of the stream, reads the 8-byte signature, seeks back, and
// binds permanently to the matching format reader. Every later ReadEvent is
// forwarded to the bound reader verbatim.
//
// If the probe itself fails (seek or read error, or a stream shorter than
// the signature) the decoder stays unbound and ReadEvent returns the error.
// Because the probe always begins by seeking to offset 0, calling ReadEvent
// again after a probe error re-runs a clean probe.
type Decoder struct {
	r     io.ReadSeeker
	bound EventReader
}

// NewDecoder creates a Decoder over r. The stream is not touched until the
// first ReadEvent.
func NewDecoder(r io.ReadSeeker) *Decoder {
	return &Decoder{r: r}
}

// ReadEvent reads the next event, binding to a format reader first if this
// is the first call. Returns io.EOF at exhaustion.
func (d *Decoder) ReadEvent() (*Event, error) {
	// Resolve-then-serve: bind once, then forward.
	for {
		if d.bound != nil {
			return d.bound.ReadEvent()
		}
		isBin, err := isBinary(d.r)
		if err != nil {
			return nil, err
		}
		if debug.Probe() {
			debug.Logf("plist probe: binary=%v\n", isBin)
		}
		if isBin {
			d.bound = newBinaryReader(d.r)
		} else {
			d.bound = newXMLReader(d.r)
		}
	}
}

// isBinary probes the leading bytes of r for the binary plist signature,
// leaving r positioned at the absolute start on success.
func isBinary(r io.ReadSeeker) (bool, error) {
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return false, err
	}
	var magic [8]byte
	if _, err := io.ReadFull(r, magic[:]); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return false, fmt.Errorf("%w: stream shorter than %d-byte signature", ErrUnexpectedEOF, len(magic))
		}
		return false, err
	}
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return false, err
	}
	return magic == binarySignature, nil
}
