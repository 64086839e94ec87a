package eval

import (
	"fmt"

	jsonpatch "github.com/evanphx/json-patch"

	"github.com/plistfmt/go-plist/debug"
	"github.com/plistfmt/go-plist/ir"
)

// Patcher applies one decoded RFC 6902 patch to any number of documents.
type Patcher struct {
	ops jsonpatch.Patch
}

// NewPatcher decodes an RFC 6902 JSON patch.
func NewPatcher(patch []byte) (*Patcher, error) {
	ops, err := jsonpatch.DecodePatch(patch)
	if err != nil {
		return nil, fmt.Errorf("decode patch: %w", err)
	}
	return &Patcher{ops: ops}, nil
}

// Apply patches doc by round-tripping it through JSON. Data and Date
// entries pass through the patch as base64/RFC 3339 strings and come back
// as plain strings.
func (p *Patcher) Apply(doc *ir.Node) (*ir.Node, error) {
	d, err := MarshalJSON(doc)
	if err != nil {
		return nil, err
	}
	out, err := p.ops.Apply(d)
	if err != nil {
		return nil, fmt.Errorf("apply patch: %w", err)
	}
	if debug.Patch() {
		debug.Logf("patch: %d ops, %d -> %d bytes\n", len(p.ops), len(d), len(out))
	}
	return UnmarshalJSON(out)
}

// Patch applies an RFC 6902 JSON patch to doc.
func Patch(doc *ir.Node, patch []byte) (*ir.Node, error) {
	p, err := NewPatcher(patch)
	if err != nil {
		return nil, err
	}
	return p.Apply(doc)
}

// MergePatch applies an RFC 7386 JSON merge patch to doc.
func MergePatch(doc *ir.Node, patch []byte) (*ir.Node, error) {
	d, err := MarshalJSON(doc)
	if err != nil {
		return nil, err
	}
	out, err := jsonpatch.MergePatch(d, patch)
	if err != nil {
		return nil, fmt.Errorf("apply merge patch: %w", err)
	}
	return UnmarshalJSON(out)
}
