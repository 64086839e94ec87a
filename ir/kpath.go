package ir

import (
	"fmt"

	"github.com/plistfmt/go-plist/ir/kpath"
)

// GetKPath navigates the tree using a key path.
//
// Example:
//
//	root.GetKPath("CFBundleURLTypes[0].CFBundleURLSchemes")
//
// Returns an error if the path cannot be parsed or an addressed entry does
// not exist.
func (node *Node) GetKPath(path string) (*Node, error) {
	p, err := kpath.Parse(path)
	if err != nil {
		return nil, err
	}
	return node.GetPath(p)
}

// GetPath navigates the tree using a parsed key path.
func (node *Node) GetPath(p *kpath.KPath) (*Node, error) {
	cur := node
	for i, seg := range p.Segments {
		switch {
		case seg.Field != nil:
			if cur.Type != DictType {
				return nil, fmt.Errorf("%w at %q: %s", ErrNotDict, prefix(p, i), cur.Type)
			}
			next, ok := cur.Get(*seg.Field)
			if !ok {
				return nil, fmt.Errorf("%w: %q", ErrNoEntry, prefix(p, i+1))
			}
			cur = next
		case seg.Index != nil:
			if cur.Type != ArrayType {
				return nil, fmt.Errorf("%w at %q: %s", ErrNotArray, prefix(p, i), cur.Type)
			}
			next := cur.At(*seg.Index)
			if next == nil {
				return nil, fmt.Errorf("%w: %q", ErrNoEntry, prefix(p, i+1))
			}
			cur = next
		}
	}
	return cur, nil
}

func prefix(p *kpath.KPath, n int) string {
	sub := &kpath.KPath{Segments: p.Segments[:n]}
	return sub.String()
}
