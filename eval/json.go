package eval

import (
	"encoding/json"

	"github.com/plistfmt/go-plist/gomap"
	"github.com/plistfmt/go-plist/ir"
)

// MarshalJSON renders a plist tree as JSON. Data and Date entries become
// base64 and RFC 3339 strings respectively.
func MarshalJSON(node *ir.Node) ([]byte, error) {
	return json.Marshal(gomap.ToGo(node, gomap.ForJSON()))
}

// MarshalJSONIndent is MarshalJSON with indented output.
func MarshalJSONIndent(node *ir.Node, indent string) ([]byte, error) {
	return json.MarshalIndent(gomap.ToGo(node, gomap.ForJSON()), "", indent)
}

// UnmarshalJSON parses JSON into a plist tree.
func UnmarshalJSON(d []byte) (*ir.Node, error) {
	var v any
	if err := json.Unmarshal(d, &v); err != nil {
		return nil, err
	}
	return gomap.FromGo(v)
}
