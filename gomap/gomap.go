package gomap

import (
	"encoding/base64"
	"fmt"
	"math"
	"time"

	"github.com/plistfmt/go-plist/ir"
)

// MapOption configures ToGo/FromGo behavior.
type MapOption func(*mapOpts)

type mapOpts struct {
	forJSON bool
}

// ForJSON renders Data as a base64 string and Date as an RFC 3339 string,
// so the result marshals cleanly with encoding/json.
func ForJSON() MapOption {
	return func(opts *mapOpts) {
		opts.forJSON = true
	}
}

// ToGo converts a plist tree to plain Go values. Dictionaries become
// map[string]any (insertion order is lost), arrays []any, and scalars their
// natural Go types.
func ToGo(node *ir.Node, opts ...MapOption) any {
	mapOpts := &mapOpts{}
	for _, opt := range opts {
		opt(mapOpts)
	}
	return toGo(node, mapOpts)
}

func toGo(node *ir.Node, opts *mapOpts) any {
	switch node.Type {
	case ir.DictType:
		res := make(map[string]any, len(node.Keys))
		for i, key := range node.Keys {
			res[key] = toGo(node.Values[i], opts)
		}
		return res
	case ir.ArrayType:
		res := make([]any, len(node.Values))
		for i, v := range node.Values {
			res[i] = toGo(v, opts)
		}
		return res
	case ir.BoolType:
		return node.Bool
	case ir.DataType:
		if opts.forJSON {
			return base64.StdEncoding.EncodeToString(node.Data)
		}
		return node.Data
	case ir.DateType:
		if opts.forJSON {
			return node.Date.UTC().Format(time.RFC3339)
		}
		return node.Date
	case ir.IntegerType:
		return node.Int
	case ir.RealType:
		return node.Real
	case ir.StringType:
		return node.String
	default:
		panic("unhandled node type " + node.Type.String())
	}
}

// FromGo converts a plain Go value to a plist tree. Maps produce
// dictionaries with sorted keys; numeric types map onto Integer or Real.
func FromGo(v any) (*ir.Node, error) {
	switch v := v.(type) {
	case nil:
		return nil, fmt.Errorf("plists cannot represent null")
	case bool:
		return ir.FromBool(v), nil
	case []byte:
		return ir.FromData(v), nil
	case time.Time:
		return ir.FromDate(v), nil
	case int:
		return ir.FromInt(int64(v)), nil
	case int64:
		return ir.FromInt(v), nil
	case uint64:
		if v > math.MaxInt64 {
			return nil, fmt.Errorf("integer %d overflows int64", v)
		}
		return ir.FromInt(int64(v)), nil
	case float64:
		// JSON decoding yields float64 for every number; keep integral
		// values as plist integers.
		if v == math.Trunc(v) && math.Abs(v) < 1<<53 {
			return ir.FromInt(int64(v)), nil
		}
		return ir.FromReal(v), nil
	case float32:
		return FromGo(float64(v))
	case string:
		return ir.FromString(v), nil
	case []any:
		vs := make([]*ir.Node, len(v))
		for i, elt := range v {
			node, err := FromGo(elt)
			if err != nil {
				return nil, fmt.Errorf("[%d]: %w", i, err)
			}
			vs[i] = node
		}
		return ir.FromSlice(vs), nil
	case map[string]any:
		m := make(map[string]*ir.Node, len(v))
		for key, elt := range v {
			node, err := FromGo(elt)
			if err != nil {
				return nil, fmt.Errorf("%q: %w", key, err)
			}
			m[key] = node
		}
		return ir.FromMap(m), nil
	default:
		return nil, fmt.Errorf("cannot represent %T in a plist", v)
	}
}
