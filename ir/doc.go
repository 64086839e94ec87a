// Package ir provides the in-memory representation of property list documents.
//
// # Overview
//
// All property lists (whether parsed from the XML form, parsed from the
// binary form, or created programmatically) are represented as ir.Node
// trees. The IR contains no position information from input documents,
// making it purely semantic.
//
// The IR works as a recursive tagged union structure, where values are
// placed in fields depending on the node type.
//
// # Node Types
//
// The Type field indicates the node's type:
//
//   - BoolType: boolean (true/false)
//   - DataType: raw bytes
//   - DateType: timestamp
//   - IntegerType: 64-bit signed integer
//   - RealType: 64-bit float
//   - StringType: string value
//   - ArrayType: ordered list of nodes
//   - DictType: ordered key-value pairs
//
// # Creating Nodes
//
// Use constructor functions to create nodes:
//
//	node := ir.FromString("hello")
//	num := ir.FromInt(42)
//	flag := ir.FromBool(true)
//	dict := ir.FromKeyVals(
//	    "key", ir.FromString("value"),
//	)
//	arr := ir.FromSlice([]*ir.Node{
//	    ir.FromInt(1),
//	    ir.FromInt(2),
//	})
//
// # Dictionaries
//
// For DictType nodes, Keys[i] is the key for the value at Values[i], so
// len(Keys) == len(Values) always holds. Key order is preserved: it is the
// order in which entries were inserted (or the source document's order when
// parsed). Duplicate keys are not rejected here; semantic validation is the
// caller's concern.
package ir
