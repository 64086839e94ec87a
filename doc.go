// Package plist reads and writes Apple property lists.
//
// The package detects the serialization format of the input on its own:
// documents starting with the "bplist00" signature are parsed as binary
// property lists, everything else as XML. Parsed documents are
// represented as *ir.Node trees; the stream subpackage exposes the
// underlying event-based readers and writers for callers that want to
// process documents without materializing them.
package plist
