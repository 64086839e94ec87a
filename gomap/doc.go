// Package gomap converts between property list trees and plain Go values.
//
// ToGo maps an ir.Node tree onto the natural Go shapes (map[string]any,
// []any, int64, float64, bool, string, []byte, time.Time); FromGo performs
// the reverse. The bridge feeds the JSON and YAML renderings, expression
// environments, and the JSON patch pipeline.
//
// Two plist scalar types have no JSON counterpart. When JSON compatibility
// is requested (ForJSON), Data becomes a base64 string and Date becomes an
// RFC 3339 string, matching what Apple's plutil does when converting to
// JSON. The conversion is lossy: converting back yields plain strings.
package gomap
