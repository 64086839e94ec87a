// Package format names the serialization formats a property list
// can be read from or written to.
package format
