// Package kpath provides key paths for navigating property list trees.
//
// A key path is a dotted sequence of dictionary keys and bracketed array
// indexes, e.g.
//
//	CFBundleURLTypes[0].CFBundleURLSchemes[1]
//
// Keys containing dots, brackets, or spaces can be written as Go-style
// double-quoted strings:
//
//	"com.example.app".Enabled
package kpath
