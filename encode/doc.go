// Package encode renders property list trees for humans.
//
// The output is the bracketed inspection style familiar from plutil -p:
//
//	{
//	  "Age" => 28
//	  "Pets" => [
//	    "cat"
//	  ]
//	}
//
// It is for reading, not for parsing: use the stream package sinks to
// produce machine-readable encodings.
package encode
