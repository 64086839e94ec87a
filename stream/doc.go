// Package stream represents property lists as flat streams of events.
//
// The stream package is the encoding-agnostic backbone that every physical
// plist encoding plugs into: readers for the binary and XML forms produce
// the same event vocabulary, and any EventSink can consume it. Callers can
// therefore swap encodings without changing how they iterate a document.
//
// # Events
//
// An Event is one of the Start/End container markers or a scalar value.
// Dictionary keys and values are represented as pairs of events:
//
//	StartDictionary
//	StringValue("Height") // key
//	RealValue(181.2)      // value
//	StringValue("Age")    // key
//	IntegerValue(28)      // value
//	EndDictionary
//
// Start events may carry a declared length hint. The hint is advisory, for
// preallocation only; consumers must terminate on the matching End event.
//
// # Example: Reading
//
//	dec := stream.NewDecoder(f)
//	for {
//	    ev, err := dec.ReadEvent()
//	    if err == io.EOF {
//	        break
//	    }
//	    if err != nil {
//	        return err
//	    }
//	    // ...
//	}
//
// The decoder sniffs the first 8 bytes of the input on the first ReadEvent:
// the signature "bplist00" selects the binary reader, anything else the XML
// reader. After that every call is forwarded to the selected reader.
//
// # Example: Writing
//
//	w := stream.NewXMLWriter(out)
//	if err := stream.Copy(w, stream.NewNodeReader(doc)); err != nil {
//	    return err
//	}
//	if err := w.Close(); err != nil {
//	    return err
//	}
package stream
