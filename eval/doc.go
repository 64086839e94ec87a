// Package eval provides query and patch operations over property lists.
//
// Queries are expr-lang expressions evaluated against a document converted
// to plain Go values, with the document's top-level entries in scope:
//
//	res, err := eval.Query(doc, `CFBundleVersion != "" && Age > 21`)
//
// Patches are RFC 6902 JSON patches (or JSON merge patches) applied by
// round-tripping the document through JSON:
//
//	out, err := eval.Patch(doc, patchBytes)
package eval
