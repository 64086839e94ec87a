// Package libdiff computes line diffs between property list documents.
//
// Documents are rendered to their canonical XML form and diffed line by
// line, so the output is stable regardless of which physical encoding the
// inputs came from.
package libdiff
