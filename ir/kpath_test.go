package ir

import (
	"errors"
	"testing"
)

func kpathDoc() *Node {
	return FromKeyVals(
		"CFBundleURLTypes", FromSlice([]*Node{
			FromKeyVals(
				"CFBundleURLSchemes", FromSlice([]*Node{
					FromString("myapp"),
				}),
			),
		}),
		"CFBundleName", FromString("MyApp"),
	)
}

func TestGetKPath(t *testing.T) {
	node, err := kpathDoc().GetKPath("CFBundleURLTypes[0].CFBundleURLSchemes[0]")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if node.String != "myapp" {
		t.Errorf("got %q", node.String)
	}
}

func TestGetKPath_Root(t *testing.T) {
	doc := kpathDoc()
	node, err := doc.GetKPath("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if node != doc {
		t.Error("empty path should address the root")
	}
}

func TestGetKPath_NoEntry(t *testing.T) {
	_, err := kpathDoc().GetKPath("Missing")
	if !errors.Is(err, ErrNoEntry) {
		t.Errorf("got %v, want ErrNoEntry", err)
	}
}

func TestGetKPath_NotArray(t *testing.T) {
	_, err := kpathDoc().GetKPath("CFBundleName[0]")
	if !errors.Is(err, ErrNotArray) {
		t.Errorf("got %v, want ErrNotArray", err)
	}
}

func TestGetKPath_NotDict(t *testing.T) {
	_, err := kpathDoc().GetKPath("CFBundleURLTypes.oops")
	if !errors.Is(err, ErrNotDict) {
		t.Errorf("got %v, want ErrNotDict", err)
	}
}
