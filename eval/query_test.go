package eval

import (
	"testing"

	"github.com/plistfmt/go-plist/ir"
)

func queryDoc() *ir.Node {
	return ir.FromKeyVals(
		"Age", ir.FromInt(28),
		"Name", ir.FromString("Mary"),
		"Tags", ir.FromSlice([]*ir.Node{ir.FromString("a"), ir.FromString("b")}),
	)
}

func asInt(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int64:
		return n, true
	default:
		return 0, false
	}
}

func TestQuery_TopLevelKeys(t *testing.T) {
	res, err := Query(queryDoc(), "Age + 1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n, ok := asInt(res); !ok || n != 29 {
		t.Errorf("got %v (%T), want 29", res, res)
	}
}

func TestQuery_Doc(t *testing.T) {
	res, err := Query(queryDoc(), `doc["Name"]`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res != "Mary" {
		t.Errorf("got %v, want Mary", res)
	}
}

func TestQuery_Arrays(t *testing.T) {
	res, err := Query(queryDoc(), "len(Tags)")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n, ok := asInt(res); !ok || n != 2 {
		t.Errorf("got %v (%T), want 2", res, res)
	}
}

func TestQueryBool(t *testing.T) {
	ok, err := QueryBool(queryDoc(), `Age > 18 && Name == "Mary"`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Error("expected true")
	}
	if _, err := QueryBool(queryDoc(), "Age"); err == nil {
		t.Error("expected an error for a non-bool result")
	}
}

func TestCompile_Reuse(t *testing.T) {
	q, err := Compile("Age * 2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, doc := range []*ir.Node{
		ir.FromKeyVals("Age", ir.FromInt(10)),
		ir.FromKeyVals("Age", ir.FromInt(20)),
	} {
		res, err := q.Run(doc)
		if err != nil {
			t.Fatalf("run %d: %v", i, err)
		}
		want := int64(20 * (i + 1))
		if n, ok := asInt(res); !ok || n != want {
			t.Errorf("run %d: got %v (%T), want %d", i, res, res, want)
		}
	}
}

func TestCompile_Error(t *testing.T) {
	if _, err := Compile("1 +"); err == nil {
		t.Error("expected a compile error")
	}
}

func TestQuery_ScalarDoc(t *testing.T) {
	res, err := Query(ir.FromInt(7), "doc")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n, ok := asInt(res); !ok || n != 7 {
		t.Errorf("got %v (%T), want 7", res, res)
	}
}
