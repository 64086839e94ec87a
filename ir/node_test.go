package ir

import (
	"testing"
	"time"
)

func TestFromMap_SortedKeys(t *testing.T) {
	node := FromMap(map[string]*Node{
		"zebra": FromInt(1),
		"alpha": FromInt(2),
		"mike":  FromInt(3),
	})
	want := []string{"alpha", "mike", "zebra"}
	if len(node.Keys) != len(want) {
		t.Fatalf("got %d keys", len(node.Keys))
	}
	for i, key := range want {
		if node.Keys[i] != key {
			t.Errorf("key %d: got %q, want %q", i, node.Keys[i], key)
		}
	}
}

func TestGet_FirstOccurrenceWins(t *testing.T) {
	node := FromKeyVals(
		"dup", FromInt(1),
		"dup", FromInt(2),
	)
	v, ok := node.Get("dup")
	if !ok || v.Int != 1 {
		t.Errorf("got %+v/%v, want Int 1", v, ok)
	}
}

func TestSet(t *testing.T) {
	node := FromKeyVals("a", FromInt(1))
	node.Set("a", FromInt(10))
	node.Set("b", FromInt(2))
	if v, _ := node.Get("a"); v.Int != 10 {
		t.Errorf("got %+v", v)
	}
	if v, ok := node.Get("b"); !ok || v.Int != 2 {
		t.Errorf("got %+v/%v", v, ok)
	}
	if node.Len() != 2 {
		t.Errorf("got %d entries", node.Len())
	}
}

func TestClone(t *testing.T) {
	node := FromKeyVals(
		"data", FromData([]byte{1, 2, 3}),
		"list", FromSlice([]*Node{FromString("x")}),
	)
	c := node.Clone()
	if !Equal(node, c) {
		t.Fatalf("clone differs:\n%+v\n%+v", node, c)
	}
	c.Values[0].Data[0] = 9
	if node.Values[0].Data[0] == 9 {
		t.Error("clone shares Data with the original")
	}
	c.Values[1].Values[0].String = "y"
	if node.Values[1].Values[0].String == "y" {
		t.Error("clone shares children with the original")
	}
}

func TestToMap(t *testing.T) {
	node := FromKeyVals("a", FromInt(1), "b", FromBool(true))
	m := ToMap(node)
	if len(m) != 2 || m["a"].Int != 1 || !m["b"].Bool {
		t.Errorf("got %+v", m)
	}
	if ToMap(FromInt(1)) != nil {
		t.Error("ToMap of a scalar should be nil")
	}
}

func TestAt(t *testing.T) {
	node := FromSlice([]*Node{FromInt(10), FromInt(20)})
	if v := node.At(1); v == nil || v.Int != 20 {
		t.Errorf("got %+v", v)
	}
	if v := node.At(5); v != nil {
		t.Errorf("got %+v, want nil", v)
	}
	if v := FromInt(1).At(0); v != nil {
		t.Errorf("got %+v, want nil", v)
	}
}

func TestFromDate(t *testing.T) {
	d := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	node := FromDate(d)
	if node.Type != DateType || !node.Date.Equal(d) {
		t.Errorf("got %+v", node)
	}
}
