package eval

import (
	"errors"
	"testing"

	"github.com/jute-format/go-jute/ir"
	"github.com/jute-format/go-jute/parse"
)

func mustParse(t *testing.T, in string) *ir.Node {
	t.Helper()
	y, err := parse.Parse([]byte(in))
	if err != nil {
		t.Fatalf("Parse(%q): %v", in, err)
	}
	return y
}

func TestFilterField(t *testing.T) {
	doc := mustParse(t, `{"name": "ana", "age": 30}`)
	res, err := Filter(doc, `doc.name`)
	if err != nil {
		t.Fatal(err)
	}
	if res.Type != ir.StringType || res.Str != "ana" {
		t.Errorf("got %v, want string ana", res)
	}
}

func TestFilterIndex(t *testing.T) {
	doc := mustParse(t, `{"xs": [10, 20, 30]}`)
	res, err := Filter(doc, `doc.xs[1]`)
	if err != nil {
		t.Fatal(err)
	}
	if res.Type != ir.NumberType || res.Num != 20 {
		t.Errorf("got %v, want 20", res)
	}
}

func TestFilterExpr(t *testing.T) {
	doc := mustParse(t, `{"xs": [1, 2, 3, 4]}`)
	res, err := Filter(doc, `filter(doc.xs, # > 2)`)
	if err != nil {
		t.Fatal(err)
	}
	want := ir.FromSlice([]*ir.Node{ir.FromFloat(3), ir.FromFloat(4)})
	if !ir.Equal(want, res) {
		t.Errorf("got %v, want [3,4]", res)
	}
}

func TestFilterWholeDoc(t *testing.T) {
	doc := mustParse(t, `{"a": [true, null]}`)
	res, err := Filter(doc, `doc`)
	if err != nil {
		t.Fatal(err)
	}
	if !ir.Equal(doc, res) {
		t.Errorf("identity filter changed document: %v", res)
	}
}

func TestFilterCompileErr(t *testing.T) {
	doc := mustParse(t, `{}`)
	_, err := Filter(doc, `doc.(`)
	if !errors.Is(err, ErrEval) {
		t.Errorf("expected ErrEval, got %v", err)
	}
}
