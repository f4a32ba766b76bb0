package parse

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/jute-format/go-jute/ir"
	"github.com/jute-format/go-jute/token"
)

func obj(kvs ...ir.KeyVal) *ir.Node { return ir.FromKeyVals(kvs) }
func kv(k string, v *ir.Node) ir.KeyVal {
	return ir.KeyVal{Key: k, Val: v}
}
func arr(vs ...*ir.Node) *ir.Node { return ir.FromSlice(vs) }
func str(s string) *ir.Node       { return ir.FromString(s) }
func fl(v float64) *ir.Node       { return ir.FromFloat(v) }
func boolean(v bool) *ir.Node     { return ir.FromBool(v) }

func checkParse(t *testing.T, in string, want *ir.Node, opts ...ParseOption) {
	t.Helper()
	got, err := Parse([]byte(in), opts...)
	if err != nil {
		t.Errorf("Parse(%q): %v", in, err)
		return
	}
	if !ir.Equal(want, got) {
		t.Errorf("Parse(%q) (-want +got):\n%s", in, cmp.Diff(want, got))
	}
}

func checkParseErr(t *testing.T, in string, opts ...ParseOption) error {
	t.Helper()
	_, err := Parse([]byte(in), opts...)
	if err == nil {
		t.Errorf("Parse(%q): expected error", in)
	}
	return err
}

func TestParseEmpty(t *testing.T) {
	checkParse(t, "", ir.Null())
	checkParse(t, " \n\t ", ir.Null())
}

func TestParseArrays(t *testing.T) {
	checkParse(t, "[]", arr())
	checkParse(t, "[1]", arr(fl(1)))
	checkParse(t, "[1, 2, 3]", arr(fl(1), fl(2), fl(3)))
	checkParse(t, `["a", "b"]`, arr(str("a"), str("b")))
	checkParse(t, "[true, false, null]", arr(boolean(true), boolean(false), ir.Null()))
	checkParse(t, "[[null,[]],[]]", arr(arr(ir.Null(), arr()), arr()))
	checkParse(t, "[[[]]]", arr(arr(arr())))
}

func TestParseObjects(t *testing.T) {
	checkParse(t, "{}", obj())
	checkParse(t, `{"a": 1}`, obj(kv("a", fl(1))))
	checkParse(t, `{"a": 1, "b": [2, 3]}`,
		obj(kv("a", fl(1)), kv("b", arr(fl(2), fl(3)))))
	checkParse(t, `{"a": {"b": {}}}`,
		obj(kv("a", obj(kv("b", obj())))))
	checkParse(t, "{\"test\"\n\n: {}}", obj(kv("test", obj())))
}

func TestParseMixed(t *testing.T) {
	in := `
	{
		"name": "Brent Pappas",
		"age": 22,
		"interests": ["juggling", "programming", "reading"]
	}
	`
	want := obj(
		kv("name", str("Brent Pappas")),
		kv("age", fl(22)),
		kv("interests", arr(str("juggling"), str("programming"), str("reading"))),
	)
	checkParse(t, in, want)
}

func TestParseFieldOrder(t *testing.T) {
	got, err := Parse([]byte(`{"z": 1, "a": 2, "m": 3}`))
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"z", "a", "m"}
	if d := cmp.Diff(want, got.Fields); d != "" {
		t.Errorf("field order (-want +got):\n%s", d)
	}
}

func TestParseDupKeys(t *testing.T) {
	got, err := Parse([]byte(`{"a": 1, "b": 2, "a": 3}`))
	if err != nil {
		t.Fatal(err)
	}
	want := obj(kv("a", fl(3)), kv("b", fl(2)))
	if !ir.Equal(want, got) {
		t.Errorf("duplicate keys (-want +got):\n%s", cmp.Diff(want, got))
	}
	// first occurrence keeps its slot
	if d := cmp.Diff([]string{"a", "b"}, got.Fields); d != "" {
		t.Errorf("field order (-want +got):\n%s", d)
	}
}

func TestParseErrs(t *testing.T) {
	for _, in := range []string{
		"[",
		"[1,",
		"[1 2]",
		"[,]",
		"{",
		`{"a"`,
		`{"a":`,
		`{"a": 1,}`,
		`{"a": 1 "b": 2}`,
		`{1: 2}`,
		`{"a" 1}`,
		"1",
		`"scalar"`,
		"true",
		"null",
	} {
		err := checkParseErr(t, in)
		if err != nil && !errors.Is(err, ErrParse) {
			t.Errorf("Parse(%q): error does not wrap ErrParse: %v", in, err)
		}
	}
}

func TestParseErrExpected(t *testing.T) {
	_, err := Parse([]byte("[1 2]"))
	pe := &ParseErr{}
	if !errors.As(err, &pe) {
		t.Fatalf("error %v is not a *ParseErr", err)
	}
	if pe.Token.Type != token.TNumber {
		t.Errorf("expected offending token TNumber, got %s", pe.Token.Type)
	}
	found := false
	for _, ty := range pe.Expected {
		if ty == token.TRSquare {
			found = true
		}
	}
	if !found {
		t.Errorf("expected TRSquare in expected set, got %v", pe.Expected)
	}
}

func TestParseTrailing(t *testing.T) {
	// trailing tokens are ignored by default
	checkParse(t, "[] []", arr())
	checkParse(t, `{"a": 1} null`, obj(kv("a", fl(1))))
	checkParse(t, `[1] , , ]`, arr(fl(1)))
}

func TestParseStrict(t *testing.T) {
	checkParse(t, "[]", arr(), Strict())
	checkParse(t, `{"a": 1}`, obj(kv("a", fl(1))), Strict())
	err := checkParseErr(t, "[] []", Strict())
	if err != nil && !errors.Is(err, ErrParse) {
		t.Errorf("strict trailing error does not wrap ErrParse: %v", err)
	}
	checkParseErr(t, "{} null", Strict())
}

func TestParseMaxDepth(t *testing.T) {
	deep := strings.Repeat("[", 64) + strings.Repeat("]", 64)
	if _, err := Parse([]byte(deep), MaxDepth(65)); err != nil {
		t.Errorf("MaxDepth(65) rejected 64 levels: %v", err)
	}

	_, err := Parse([]byte(deep), MaxDepth(8))
	if !errors.Is(err, ErrDepth) {
		t.Errorf("expected ErrDepth, got %v", err)
	}

	// default limit admits reasonable nesting
	if _, err := Parse([]byte(deep)); err != nil {
		t.Errorf("default depth limit rejected 64 levels: %v", err)
	}
}

func TestParseTokenizeErr(t *testing.T) {
	_, err := Parse([]byte("[tru]"))
	if !errors.Is(err, token.ErrToken) {
		t.Errorf("expected wrapped token error, got %v", err)
	}
}

func TestParseTokens(t *testing.T) {
	toks, err := token.Tokenize(nil, []byte(`["x"]`))
	if err != nil {
		t.Fatal(err)
	}
	got, err := ParseTokens(toks)
	if err != nil {
		t.Fatal(err)
	}
	if !ir.Equal(arr(str("x")), got) {
		t.Errorf("ParseTokens mismatch: %v", got)
	}
}
