package ir

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestAny(t *testing.T) {
	y := FromKeyVals([]KeyVal{
		{Key: "n", Val: Null()},
		{Key: "b", Val: FromBool(true)},
		{Key: "xs", Val: FromSlice([]*Node{FromFloat(1), FromString("s")})},
	})
	want := map[string]any{
		"n":  nil,
		"b":  true,
		"xs": []any{1.0, "s"},
	}
	if d := cmp.Diff(want, y.Any()); d != "" {
		t.Errorf("Any (-want +got):\n%s", d)
	}
}

func TestFromAnyRoundTrip(t *testing.T) {
	y := FromKeyVals([]KeyVal{
		{Key: "a", Val: FromFloat(1)},
		{Key: "b", Val: FromSlice([]*Node{FromBool(false), Null()})},
	})
	back, err := FromAny(y.Any())
	if err != nil {
		t.Fatal(err)
	}
	if !Equal(y, back) {
		t.Errorf("round trip differs:\n%s", cmp.Diff(y, back))
	}
}

func TestFromAnyInts(t *testing.T) {
	for _, v := range []any{int(7), int32(7), int64(7), uint(7), uint64(7), float32(7)} {
		y, err := FromAny(v)
		if err != nil {
			t.Fatalf("FromAny(%T): %v", v, err)
		}
		if y.Type != NumberType || y.Num != 7 {
			t.Errorf("FromAny(%T) = %v, want number 7", v, y)
		}
	}
}

func TestFromAnySortsKeys(t *testing.T) {
	y, err := FromAny(map[string]any{"z": 1.0, "a": 2.0, "m": 3.0})
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff([]string{"a", "m", "z"}, y.Fields); d != "" {
		t.Errorf("fields (-want +got):\n%s", d)
	}
}

func TestFromAnyErr(t *testing.T) {
	_, err := FromAny(struct{}{})
	if !errors.Is(err, ErrConvert) {
		t.Errorf("expected ErrConvert, got %v", err)
	}
}
