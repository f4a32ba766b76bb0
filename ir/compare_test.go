package ir

import "testing"

func TestCompareRanks(t *testing.T) {
	ordered := []*Node{
		Null(),
		FromBool(false),
		FromFloat(0),
		FromString(""),
		FromSlice(nil),
		{Type: ObjectType},
	}
	for i := range ordered {
		for j := range ordered {
			got := Compare(ordered[i], ordered[j])
			want := 0
			if i < j {
				want = -1
			} else if i > j {
				want = 1
			}
			if got != want {
				t.Errorf("Compare(%s, %s) = %d, want %d",
					ordered[i].Type, ordered[j].Type, got, want)
			}
		}
	}
}

func TestCompareScalars(t *testing.T) {
	if Compare(FromFloat(1), FromFloat(2)) != -1 {
		t.Error("1 should sort before 2")
	}
	if Compare(FromString("b"), FromString("a")) != 1 {
		t.Error("b should sort after a")
	}
	if Compare(FromBool(false), FromBool(true)) != -1 {
		t.Error("false should sort before true")
	}
	if !Equal(Null(), Null()) {
		t.Error("nulls should be equal")
	}
}

func TestCompareContainers(t *testing.T) {
	a := FromSlice([]*Node{FromFloat(1), FromFloat(2)})
	b := FromSlice([]*Node{FromFloat(1), FromFloat(3)})
	if Compare(a, b) != -1 {
		t.Error("[1,2] should sort before [1,3]")
	}
	if Compare(a, FromSlice([]*Node{FromFloat(1)})) != 1 {
		t.Error("longer array should sort after shorter")
	}

	x := FromKeyVals([]KeyVal{{Key: "a", Val: FromFloat(1)}})
	y := FromKeyVals([]KeyVal{{Key: "a", Val: FromFloat(1)}})
	if !Equal(x, y) {
		t.Error("identical objects should be equal")
	}
	y.Set("a", FromFloat(2))
	if Compare(x, y) != -1 {
		t.Error(`{"a":1} should sort before {"a":2}`)
	}
}

func TestCompareNil(t *testing.T) {
	if Compare(nil, nil) != 0 {
		t.Error("nil == nil")
	}
	if Compare(nil, Null()) != -1 || Compare(Null(), nil) != 1 {
		t.Error("nil sorts before any node")
	}
}
