package ir

import (
	"encoding/json"
	"testing"
)

func TestMarshalJSONOrder(t *testing.T) {
	y := FromKeyVals([]KeyVal{
		{Key: "z", Val: FromFloat(1)},
		{Key: "a", Val: FromKeyVals([]KeyVal{
			{Key: "y", Val: FromBool(true)},
			{Key: "b", Val: Null()},
		})},
	})
	got, err := json.Marshal(y)
	if err != nil {
		t.Fatal(err)
	}
	want := `{"z":1,"a":{"y":true,"b":null}}`
	if string(got) != want {
		t.Errorf("marshal = %s, want %s", got, want)
	}
}

func TestMarshalJSONEmpty(t *testing.T) {
	for _, tc := range []struct {
		y    *Node
		want string
	}{
		{&Node{Type: ObjectType}, "{}"},
		{FromSlice(nil), "[]"},
		{Null(), "null"},
		{FromString("a\nb"), `"a\nb"`},
	} {
		got, err := json.Marshal(tc.y)
		if err != nil {
			t.Fatal(err)
		}
		if string(got) != tc.want {
			t.Errorf("marshal %s = %s, want %s", tc.y.Type, got, tc.want)
		}
	}
}
