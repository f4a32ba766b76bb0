package ir

import (
	"fmt"
	"maps"
	"slices"
)

// Any converts the node to native Go values: nil, bool, float64, string,
// []any and map[string]any.  Object field order is lost in the map.
func (y *Node) Any() any {
	switch y.Type {
	case NullType:
		return nil
	case BoolType:
		return y.Bool
	case NumberType:
		return y.Num
	case StringType:
		return y.Str
	case ArrayType:
		res := make([]any, len(y.Values))
		for i, elt := range y.Values {
			res[i] = elt.Any()
		}
		return res
	case ObjectType:
		res := make(map[string]any, len(y.Fields))
		for i := range y.Fields {
			res[y.Fields[i]] = y.Values[i].Any()
		}
		return res
	default:
		panic("impossible production")
	}
}

// FromAny converts native Go values to a node.  Map keys are sorted so the
// result is deterministic.
func FromAny(v any) (*Node, error) {
	switch x := v.(type) {
	case nil:
		return Null(), nil
	case *Node:
		return x.Clone(), nil
	case bool:
		return FromBool(x), nil
	case string:
		return FromString(x), nil
	case float64:
		return FromFloat(x), nil
	case float32:
		return FromFloat(float64(x)), nil
	case int:
		return FromFloat(float64(x)), nil
	case int32:
		return FromFloat(float64(x)), nil
	case int64:
		return FromFloat(float64(x)), nil
	case uint:
		return FromFloat(float64(x)), nil
	case uint32:
		return FromFloat(float64(x)), nil
	case uint64:
		return FromFloat(float64(x)), nil
	case []*Node:
		vs := make([]*Node, len(x))
		for i, elt := range x {
			vs[i] = elt.Clone()
		}
		return FromSlice(vs), nil
	case []any:
		vs := make([]*Node, len(x))
		for i, elt := range x {
			n, err := FromAny(elt)
			if err != nil {
				return nil, err
			}
			vs[i] = n
		}
		return FromSlice(vs), nil
	case map[string]any:
		res := &Node{Type: ObjectType}
		for _, key := range slices.Sorted(maps.Keys(x)) {
			n, err := FromAny(x[key])
			if err != nil {
				return nil, err
			}
			res.Set(key, n)
		}
		return res, nil
	case map[string]*Node:
		res := &Node{Type: ObjectType}
		for _, key := range slices.Sorted(maps.Keys(x)) {
			res.Set(key, x[key].Clone())
		}
		return res, nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrConvert, v)
	}
}
