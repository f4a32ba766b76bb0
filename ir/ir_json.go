package ir

import (
	"bytes"
	"encoding/json"
)

// MarshalJSON renders the node through encoding/json, preserving object
// field order.  It exists so callers can hand a parsed tree to host JSON
// tooling; the core itself never produces text.
func (y *Node) MarshalJSON() ([]byte, error) {
	switch y.Type {
	case NullType:
		return []byte("null"), nil
	case BoolType:
		return json.Marshal(y.Bool)
	case NumberType:
		return json.Marshal(y.Num)
	case StringType:
		return json.Marshal(y.Str)
	case ArrayType:
		if y.Values == nil {
			return []byte("[]"), nil
		}
		return json.Marshal(y.Values)
	case ObjectType:
		buf := bytes.NewBufferString("{")
		for i := range y.Fields {
			if i > 0 {
				buf.WriteByte(',')
			}
			key, err := json.Marshal(y.Fields[i])
			if err != nil {
				return nil, err
			}
			buf.Write(key)
			buf.WriteByte(':')
			val, err := json.Marshal(y.Values[i])
			if err != nil {
				return nil, err
			}
			buf.Write(val)
		}
		buf.WriteByte('}')
		return buf.Bytes(), nil
	default:
		panic("impossible production")
	}
}
