package ir

// Node is a value in a parsed JSON document.  It works as a recursive
// tagged union: the Type field selects which payload fields are
// meaningful.  Objects keep insertion order in the parallel Fields and
// Values slices; arrays use Values alone.
type Node struct {
	Type Type

	Str  string
	Bool bool
	Num  float64

	Fields []string
	Values []*Node
}

func FromString(v string) *Node {
	return &Node{Type: StringType, Str: v}
}

func FromFloat(v float64) *Node {
	return &Node{Type: NumberType, Num: v}
}

func FromBool(v bool) *Node {
	return &Node{Type: BoolType, Bool: v}
}

func Null() *Node {
	return &Node{Type: NullType}
}

func FromSlice(vs []*Node) *Node {
	return &Node{Type: ArrayType, Values: vs}
}

type KeyVal struct {
	Key string
	Val *Node
}

// FromKeyVals builds an object node.  A later duplicate key overwrites the
// earlier value in place, preserving the original insertion position.
func FromKeyVals(kvs []KeyVal) *Node {
	res := &Node{Type: ObjectType}
	for i := range kvs {
		res.Set(kvs[i].Key, kvs[i].Val)
	}
	return res
}

// Set associates field with v, appending the field if absent and
// overwriting in place if present.
func (y *Node) Set(field string, v *Node) {
	for i := range y.Fields {
		if y.Fields[i] == field {
			y.Values[i] = v
			return
		}
	}
	y.Fields = append(y.Fields, field)
	y.Values = append(y.Values, v)
}

// Get returns the value of field, or nil if absent or y is not an object.
func (y *Node) Get(field string) *Node {
	if y.Type != ObjectType {
		return nil
	}
	for i := range y.Fields {
		if y.Fields[i] == field {
			return y.Values[i]
		}
	}
	return nil
}

// Len returns the number of elements of an array or fields of an object.
func (y *Node) Len() int {
	return len(y.Values)
}

func (y *Node) Clone() *Node {
	if y == nil {
		return nil
	}
	res := &Node{
		Type: y.Type,
		Str:  y.Str,
		Bool: y.Bool,
		Num:  y.Num,
	}
	if y.Fields != nil {
		res.Fields = make([]string, len(y.Fields))
		copy(res.Fields, y.Fields)
	}
	if y.Values != nil {
		res.Values = make([]*Node, len(y.Values))
		for i, v := range y.Values {
			res.Values[i] = v.Clone()
		}
	}
	return res
}

// Visit calls f on y and, if f returns true for a container, on each of
// its values recursively.
func (y *Node) Visit(f func(y *Node, isPost bool) (bool, error)) error {
	dive, err := f(y, false)
	if err != nil {
		return err
	}
	if dive {
		for _, yy := range y.Values {
			if err := yy.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(y, true); err != nil {
		return err
	}
	return nil
}
