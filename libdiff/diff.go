package libdiff

import (
	"strconv"

	"github.com/jute-format/go-jute/debug"
	"github.com/jute-format/go-jute/ir"
)

// DiffFunc computes the diff of two nodes, returning nil when they are
// equal.
type DiffFunc func(from, to *ir.Node) *ir.Node

// Diff returns nil when from and to are equal, otherwise a node
// describing the differences.  Objects are diffed field-wise, arrays by
// index, scalars by value.
func Diff(from, to *ir.Node) *ir.Node {
	if from == nil && to == nil {
		return nil
	}
	if from == nil || to == nil || from.Type != to.Type {
		return MakeDiff(from, to)
	}
	switch from.Type {
	case ir.ObjectType:
		return DiffObject(from, to, Diff)
	case ir.ArrayType:
		return DiffArray(from, to, Diff)
	default:
		if ir.Equal(from, to) {
			return nil
		}
		if debug.Diff() {
			debug.Logf("leaf change %s -> %s\n", from.Type, to.Type)
		}
		return MakeDiff(from, to)
	}
}

// MakeDiff represents a single change as an object with a "-" field for
// the removed value and a "+" field for the added one.
func MakeDiff(from, to *ir.Node) *ir.Node {
	res := &ir.Node{Type: ir.ObjectType}
	if from != nil {
		res.Set("-", from.Clone())
	}
	if to != nil {
		res.Set("+", to.Clone())
	}
	return res
}

// DiffArray diffs two arrays by index, keying changes by the decimal
// index.
func DiffArray(from, to *ir.Node, df DiffFunc) *ir.Node {
	res := &ir.Node{Type: ir.ObjectType}
	n := min(len(from.Values), len(to.Values))
	for i := 0; i < n; i++ {
		if d := df(from.Values[i], to.Values[i]); d != nil {
			res.Set(strconv.Itoa(i), d)
		}
	}
	for i := n; i < len(from.Values); i++ {
		res.Set(strconv.Itoa(i), MakeDiff(from.Values[i], nil))
	}
	for i := n; i < len(to.Values); i++ {
		res.Set(strconv.Itoa(i), MakeDiff(nil, to.Values[i]))
	}
	if len(res.Fields) == 0 {
		return nil
	}
	return res
}
