// Package ir provides the in-memory representation of parsed JSON
// documents.
//
// # Overview
//
// A document is a tree of [Node] values.  The IR works as a recursive
// tagged union: the Type field selects which payload fields are
// meaningful.
//
//   - Atomic types: null, boolean, number, string
//   - Composite types: object (ordered key-value pairs), array
//
// Objects preserve insertion order and keep keys unique; a later
// duplicate key silently overwrites the earlier one in place.
//
// # Creating Nodes
//
// Use constructor functions to create nodes:
//
//	node := ir.FromString("hello")
//	num := ir.FromFloat(42)
//	flag := ir.FromBool(true)
//	arr := ir.FromSlice([]*ir.Node{node, num})
//
// Once a tree is returned by the parser, ownership passes entirely to the
// caller; nothing in this module mutates it afterwards.
package ir
