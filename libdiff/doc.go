// Package libdiff provides diff computation for parsed JSON documents.
//
// # Usage
//
//	// Compute diff between two nodes
//	diff := libdiff.Diff(oldNode, newNode)
//	if diff == nil {
//	    // documents are equal
//	}
//
// Diffs are represented as IR nodes: containers keyed by the changed field
// (or array index) with {"-": old, "+": new} leaves, so they can be
// inspected, stored and rendered like any other document.
//
// # Related Packages
//
//   - github.com/jute-format/go-jute/ir - IR representation
package libdiff
