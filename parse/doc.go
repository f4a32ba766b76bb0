// Package parse parses JSON text into IR nodes.
//
// # Usage
//
//	node, err := parse.Parse([]byte(`{"name": "alice", "age": 30}`))
//	if err != nil {
//	    return err
//	}
//
//	// Parse with options
//	node, err := parse.Parse(data, parse.Strict(), parse.MaxDepth(64))
//
// Parsing is pure recursive descent with a single token of lookahead over
// the scanner's output.  Container nesting is bounded by [MaxDepth]
// (default [DefaultMaxDepth]).
//
// # Related Packages
//
//   - github.com/jute-format/go-jute/ir - IR representation
//   - github.com/jute-format/go-jute/token - Tokenization
package parse
