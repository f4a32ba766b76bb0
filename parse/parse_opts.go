package parse

// DefaultMaxDepth bounds container nesting so adversarial input cannot
// grow the call stack without limit.
const DefaultMaxDepth = 1000

type parseOpts struct {
	maxDepth int
	strict   bool
}

type ParseOption func(*parseOpts)

// MaxDepth sets the maximum container nesting depth.  Values < 1 restore
// the default.
func MaxDepth(n int) ParseOption {
	return func(o *parseOpts) {
		if n < 1 {
			n = DefaultMaxDepth
		}
		o.maxDepth = n
	}
}

// Strict makes trailing tokens after a complete top-level document a parse
// error instead of silently ignoring them.
func Strict() ParseOption {
	return func(o *parseOpts) {
		o.strict = true
	}
}
