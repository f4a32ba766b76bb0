// Package token provides JSON tokenization support.
//
// [Tokenize] converts input text into a flat token sequence in a single
// left to right pass, with 1-based line bookkeeping for diagnostics.
// Object keys are recognized lexically: a quoted string whose next
// non-whitespace character is a colon is emitted as [TObjectKey], so the
// token stream carries no colon token at all.
package token
