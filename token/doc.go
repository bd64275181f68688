// Package token splits QuillML text into numbered logical lines.
//
// [Lines] strips comments and surrounding whitespace from every physical
// line while keeping 1-based line numbers, including for empty lines, so
// that diagnostics point at the right place. [ScanName] recognizes the
// variable-name token that starts every assignment and group.
package token
