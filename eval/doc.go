// Package eval runs expr-lang expressions over entry trees.
//
// The top level entries of a document become variables: numbers are int or
// float64, strings are strings, arrays are []any and groups are
// map[string]any. Dimensions are not part of the values; the dim function
// reads them.
//
//	res, err := eval.Eval(`layers * 2`, root, nil)
//	res, err := eval.Eval(`dim("tracker.radius")`, root, nil)
//
// Functions available to expressions:
//
//   - getpath(path): the value at a dotted path such as "g.r[1]"
//   - haspath(path): whether the path resolves
//   - dim(path): the dimension at path, "" if there is none
//   - getenv(name): an environment variable
//
// This is tooling around documents; QuillML itself has no expressions.
package eval
