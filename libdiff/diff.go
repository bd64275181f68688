package libdiff

import (
	"strconv"

	"github.com/quillml/go-quillml/debug"
	"github.com/quillml/go-quillml/encode"
	"github.com/quillml/go-quillml/ir"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Diff returns the changes that turn from into to, in document order.
func Diff(from, to *ir.Node) []Change {
	return diff(from, to, "")
}

func diff(from, to *ir.Node, path string) []Change {
	if debug.Patch() {
		debug.Logf("diff at %q: %s vs %s\n", path, encode.Debug(from), encode.Debug(to))
	}
	switch {
	case from.Type == ir.GroupType && to.Type == ir.GroupType:
		return DiffGroup(from, to, path, diff)
	case from.Type == ir.ArrayType && to.Type == ir.ArrayType &&
		from.Elem == to.Elem && from.Dim() == to.Dim() && (from.Dimension == nil) == (to.Dimension == nil):
		return DiffArray(from, to, path)
	}
	if ir.Equal(from, to) {
		return nil
	}
	return []Change{MakeChange(path, from, to)}
}

func join(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}

func index(path string, i int) string {
	return path + "[" + strconv.Itoa(i) + "]"
}

// DiffGroup aligns the keys of two groups, reporting keys only in from as
// deletions, keys only in to as insertions, and comparing shared keys with
// df.
func DiffGroup(from, to *ir.Node, path string, df DiffFunc) []Change {
	fieldMap := map[string]rune{}
	runeMap := map[rune]string{}
	fromRunes, ok1 := mapFieldsTo(fieldMap, runeMap, from)
	toRunes, ok2 := mapFieldsTo(fieldMap, runeMap, to)
	if !ok1 || !ok2 {
		return diffGroupByName(from, to, path, df)
	}
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMainRunes(fromRunes, toRunes, false)
	var res []Change
	fi, ti := 0, 0
	for i := range diffs {
		diff := &diffs[i]
		switch diff.Type {
		case diffpatch.DiffDelete:
			for _, r := range diff.Text {
				res = append(res, MakeChange(join(path, runeMap[r]), from.Values[fi], nil))
				fi++
			}
		case diffpatch.DiffEqual:
			for _, r := range diff.Text {
				res = append(res, df(from.Values[fi], to.Values[ti], join(path, runeMap[r]))...)
				fi++
				ti++
			}
		case diffpatch.DiffInsert:
			for _, r := range diff.Text {
				res = append(res, MakeChange(join(path, runeMap[r]), nil, to.Values[ti]))
				ti++
			}
		}
	}
	return res
}

func mapFieldsTo(m map[string]rune, im map[rune]string, node *ir.Node) ([]rune, bool) {
	rs := make([]rune, len(node.Fields))
	for i, f := range node.Fields {
		r, ok := m[f]
		if !ok {
			if len(m) >= maxKeys {
				return nil, false
			}
			r = keyRune(len(m))
			m[f] = r
			im[r] = f
		}
		rs[i] = r
	}
	return rs, true
}

// diffGroupByName matches children by name only, for groups with more
// names than there are key runes: deletions, then shared names in from's
// order, then insertions.
func diffGroupByName(from, to *ir.Node, path string, df DiffFunc) []Change {
	var res []Change
	for i, k := range from.Fields {
		if _, ok := to.Lookup(k); !ok {
			res = append(res, MakeChange(join(path, k), from.Values[i], nil))
		}
	}
	for i, k := range from.Fields {
		if v, ok := to.Lookup(k); ok {
			res = append(res, df(from.Values[i], v, join(path, k))...)
		}
	}
	for i, k := range to.Fields {
		if _, ok := from.Lookup(k); !ok {
			res = append(res, MakeChange(join(path, k), nil, to.Values[i]))
		}
	}
	return res
}
