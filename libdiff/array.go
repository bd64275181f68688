package libdiff

import (
	"github.com/quillml/go-quillml/encode"
	"github.com/quillml/go-quillml/ir"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// DiffArray aligns the elements of two arrays of the same kind and
// dimension. Deleted elements are indexed as in from, inserted and
// replaced ones as in to. A run of deletions directly followed by a run
// of insertions pairs up into replacements. Arrays with too many distinct
// values to align are replaced whole.
func DiffArray(from, to *ir.Node, path string) []Change {
	m := map[string]rune{}
	fromRunes, ok1 := mapValues(m, from)
	toRunes, ok2 := mapValues(m, to)
	if !ok1 || !ok2 {
		if ir.Equal(from, to) {
			return nil
		}
		return []Change{MakeChange(path, from, to)}
	}
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMainRunes(fromRunes, toRunes, false)

	var res []Change
	fi, ti := 0, 0
	var pending []int
	flush := func() {
		for _, i := range pending {
			res = append(res, MakeChange(index(path, i), from.Values[i], nil))
		}
		pending = pending[:0]
	}
	for i := range diffs {
		diff := &diffs[i]
		n := len([]rune(diff.Text))
		switch diff.Type {
		case diffpatch.DiffDelete:
			for range n {
				pending = append(pending, fi)
				fi++
			}
		case diffpatch.DiffEqual:
			flush()
			fi += n
			ti += n
		case diffpatch.DiffInsert:
			for range n {
				if len(pending) > 0 {
					res = append(res, MakeChange(index(path, ti), from.Values[pending[0]], to.Values[ti]))
					pending = pending[1:]
				} else {
					res = append(res, MakeChange(index(path, ti), nil, to.Values[ti]))
				}
				ti++
			}
			flush()
		}
	}
	flush()
	return res
}

// mapValues fails when the arrays hold more distinct values than there
// are key runes.
func mapValues(m map[string]rune, node *ir.Node) ([]rune, bool) {
	rs := make([]rune, len(node.Values))
	for i, v := range node.Values {
		sum := encode.ValueString(v)
		r, ok := m[sum]
		if !ok {
			if len(m) >= maxKeys {
				return nil, false
			}
			r = keyRune(len(m))
			m[sum] = r
		}
		rs[i] = r
	}
	return rs, true
}
