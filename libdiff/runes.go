package libdiff

import "unicode/utf8"

// Distinct keys are numbered as runes so diffmatchpatch can align them.
// The runes pass through string conversions there, so the surrogate block
// is skipped; every number below maxKeys maps to a valid rune.
const (
	surrogateMin = 0xD800
	surrogateLen = 0xE000 - surrogateMin
	maxKeys      = utf8.MaxRune + 1 - surrogateLen
)

func keyRune(n int) rune {
	r := rune(n)
	if r >= surrogateMin {
		r += surrogateLen
	}
	return r
}
