package quillml

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"

	"github.com/quillml/go-quillml/debug"
	"github.com/quillml/go-quillml/encode"
	"github.com/quillml/go-quillml/ir"
	"github.com/quillml/go-quillml/parse"

	jsonpatch "github.com/evanphx/json-patch"
)

var ErrPatch = errors.New("patch error")

// ApplyPatch applies an RFC 6902 JSON patch to the dict projection of doc
// and returns the resulting tree. Paths address the projection, so a leaf
// value is at "/group/x/value". Entries keep their order in doc; added
// entries follow them.
func ApplyPatch(doc *ir.Node, patch []byte) (*ir.Node, error) {
	ops, err := jsonpatch.DecodePatch(patch)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	return applyJSON(doc, "json-patch", func(d []byte) ([]byte, error) {
		return ops.Apply(d)
	})
}

// MergePatch applies an RFC 7396 JSON merge patch to the dict projection of
// doc. A null member removes an entry.
func MergePatch(doc *ir.Node, patch []byte) (*ir.Node, error) {
	return applyJSON(doc, "merge-patch", func(d []byte) ([]byte, error) {
		return jsonpatch.MergePatch(d, patch)
	})
}

func applyJSON(doc *ir.Node, kind string, apply func([]byte) ([]byte, error)) (*ir.Node, error) {
	if debug.Patch() {
		debug.Logf("%s on %s\n", kind, encode.Debug(doc))
	}
	d, err := json.Marshal(encode.ToDict(doc))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	out, err := apply(d)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrPatch, kind, err)
	}
	res, err := parse.FromJSON(out)
	if err != nil {
		return nil, fmt.Errorf("%w: result: %w", ErrPatch, err)
	}
	if err := ir.Validate(res); err != nil {
		return nil, fmt.Errorf("%w: result: %w", ErrPatch, err)
	}
	res = restoreOrder(res, doc)
	if debug.Patch() {
		debug.Logf("%s gave %s\n", kind, encode.Debug(res))
	}
	return res, nil
}

// restoreOrder reorders the groups of res to follow orig: keys orig has come
// first in its order, then keys new to res in their order in res.
func restoreOrder(res, orig *ir.Node) *ir.Node {
	if res.Type != ir.GroupType || orig == nil || orig.Type != ir.GroupType {
		return res
	}
	out := ir.NewGroup()
	for _, k := range orig.Fields {
		if v, ok := res.Lookup(k); ok {
			o, _ := orig.Lookup(k)
			_ = out.Add(k, restoreOrder(v, o))
		}
	}
	for i, k := range res.Fields {
		if !slices.Contains(orig.Fields, k) {
			_ = out.Add(k, restoreOrder(res.Values[i], nil))
		}
	}
	return out
}
