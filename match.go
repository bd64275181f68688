package quillml

import (
	"github.com/quillml/go-quillml/debug"
	"github.com/quillml/go-quillml/encode"
	"github.com/quillml/go-quillml/ir"
)

type MatchConfig struct {
	// Dimensions makes a pattern leaf without a dimension match only
	// document leaves without one.
	Dimensions bool
}

type MatchOpt func(*MatchConfig)

func MatchDimensions(v bool) MatchOpt {
	return func(c *MatchConfig) { c.Dimensions = v }
}

// Match reports whether doc contains pattern: every entry of a pattern group
// must be present in the document group and match, and leaves must be equal.
// By default a pattern leaf with no dimension matches the same value with any
// dimension.
func Match(doc, pattern *ir.Node, opts ...MatchOpt) bool {
	cfg := &MatchConfig{}
	for _, o := range opts {
		o(cfg)
	}
	return match(doc, pattern, cfg)
}

func match(doc, pattern *ir.Node, cfg *MatchConfig) bool {
	if debug.Match() {
		debug.Logf("match %s against %s\n", encode.Debug(pattern), encode.Debug(doc))
	}
	if pattern.Type != doc.Type {
		return false
	}
	if pattern.Type != ir.GroupType {
		if pattern.Dimension == nil && !cfg.Dimensions && doc.Dimension != nil {
			doc = doc.Clone()
			doc.Dimension = nil
		}
		return ir.Equal(doc, pattern)
	}
	for i, k := range pattern.Fields {
		dv, ok := doc.Lookup(k)
		if !ok {
			return false
		}
		if !match(dv, pattern.Values[i], cfg) {
			return false
		}
	}
	return true
}
