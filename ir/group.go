package ir

import (
	"fmt"
	"slices"
)

func NewGroup() *Node {
	return &Node{Type: GroupType}
}

// FromFields builds a group from parallel keys and values. It returns an
// error wrapping ErrDuplicateKey if a key repeats.
func FromFields(keys []string, values []*Node) (*Node, error) {
	if len(keys) != len(values) {
		return nil, fmt.Errorf("%w: %d keys for %d values", ErrInvalid, len(keys), len(values))
	}
	g := NewGroup()
	for i, k := range keys {
		if err := g.Add(k, values[i]); err != nil {
			return nil, err
		}
	}
	return g, nil
}

func (y *Node) mustGroup() {
	if y.Type != GroupType {
		panic(fmt.Sprintf("%v: %s", ErrNotGroup, y.Type))
	}
}

func (y *Node) keyIndex(key string) int {
	if y.index != nil && len(y.index) == len(y.Fields) {
		if i, ok := y.index[key]; ok && i < len(y.Fields) && y.Fields[i] == key {
			return i
		}
		return -1
	}
	return slices.Index(y.Fields, key)
}

func (y *Node) reindex() {
	y.index = make(map[string]int, len(y.Fields))
	for i, f := range y.Fields {
		y.index[f] = i
	}
}

// Keys returns the keys of a group in insertion order.
func (y *Node) Keys() []string {
	if y.Type != GroupType {
		return nil
	}
	return slices.Clone(y.Fields)
}

// Has reports whether the group has a child named key.
func (y *Node) Has(key string) bool {
	if y.Type != GroupType {
		return false
	}
	return y.keyIndex(key) >= 0
}

func (y *Node) Lookup(key string) (*Node, bool) {
	if y.Type != GroupType {
		return nil, false
	}
	i := y.keyIndex(key)
	if i < 0 {
		return nil, false
	}
	return y.Values[i], true
}

// Get returns the child named key. It panics if y is not a group or has no
// such child; check with Has first.
func (y *Node) Get(key string) *Node {
	y.mustGroup()
	v, ok := y.Lookup(key)
	if !ok {
		panic(fmt.Sprintf("%v: %q", ErrNoSuchKey, key))
	}
	return v
}

// Add appends a child, failing with ErrDuplicateKey if key is already present.
func (y *Node) Add(key string, v *Node) error {
	y.mustGroup()
	if y.keyIndex(key) >= 0 {
		return fmt.Errorf("%w: %q", ErrDuplicateKey, key)
	}
	y.Fields = append(y.Fields, key)
	y.Values = append(y.Values, v)
	if y.index == nil || len(y.index) != len(y.Fields)-1 {
		y.reindex()
	} else {
		y.index[key] = len(y.Fields) - 1
	}
	return nil
}

// Set replaces the child named key, or appends it if absent.
func (y *Node) Set(key string, v *Node) {
	y.mustGroup()
	if i := y.keyIndex(key); i >= 0 {
		y.Values[i] = v
		return
	}
	_ = y.Add(key, v)
}

// Delete removes the child named key and reports whether it was present.
func (y *Node) Delete(key string) bool {
	y.mustGroup()
	i := y.keyIndex(key)
	if i < 0 {
		return false
	}
	y.Fields = slices.Delete(y.Fields, i, i+1)
	y.Values = slices.Delete(y.Values, i, i+1)
	y.reindex()
	return true
}
