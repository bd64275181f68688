package ir

import (
	"fmt"
	"strconv"
	"strings"
)

// GetPath resolves a dotted path such as "group.sub.x" from a group. A
// segment may end with an index, "group.values[2]", to select an array
// element. The empty path resolves to y itself.
func (y *Node) GetPath(path string) (*Node, error) {
	if path == "" {
		return y, nil
	}
	cur := y
	for _, seg := range strings.Split(path, ".") {
		name, idx, err := splitIndex(seg)
		if err != nil {
			return nil, err
		}
		if name != "" {
			if cur.Type != GroupType {
				return nil, fmt.Errorf("%w: %q is a %s", ErrNotGroup, name, cur.Type)
			}
			next, ok := cur.Lookup(name)
			if !ok {
				return nil, fmt.Errorf("%w: %q in path %q", ErrNoSuchKey, name, path)
			}
			cur = next
		}
		if idx < 0 {
			continue
		}
		if cur.Type != ArrayType {
			return nil, fmt.Errorf("%w: cannot index %s with [%d]", ErrNotArray, cur.Type, idx)
		}
		if idx >= len(cur.Values) {
			return nil, fmt.Errorf("%w: index %d out of range (len %d)", ErrNoSuchKey, idx, len(cur.Values))
		}
		cur = cur.Values[idx]
	}
	return cur, nil
}

func splitIndex(seg string) (string, int, error) {
	if !strings.HasSuffix(seg, "]") {
		return seg, -1, nil
	}
	open := strings.LastIndexByte(seg, '[')
	if open < 0 {
		return "", -1, fmt.Errorf("malformed path segment %q", seg)
	}
	i, err := strconv.Atoi(seg[open+1 : len(seg)-1])
	if err != nil || i < 0 {
		return "", -1, fmt.Errorf("malformed index in path segment %q", seg)
	}
	return seg[:open], i, nil
}

// Walk visits every entry of a group tree in pre-order with its dotted path.
// Returning false from f skips the entry's children.
func Walk(y *Node, f func(path string, n *Node) bool) {
	walk(y, "", f)
}

func walk(y *Node, prefix string, f func(string, *Node) bool) {
	if y.Type != GroupType {
		return
	}
	for i, k := range y.Fields {
		p := k
		if prefix != "" {
			p = prefix + "." + k
		}
		v := y.Values[i]
		if !f(p, v) {
			continue
		}
		walk(v, p, f)
	}
}
