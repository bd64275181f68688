package encode

import (
	"bytes"
	"strings"

	"github.com/quillml/go-quillml/debug"
	"github.com/quillml/go-quillml/ir"
)

func MustString(node *ir.Node) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(node, buf); err != nil {
		panic(err)
	}
	return strings.TrimSpace(buf.String())
}

type debugNode struct {
	node *ir.Node
}

// Debug wraps node for debug.Logf, which renders it on one line.
func Debug(node *ir.Node) debug.Stringer {
	return debugNode{node: node}
}

func (d debugNode) DebugString() string {
	if d.node == nil {
		return "<nil>"
	}
	return ValueString(d.node)
}
