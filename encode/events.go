package encode

import (
	"fmt"

	"github.com/quillml/go-quillml/ir"
)

// EventType is the kind of a structural event.
type EventType int

const (
	EventBeginGroup EventType = iota
	EventEndGroup
	EventLeaf
)

func (t EventType) String() string {
	switch t {
	case EventBeginGroup:
		return "BeginGroup"
	case EventEndGroup:
		return "EndGroup"
	case EventLeaf:
		return "Leaf"
	}
	return fmt.Sprintf("EventType(%d)", int(t))
}

// Event is one step of a depth-first walk over a tree. Name is the entry
// name for BeginGroup and Leaf and empty for EndGroup; Node is the group or
// leaf itself.
type Event struct {
	Type EventType
	Name string
	Node *ir.Node
}

// NodeToEvents flattens node into events. The children of a group root
// are emitted without a BeginGroup/EndGroup pair of their own; a leaf root
// is a single unnamed Leaf.
func NodeToEvents(node *ir.Node) []Event {
	if node.Type != ir.GroupType {
		return []Event{{Type: EventLeaf, Node: node}}
	}
	var res []Event
	var walk func(*ir.Node)
	walk = func(g *ir.Node) {
		for i, k := range g.Fields {
			v := g.Values[i]
			if v.Type != ir.GroupType {
				res = append(res, Event{Type: EventLeaf, Name: k, Node: v})
				continue
			}
			res = append(res, Event{Type: EventBeginGroup, Name: k, Node: v})
			walk(v)
			res = append(res, Event{Type: EventEndGroup, Node: v})
		}
	}
	walk(node)
	return res
}

// EventsToNode rebuilds a group from events. Leaves are cloned; groups are
// rebuilt from their events, not taken from Event.Node.
func EventsToNode(events []Event) (*ir.Node, error) {
	root := ir.NewGroup()
	stack := []*ir.Node{root}
	for i, ev := range events {
		top := stack[len(stack)-1]
		switch ev.Type {
		case EventBeginGroup:
			g := ir.NewGroup()
			if err := top.Add(ev.Name, g); err != nil {
				return nil, fmt.Errorf("%w: event %d: %w", ErrEncoding, i, err)
			}
			stack = append(stack, g)
		case EventEndGroup:
			if len(stack) == 1 {
				return nil, fmt.Errorf("%w: event %d: EndGroup without BeginGroup", ErrEncoding, i)
			}
			stack = stack[:len(stack)-1]
		case EventLeaf:
			if ev.Node == nil || ev.Node.Type == ir.GroupType {
				return nil, fmt.Errorf("%w: event %d: leaf [%s] has no leaf value", ErrEncoding, i, ev.Name)
			}
			if err := top.Add(ev.Name, ev.Node.Clone()); err != nil {
				return nil, fmt.Errorf("%w: event %d: %w", ErrEncoding, i, err)
			}
		default:
			return nil, fmt.Errorf("%w: event %d: unknown %s", ErrEncoding, i, ev.Type)
		}
	}
	if len(stack) != 1 {
		return nil, fmt.Errorf("%w: %d groups not closed", ErrEncoding, len(stack)-1)
	}
	return root, nil
}
