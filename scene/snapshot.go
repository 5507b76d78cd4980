package scene

// Snapshot accumulates nodes in paint order and turns them into a
// single node. It mirrors how the display backend records a frame:
// append, append, then freeze.
type Snapshot struct {
	nodes []Node
}

// NewSnapshot creates an empty snapshot.
func NewSnapshot() *Snapshot {
	return &Snapshot{}
}

// Append adds a node on top of the nodes recorded so far. Nil nodes
// are ignored.
func (s *Snapshot) Append(n Node) {
	if n == nil {
		return
	}
	s.nodes = append(s.nodes, n)
}

// Len returns the number of recorded nodes.
func (s *Snapshot) Len() int { return len(s.nodes) }

// ToNode freezes the snapshot into an immutable node. It returns nil
// when nothing was recorded, and the node itself when exactly one node
// was recorded.
func (s *Snapshot) ToNode() Node {
	switch len(s.nodes) {
	case 0:
		return nil
	case 1:
		return s.nodes[0]
	default:
		return NewContainerNode(s.nodes...)
	}
}
