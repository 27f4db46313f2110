package hammer

import "github.com/go-drift/hammer/pkg/graphics"

// Node is one row of the stack.
type Node struct {
	Index int
	State State
}

// Chain is the fixed, index-addressed sequence of rows. Neighbours are found
// by index arithmetic, so there are no back-pointers to keep in sync.
type Chain struct {
	nodes []Node
}

// NewChain builds nodes 0 through n-1, all idle at progress 0.
func NewChain(n int) *Chain {
	nodes := make([]Node, n)
	for i := range nodes {
		nodes[i].Index = i
	}
	return &Chain{nodes: nodes}
}

// Len returns the number of nodes.
func (c *Chain) Len() int {
	return len(c.nodes)
}

// Node returns a copy of node i.
func (c *Chain) Node(i int) Node {
	return c.nodes[i]
}

// Adjacent returns the neighbour of node i: the previous node when dir is
// -1, otherwise the next one. At either end of the chain it returns i and
// false, leaving the caller on the chain.
func (c *Chain) Adjacent(i int, dir int) (int, bool) {
	j := i + 1
	if dir == -1 {
		j = i - 1
	}
	if j < 0 || j >= len(c.nodes) {
		return i, false
	}
	return j, true
}

// Draw draws every row at its own progress, root first.
func (c *Chain) Draw(canvas graphics.Canvas, paint graphics.Paint, cfg Config) {
	for _, n := range c.nodes {
		DrawRow(canvas, n.Index, n.State.Progress, paint, cfg)
	}
}

// state returns a pointer to node i's state for in-place transitions.
func (c *Chain) state(i int) *State {
	return &c.nodes[i].State
}
