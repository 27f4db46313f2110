package hammer

// Controller tracks the active row and the direction of traversal.
type Controller struct {
	chain     *Chain
	active    int
	direction int
	step      float64
	resume    ResumeMode
}

// NewController starts at the root moving toward higher indices.
func NewController(chain *Chain, cfg Config) *Controller {
	return &Controller{
		chain:     chain,
		direction: 1,
		step:      cfg.Step,
		resume:    cfg.Resume,
	}
}

// Active returns the index of the active row.
func (c *Controller) Active() int {
	return c.active
}

// Direction returns +1 while traversal heads down the stack and -1 on the
// way back up.
func (c *Controller) Direction() int {
	return c.direction
}

// Chain returns the rows driven by the controller.
func (c *Controller) Chain() *Chain {
	return c.chain
}

// Update advances the active row. On a threshold crossing the active
// pointer moves to the neighbouring row, or traversal reverses if there is
// none, and the crossing is returned to the caller.
func (c *Controller) Update() Outcome {
	st := c.chain.state(c.active)
	next, out := st.Advance(c.step)
	*st = next
	if !out.Crossed() {
		return out
	}
	adj, ok := c.chain.Adjacent(c.active, c.direction)
	if !ok {
		c.direction = -c.direction
	}
	c.active = adj
	return out
}

// BeginIfIdle arms the active row if it is idle and reports whether it did.
func (c *Controller) BeginIfIdle() bool {
	st := c.chain.state(c.active)
	next, started := st.Begin(c.resume)
	*st = next
	return started
}
