package sim

// Commands buffers work that must run after every system in the frame has
// executed, such as rendering overlays that read the final frame state.
type Commands struct {
	defers []func()
}

func newCommands() *Commands {
	return &Commands{}
}

// Defer queues fn to run when the frame is flushed.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, fn)
}

// Len reports how many commands are queued.
func (c *Commands) Len() int {
	return len(c.defers)
}

// Flush runs queued functions in order and resets the buffer. Functions
// deferred during the flush run in the same flush.
func (c *Commands) Flush() {
	for i := 0; i < len(c.defers); i++ {
		c.defers[i]()
	}
	clear(c.defers)
	c.defers = c.defers[:0]
}
