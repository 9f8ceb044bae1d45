package scene

// Command is a structural mutation deferred until the current UI traversal
// has finished reading the world.
type Command func(*World)

// CommandBuffer collects commands during a frame and applies them after
// traversal. FIFO, no coalescing, no cancellation: every deferred command
// applies exactly once, in enqueue order.
type CommandBuffer struct {
	queue []Command
}

// Defer enqueues a command for the end of the current frame.
func (b *CommandBuffer) Defer(cmd Command) {
	if b == nil || cmd == nil {
		return
	}
	b.queue = append(b.queue, cmd)
}

// Len returns the number of pending commands.
func (b *CommandBuffer) Len() int {
	if b == nil {
		return 0
	}
	return len(b.queue)
}

// Flush applies pending commands in order and returns how many ran.
// Commands deferred while flushing run in the same flush, after the ones
// already queued.
func (b *CommandBuffer) Flush(w *World) int {
	if b == nil {
		return 0
	}
	applied := 0
	for len(b.queue) > 0 {
		cmd := b.queue[0]
		b.queue = b.queue[1:]
		cmd(w)
		applied++
	}
	return applied
}
