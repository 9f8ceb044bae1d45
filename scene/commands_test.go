package scene

import "testing"

func TestCommandBufferFIFO(t *testing.T) {
	w := NewWorld()
	var buf CommandBuffer
	var order []int

	buf.Defer(func(*World) { order = append(order, 1) })
	buf.Defer(func(*World) { order = append(order, 2) })
	buf.Defer(func(*World) { order = append(order, 3) })

	if buf.Len() != 3 {
		t.Fatalf("expected 3 pending, got %d", buf.Len())
	}
	if applied := buf.Flush(w); applied != 3 {
		t.Fatalf("expected 3 applied, got %d", applied)
	}
	if len(order) != 3 || order[0] != 1 || order[1] != 2 || order[2] != 3 {
		t.Fatalf("expected enqueue order, got %v", order)
	}
	if buf.Len() != 0 {
		t.Fatalf("flush should empty the queue, %d left", buf.Len())
	}
}

func TestCommandBufferFlushAppliesOnce(t *testing.T) {
	w := NewWorld()
	var buf CommandBuffer
	count := 0
	buf.Defer(func(*World) { count++ })

	buf.Flush(w)
	buf.Flush(w)
	if count != 1 {
		t.Fatalf("command applied %d times, want 1", count)
	}
}

func TestCommandBufferReentrantDefer(t *testing.T) {
	w := NewWorld()
	var buf CommandBuffer
	var order []string

	buf.Defer(func(*World) {
		order = append(order, "outer")
		buf.Defer(func(*World) { order = append(order, "inner") })
	})

	if applied := buf.Flush(w); applied != 2 {
		t.Fatalf("expected nested command in same flush, applied=%d", applied)
	}
	if len(order) != 2 || order[0] != "outer" || order[1] != "inner" {
		t.Fatalf("expected [outer inner], got %v", order)
	}
}

func TestCommandBufferNilSafe(t *testing.T) {
	var buf *CommandBuffer
	buf.Defer(func(*World) {})
	if buf.Len() != 0 {
		t.Fatalf("nil buffer should report empty")
	}
	if buf.Flush(NewWorld()) != 0 {
		t.Fatalf("nil buffer flush should apply nothing")
	}

	var real CommandBuffer
	real.Defer(nil)
	if real.Len() != 0 {
		t.Fatalf("nil commands should not enqueue")
	}
}
