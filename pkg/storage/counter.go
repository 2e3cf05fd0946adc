package storage

// ---------- 1. Struct counter ----------

// Counter is a persistent integer owned by the caller.
// It plays the role of a function-local static: the function that receives
// it is the only code that touches it, yet its value outlives every call.
type Counter struct {
	cell Persistent[int]
}

// Next increments the counter and returns the new value.
func (c *Counter) Next() int {
	v := c.cell.Get()
	*v++
	return *v
}

// Value reads the counter without touching its lifecycle.
func (c *Counter) Value() int {
	if c.cell.State() == Uninitialized {
		return 0
	}
	return *c.cell.Get()
}

func (c *Counter) State() Lifecycle { return c.cell.State() }

// ---------- 2. Closure counter ----------

// NewClosureCounter returns a counter whose state is captured by the closure.
// count lives as long as the returned func, so it escapes to the heap once.
func NewClosureCounter() func() int {
	count := 0
	return func() int {
		count++
		return count
	}
}
