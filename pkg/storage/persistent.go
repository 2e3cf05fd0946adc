package storage

// Lifecycle is the state of a persistent or process-wide cell.
// A cell moves from Uninitialized to Initialized exactly once.
type Lifecycle uint8

const (
	Uninitialized Lifecycle = iota
	Initialized
)

func (l Lifecycle) String() string {
	switch l {
	case Uninitialized:
		return "uninitialized"
	case Initialized:
		return "initialized"
	default:
		return "unknown"
	}
}

// Persistent holds a value that is initialised on first use and then
// survives for as long as its owner keeps the cell around.
// The zero value is ready to use and initialises to the zero T.
type Persistent[T any] struct {
	init  func() T
	value T
	state Lifecycle
}

// NewPersistent creates a cell whose first Get runs init.
func NewPersistent[T any](init func() T) *Persistent[T] {
	return &Persistent[T]{init: init}
}

// Get returns a pointer to the stored value, initialising it on first use.
func (p *Persistent[T]) Get() *T {
	if p.state == Uninitialized {
		if p.init != nil {
			p.value = p.init()
		}
		p.state = Initialized // transition happens once
	}
	return &p.value
}

// State reports whether the cell has been initialised yet.
func (p *Persistent[T]) State() Lifecycle { return p.state }
