package examples

import (
	"errors"
	"fmt"
	"io"
)

var ErrUnknownExample = errors.New("unknown example")

// Example describes one runnable program.
type Example struct {
	Name         string
	Summary      string
	DefaultCalls int
	Run          func(w io.Writer, calls int) error
}

var registry = []Example{
	{
		Name:         "global-scope",
		Summary:      "process-wide variable mutated by another function",
		DefaultCalls: 1,
		// the mutator always runs exactly once
		Run: func(w io.Writer, _ int) error { return GlobalScope(w) },
	},
	{
		Name:         "normal-vs-static",
		Summary:      "transient local next to a persistent local",
		DefaultCalls: 3,
		Run:          NormalVsStatic,
	},
	{
		Name:         "static-local",
		Summary:      "persistent local counter",
		DefaultCalls: 3,
		Run:          StaticLocal,
	},
}

// All returns the examples in their fixed order.
func All() []Example {
	out := make([]Example, len(registry))
	copy(out, registry)
	return out
}

// Lookup finds an example by name.
func Lookup(name string) (Example, error) {
	for _, ex := range registry {
		if ex.Name == name {
			return ex, nil
		}
	}
	return Example{}, fmt.Errorf("%w: %q", ErrUnknownExample, name)
}
