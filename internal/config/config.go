package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"storageduration/pkg/examples"
)

var ErrInvalid = errors.New("invalid plan")

// Step runs one example. A nil Calls means the example's default.
type Step struct {
	Example string `yaml:"example"`
	Calls   *int   `yaml:"calls,omitempty"`
}

// Plan is a sequence of example runs, each starting from fresh state.
type Plan struct {
	MemStats bool   `yaml:"memstats"`
	Steps    []Step `yaml:"steps"`
}

// Default runs every example once with its default call count.
func Default() Plan {
	var p Plan
	for _, ex := range examples.All() {
		p.Steps = append(p.Steps, Step{Example: ex.Name})
	}
	return p
}

// Load reads and validates a YAML plan file.
func Load(path string) (Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Plan{}, fmt.Errorf("failed to read plan: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a YAML plan.
func Parse(data []byte) (Plan, error) {
	var p Plan
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Plan{}, fmt.Errorf("failed to decode plan: %w", err)
	}
	if err := p.Validate(); err != nil {
		return Plan{}, err
	}
	return p, nil
}

// Validate checks example names and call counts.
func (p Plan) Validate() error {
	for i, s := range p.Steps {
		if _, err := examples.Lookup(s.Example); err != nil {
			return fmt.Errorf("%w: step %d: %w", ErrInvalid, i+1, err)
		}
		if s.Calls != nil && *s.Calls < 0 {
			return fmt.Errorf("%w: step %d: calls %d is negative", ErrInvalid, i+1, *s.Calls)
		}
	}
	return nil
}

// CallsFor resolves the call count of a step.
func (s Step) CallsFor(ex examples.Example) int {
	if s.Calls == nil {
		return ex.DefaultCalls
	}
	return *s.Calls
}
