package examples

import (
	"errors"
	"fmt"
	"io"

	"storageduration/pkg/storage"
)

var ErrNegativeCalls = errors.New("calls must not be negative")

// NormalVsStatic calls storage.Demo calls times with one persistent counter.
// Normal stays at 1 while Static climbs 1, 2, 3, ...
func NormalVsStatic(w io.Writer, calls int) error {
	if calls < 0 {
		return fmt.Errorf("normal-vs-static: %w (got %d)", ErrNegativeCalls, calls)
	}

	var static storage.Counter
	for i := 0; i < calls; i++ {
		s := storage.Demo(&static)
		if _, err := fmt.Fprintf(w, "Normal = %d, Static = %d\n", s.Normal, s.Static); err != nil {
			return fmt.Errorf("write call %d: %w", i+1, err)
		}
	}
	return nil
}

// StaticLocal prints a persistent counter after each of calls increments.
// Zero calls print nothing.
func StaticLocal(w io.Writer, calls int) error {
	if calls < 0 {
		return fmt.Errorf("static-local: %w (got %d)", ErrNegativeCalls, calls)
	}

	var count storage.Counter
	for i := 0; i < calls; i++ {
		if err := counter(w, &count); err != nil {
			return fmt.Errorf("write call %d: %w", i+1, err)
		}
	}
	return nil
}

// counter is the function that owns count; callers only hand it the handle.
func counter(w io.Writer, count *storage.Counter) error {
	_, err := fmt.Fprintf(w, "Count = %d\n", count.Next())
	return err
}
