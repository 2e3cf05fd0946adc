package examples

import (
	"fmt"
	"io"

	"storageduration/pkg/storage"
)

// GlobalScope prints the process-wide value, mutates it once, and prints it
// again. The mutation made inside storage.Overwrite is visible here because
// both sides share the same *Globals.
func GlobalScope(w io.Writer) error {
	g := storage.NewGlobals()

	if _, err := fmt.Fprintf(w, "Before: g_data = %d\n", g.Data); err != nil {
		return fmt.Errorf("write before line: %w", err)
	}

	storage.Overwrite(g)

	if _, err := fmt.Fprintf(w, "After: g_data = %d\n", g.Data); err != nil {
		return fmt.Errorf("write after line: %w", err)
	}
	return nil
}
