package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPersistentInitialisesOnce(t *testing.T) {
	calls := 0
	p := NewPersistent(func() int {
		calls++
		return 7
	})
	require.Equal(t, Uninitialized, p.State())
	assert.Equal(t, 0, calls)

	*p.Get() += 1
	*p.Get() += 1

	assert.Equal(t, Initialized, p.State())
	assert.Equal(t, 1, calls)
	assert.Equal(t, 9, *p.Get())
}

func TestPersistentZeroValue(t *testing.T) {
	var p Persistent[string]
	assert.Equal(t, "", *p.Get())
	assert.Equal(t, Initialized, p.State())
}

func TestLifecycleString(t *testing.T) {
	assert.Equal(t, "uninitialized", Uninitialized.String())
	assert.Equal(t, "initialized", Initialized.String())
	assert.Equal(t, "unknown", Lifecycle(9).String())
}

func TestCounter(t *testing.T) {
	var c Counter
	assert.Equal(t, 0, c.Value())
	assert.Equal(t, Uninitialized, c.State(), "Value must not initialise")

	for k := 1; k <= 5; k++ {
		require.Equal(t, k, c.Next())
	}
	assert.Equal(t, 5, c.Value())
	assert.Equal(t, Initialized, c.State())

	var fresh Counter
	assert.Equal(t, 1, fresh.Next(), "a new counter restarts from zero")
}

func TestClosureCounter(t *testing.T) {
	next := NewClosureCounter()
	assert.Equal(t, 1, next())
	assert.Equal(t, 2, next())
	assert.Equal(t, 1, NewClosureCounter()(), "each closure owns its own count")
}

func TestGlobals(t *testing.T) {
	g := NewGlobals()
	require.Equal(t, InitialData, g.Data)

	Overwrite(g)
	assert.Equal(t, MutatedData, g.Data)

	Overwrite(g)
	assert.Equal(t, MutatedData, g.Data, "overwrite is unconditional")

	assert.Equal(t, InitialData, NewGlobals().Data)
}

func TestDemo(t *testing.T) {
	var static Counter
	for k := 1; k <= 3; k++ {
		assert.Equal(t, Sample{Normal: 1, Static: k}, Demo(&static))
	}
}

func TestNoPerCallAllocations(t *testing.T) {
	var c Counter
	assert.Zero(t, testing.AllocsPerRun(100, func() { c.Next() }))
	assert.Zero(t, testing.AllocsPerRun(100, func() { Demo(&c) }))
}
