package storage

const (
	InitialData = 100
	MutatedData = 200
)

// Globals is the process-wide state of one program run.
// Whoever holds the pointer sees every mutation made through it.
type Globals struct {
	Data int
}

func NewGlobals() *Globals {
	return &Globals{Data: InitialData}
}

// Overwrite replaces Data unconditionally.
func Overwrite(g *Globals) {
	g.Data = MutatedData
}
