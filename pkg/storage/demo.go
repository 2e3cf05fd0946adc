package storage

// Sample is what one Demo call observed.
type Sample struct {
	Normal int
	Static int
}

// Demo bumps a transient local and the caller's persistent counter.
// normal is rebuilt on every call so it is always 1; static keeps counting.
func Demo(static *Counter) Sample {
	normal := 0
	normal++
	return Sample{Normal: normal, Static: static.Next()}
}
