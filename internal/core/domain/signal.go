package domain

// Signal is the one event a scheduled unit emits: its artifact is ready, or it failed.
type Signal struct {
	Unit InternedString
	Err  error
	// Early is set when the unit announced readiness before its work finished.
	Early bool
}

// Failed reports whether the signal carries a failure.
func (s Signal) Failed() bool {
	return s.Err != nil
}
