package models

// Config carries the per-run options. It is passed by value into the core;
// there is no process-wide option state.
type Config struct {
	// Binary is the path of the binary file to inspect.
	Binary string
	// Arch selects the slice of a universal binary. Ignored for flat files.
	Arch string

	Verbose bool
}
