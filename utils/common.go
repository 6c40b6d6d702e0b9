package utils

const (
	// NODETOL is the default geometric coincidence tolerance.
	NODETOL = 1.e-12
)
