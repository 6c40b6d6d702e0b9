package terms

import "fmt"

// ShapeMismatchError reports a field, coefficient or boundary condition
// whose indexing disagrees with the mesh.
type ShapeMismatchError struct {
	Context string
	Got     int
	Want    int
}

func (e *ShapeMismatchError) Error() string {
	return fmt.Sprintf("shape mismatch in %s: got %d, want %d", e.Context, e.Got, e.Want)
}

// DegenerateGeometryError reports a face whose inter-cell distance cannot
// support a flux coefficient.
type DegenerateGeometryError struct {
	Face     int
	Distance float64
}

func (e *DegenerateGeometryError) Error() string {
	return fmt.Sprintf("degenerate geometry at face %d: inter-cell distance %g", e.Face, e.Distance)
}

// UnsupportedConfigurationError reports a term configuration the assembly
// cannot discretize, e.g. a diffusivity of the wrong rank.
type UnsupportedConfigurationError struct {
	Reason string
}

func (e *UnsupportedConfigurationError) Error() string {
	return "unsupported configuration: " + e.Reason
}
