package field

import (
	"fmt"

	"github.com/notargets/gofvm/mesh"
	"github.com/notargets/gofvm/utils"
)

// CellField is a scalar quantity stored per mesh cell. The optional old
// snapshot freezes the values at the start of the current step; explicit
// schemes read it, the surrounding sweep updates it.
type CellField struct {
	Name   string
	Mesh   mesh.Geometry
	Values utils.Vector
	old    *utils.Vector
}

func NewCellField(name string, msh mesh.Geometry, dataO ...[]float64) (phi *CellField) {
	var (
		n = msh.NumCells()
	)
	phi = &CellField{
		Name:   name,
		Mesh:   msh,
		Values: utils.NewVector(n, dataO...),
	}
	return
}

// HasOld reports whether a snapshot has been captured. A field without time
// history behaves identically under explicit and implicit assembly.
func (phi *CellField) HasOld() bool { return phi.old != nil }

// Old returns the snapshot values. Callers check HasOld first; asking for a
// snapshot that was never captured is a programming error.
func (phi *CellField) Old() utils.Vector {
	if phi.old == nil {
		panic(fmt.Errorf("field %q has no old snapshot", phi.Name))
	}
	return *phi.old
}

// UpdateOld captures the current values as the old snapshot. Copying keeps
// the shape invariant by construction.
func (phi *CellField) UpdateOld() {
	old := phi.Values.Copy()
	phi.old = &old
}

// Copy returns a field sharing the mesh with duplicated values and no
// snapshot.
func (phi *CellField) Copy() (R *CellField) {
	R = &CellField{
		Name:   phi.Name,
		Mesh:   phi.Mesh,
		Values: phi.Values.Copy(),
	}
	return
}
