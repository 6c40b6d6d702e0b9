// Package bc provides the boundary condition collaborators consumed by term
// assembly. Each condition owns a set of domain-boundary faces and injects
// its contribution into the in-progress (matrix, vector) pair after interior
// faces have been assembled.
package bc

import (
	"fmt"

	"github.com/notargets/gofvm/mesh"
	"github.com/notargets/gofvm/utils"
)

// Condition contributes to an assembled system at its boundary faces.
// geomCoeff holds the geometric diffusion coefficient Gamma_f*A_f/d for each
// face in FaceIDs order, precomputed by the calling term.
type Condition interface {
	FaceIDs() []int
	Apply(msh mesh.Geometry, geomCoeff []float64, L utils.Sparse, b utils.Vector) error
}

// FixedValue holds phi at Value on its faces (Dirichlet). It contributes to
// both matrix and vector: the face flux g*(Value - phi_owner) splits into a
// -g diagonal entry and a -g*Value entry in b.
type FixedValue struct {
	Faces []int
	Value float64
}

func (c *FixedValue) FaceIDs() []int { return c.Faces }

func (c *FixedValue) Apply(msh mesh.Geometry, geomCoeff []float64, L utils.Sparse, b utils.Vector) (err error) {
	if len(geomCoeff) != len(c.Faces) {
		err = fmt.Errorf("fixed value condition: %d coefficients for %d faces", len(geomCoeff), len(c.Faces))
		return
	}
	for i, fid := range c.Faces {
		var (
			f = msh.Face(fid)
			g = geomCoeff[i]
		)
		L.AddAt(f.Owner, f.Owner, -g)
		b.AddAt(f.Owner, -g*c.Value)
	}
	return
}

// FixedFlux prescribes the inward flux density Flux on its faces (Neumann).
// Vector contribution only.
type FixedFlux struct {
	Faces []int
	Flux  float64
}

func (c *FixedFlux) FaceIDs() []int { return c.Faces }

func (c *FixedFlux) Apply(msh mesh.Geometry, geomCoeff []float64, L utils.Sparse, b utils.Vector) (err error) {
	if len(geomCoeff) != len(c.Faces) {
		err = fmt.Errorf("fixed flux condition: %d coefficients for %d faces", len(geomCoeff), len(c.Faces))
		return
	}
	for _, fid := range c.Faces {
		f := msh.Face(fid)
		b.AddAt(f.Owner, -c.Flux*f.Area)
	}
	return
}
