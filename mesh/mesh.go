package mesh

import "math"

// Exterior marks the neighbour side of a domain-boundary face.
const Exterior = -1

// Vec is a 2D geometric vector. 1D meshes live on the x axis.
type Vec [2]float64

func (v Vec) Dot(w Vec) float64 { return v[0]*w[0] + v[1]*w[1] }
func (v Vec) Norm() float64     { return math.Sqrt(v.Dot(v)) }
func (v Vec) Scale(a float64) Vec {
	return Vec{a * v[0], a * v[1]}
}
func (v Vec) Add(w Vec) Vec { return Vec{v[0] + w[0], v[1] + w[1]} }
func (v Vec) Sub(w Vec) Vec { return Vec{v[0] - w[0], v[1] - w[1]} }

// Face is the shared boundary between two cells, or between a cell and the
// domain exterior. Normal is unit length and points from Owner to Neighbour.
// CellDist runs from the owner centroid to the neighbour centroid; for
// boundary faces it runs from the owner centroid to the face centroid.
type Face struct {
	ID         int
	Owner      int
	Neighbour  int
	Area       float64
	Normal     Vec
	CellDist   Vec
	Orthogonal bool
}

// IsBoundary reports whether the face lies on the domain boundary.
func (f Face) IsBoundary() bool { return f.Neighbour == Exterior }

// Geometry is the mesh query capability consumed by term assembly. One
// implementation exists per mesh topology, selected at construction.
type Geometry interface {
	NumCells() int
	NumFaces() int
	Face(i int) Face
	CellVolume(i int) float64
	// IsOrthogonal classifies the whole mesh: true when every face normal is
	// parallel to its cell-to-cell vector, so no correction flux is needed.
	IsOrthogonal() bool
}
