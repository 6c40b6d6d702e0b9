package terms

import (
	"github.com/notargets/gofvm/mesh"
	"github.com/notargets/gofvm/utils"
)

// Diffusivity supplies the face-centered diffusion coefficient Gamma.
type Diffusivity interface {
	// FaceValue returns Gamma at face f. For cell-centered configurations
	// this interpolates the values of the two adjacent cells.
	FaceValue(msh mesh.Geometry, f mesh.Face) float64
	// Validate checks the configured shape against the mesh before assembly.
	Validate(msh mesh.Geometry) error
}

// ConstantGamma is a spatially uniform scalar diffusivity.
type ConstantGamma float64

func (g ConstantGamma) FaceValue(msh mesh.Geometry, f mesh.Face) float64 { return float64(g) }
func (g ConstantGamma) Validate(msh mesh.Geometry) error                 { return nil }

// CellGamma is a per-cell scalar diffusivity, interpolated to faces by the
// harmonic mean so that a vanishing diffusivity on either side shuts the
// face flux off.
type CellGamma struct {
	Values utils.Vector
}

func (g CellGamma) FaceValue(msh mesh.Geometry, f mesh.Face) float64 {
	gO := g.Values.AtVec(f.Owner)
	if f.IsBoundary() {
		return gO
	}
	gN := g.Values.AtVec(f.Neighbour)
	if gO+gN == 0 {
		return 0
	}
	return 2 * gO * gN / (gO + gN)
}

func (g CellGamma) Validate(msh mesh.Geometry) error {
	if g.Values.Len() != msh.NumCells() {
		return &UnsupportedConfigurationError{
			Reason: "cell diffusivity length does not match the mesh cell count",
		}
	}
	return nil
}

// TensorGamma is a per-cell symmetric rank-2 diffusivity. The face value is
// the normal projection n.Gamma.n of the arithmetic face mean.
type TensorGamma struct {
	XX, YY, XY utils.Vector
}

func (g TensorGamma) FaceValue(msh mesh.Geometry, f mesh.Face) float64 {
	var (
		xx = g.XX.AtVec(f.Owner)
		yy = g.YY.AtVec(f.Owner)
		xy = g.XY.AtVec(f.Owner)
	)
	if !f.IsBoundary() {
		xx = 0.5 * (xx + g.XX.AtVec(f.Neighbour))
		yy = 0.5 * (yy + g.YY.AtVec(f.Neighbour))
		xy = 0.5 * (xy + g.XY.AtVec(f.Neighbour))
	}
	n := f.Normal
	return n[0]*n[0]*xx + 2*n[0]*n[1]*xy + n[1]*n[1]*yy
}

func (g TensorGamma) Validate(msh mesh.Geometry) error {
	K := msh.NumCells()
	if g.XX.Len() != K || g.YY.Len() != K || g.XY.Len() != K {
		return &UnsupportedConfigurationError{
			Reason: "tensor diffusivity component length does not match the mesh cell count",
		}
	}
	return nil
}

// FaceCoeff is the resolved geometric diffusion coefficient of one face.
// Ortho is the matrix-side coefficient Gamma_f*A_f*(n.dHat)/|d|; Correction
// is Gamma_f*A_f*k with k = n - (n.dHat)*dHat, dotted with the face gradient
// to form the explicit non-orthogonal correction flux.
type FaceCoeff struct {
	Ortho      float64
	Correction mesh.Vec
}

// resolveFaceCoeffs computes one coefficient per face. When treatOrthogonal
// is set the decomposition is skipped and the full A/|d| weighting goes into
// the matrix coefficient with no correction.
func resolveFaceCoeffs(msh mesh.Geometry, gamma Diffusivity, treatOrthogonal bool) (coeffs []FaceCoeff, err error) {
	var (
		nf = msh.NumFaces()
	)
	coeffs = make([]FaceCoeff, nf)
	for i := 0; i < nf; i++ {
		var (
			f    = msh.Face(i)
			dist = f.CellDist.Norm()
		)
		if dist <= 0 {
			err = &DegenerateGeometryError{Face: f.ID, Distance: dist}
			return
		}
		gam := gamma.FaceValue(msh, f)
		if treatOrthogonal || f.Orthogonal {
			coeffs[i] = FaceCoeff{Ortho: gam * f.Area / dist}
			continue
		}
		var (
			dHat = f.CellDist.Scale(1 / dist)
			cos  = f.Normal.Dot(dHat)
		)
		if cos <= 0 {
			// inverted or collapsed face, same failure class as zero distance
			err = &DegenerateGeometryError{Face: f.ID, Distance: dist * cos}
			return
		}
		coeffs[i] = FaceCoeff{
			Ortho:      gam * f.Area * cos / dist,
			Correction: f.Normal.Sub(dHat.Scale(cos)).Scale(gam * f.Area),
		}
	}
	return
}
