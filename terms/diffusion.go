// Package terms discretizes differential operators into face-wise flux
// contributions and assembles them into sparse linear systems. The diffusion
// operator div(Gamma grad phi) is discretized per face as
// Gamma_f*A_f*(phi_N - phi_P)/d_NP, with an explicit correction flux on
// non-orthogonal faces.
package terms

import (
	"fmt"

	"github.com/notargets/gofvm/bc"
	"github.com/notargets/gofvm/field"
	"github.com/notargets/gofvm/mesh"
	"github.com/notargets/gofvm/utils"
)

// System is one term's contribution to the linear system L*phi = B, sized to
// the mesh cell count. Contributions from co-assembled terms combine by
// matrix and vector addition.
type System struct {
	Phi *field.CellField
	L   utils.Sparse
	B   utils.Vector
}

// AssembleOpts carries the per-call configuration shared across co-assembled
// term types. Dt and TransientGeom are consumed by transient terms using this
// contract and are ignored by diffusion itself. DiffusionGeom, when present,
// supplies the precomputed per-face geometric coefficient Gamma_f*A_f/d and
// bypasses the resolver.
type AssembleOpts struct {
	Dt            float64
	TransientGeom *utils.Vector
	DiffusionGeom *utils.Vector
}

// Assembler turns a field and its boundary conditions into one term's
// (field, matrix, vector) triple. Implementations are stateless; assembly is
// a pure function of its inputs and never mutates the field.
type Assembler interface {
	Assemble(phi *field.CellField, bcs []bc.Condition, opts AssembleOpts) (System, error)
}

// DiffusionTerm is the shared assembly algorithm behind the implicit and
// explicit variants.
type DiffusionTerm struct {
	Gamma Diffusivity
}

// assemble builds the system for phi. The non-orthogonal correction flux is
// evaluated against gradVals, which normally aliases phi's values; the
// explicit variant assembles against the old snapshot while passing the
// current values here, since the correction is a gradient-interpolation
// detail rather than a time-level choice.
func (t DiffusionTerm) assemble(phi *field.CellField, gradVals utils.Vector,
	bcs []bc.Condition, opts AssembleOpts) (sys System, err error) {
	var (
		msh = phi.Mesh
		K   = msh.NumCells()
		nf  = msh.NumFaces()
	)
	if phi.Values.Len() != K {
		err = &ShapeMismatchError{Context: "field " + phi.Name, Got: phi.Values.Len(), Want: K}
		return
	}
	if t.Gamma == nil {
		err = &UnsupportedConfigurationError{Reason: "no diffusivity configured"}
		return
	}
	if err = t.Gamma.Validate(msh); err != nil {
		return
	}

	var coeffs []FaceCoeff
	if opts.DiffusionGeom != nil {
		if opts.DiffusionGeom.Len() != nf {
			err = &ShapeMismatchError{Context: "diffusion geometric coefficient",
				Got: opts.DiffusionGeom.Len(), Want: nf}
			return
		}
		coeffs = make([]FaceCoeff, nf)
		for i := range coeffs {
			coeffs[i] = FaceCoeff{Ortho: opts.DiffusionGeom.AtVec(i)}
		}
	} else {
		if coeffs, err = resolveFaceCoeffs(msh, t.Gamma, msh.IsOrthogonal()); err != nil {
			return
		}
	}

	var (
		L = utils.NewSparse(K, K)
		B = utils.NewVector(K)
	)
	// Interior faces: off-diagonals +g to both owning cells, diagonals the
	// negative sum of each cell's off-diagonal contributions.
	needCorrection := false
	for i := 0; i < nf; i++ {
		f := msh.Face(i)
		if f.IsBoundary() {
			continue
		}
		g := coeffs[i].Ortho
		L.AddAt(f.Owner, f.Neighbour, g)
		L.AddAt(f.Neighbour, f.Owner, g)
		L.AddAt(f.Owner, f.Owner, -g)
		L.AddAt(f.Neighbour, f.Neighbour, -g)
		if coeffs[i].Correction != (mesh.Vec{}) {
			needCorrection = true
		}
	}

	// Non-orthogonal correction: known flux from the current gradient
	// estimate, added to B only.
	if needCorrection {
		grads := cellGradients(msh, gradVals)
		for i := 0; i < nf; i++ {
			f := msh.Face(i)
			if f.IsBoundary() || coeffs[i].Correction == (mesh.Vec{}) {
				continue
			}
			gf := grads[f.Owner].Add(grads[f.Neighbour]).Scale(0.5)
			corr := gf.Dot(coeffs[i].Correction)
			B.AddAt(f.Owner, -corr)
			B.AddAt(f.Neighbour, corr)
		}
	}

	// Boundary conditions run after interior assembly, against the faces
	// they own, with the geometric coefficient of those faces.
	for _, cond := range bcs {
		var gc []float64
		if gc, err = boundaryCoeffs(msh, coeffs, cond.FaceIDs()); err != nil {
			return
		}
		if err = cond.Apply(msh, gc, L, B); err != nil {
			return
		}
	}

	sys = System{Phi: phi, L: L, B: B}
	return
}

func boundaryCoeffs(msh mesh.Geometry, coeffs []FaceCoeff, faceIDs []int) (gc []float64, err error) {
	gc = make([]float64, len(faceIDs))
	for i, fid := range faceIDs {
		if fid < 0 || fid >= msh.NumFaces() {
			err = &ShapeMismatchError{Context: "boundary condition face id", Got: fid, Want: msh.NumFaces()}
			return
		}
		if !msh.Face(fid).IsBoundary() {
			err = &ShapeMismatchError{Context: fmt.Sprintf("boundary condition on interior face %d", fid),
				Got: fid, Want: msh.NumFaces()}
			return
		}
		gc[i] = coeffs[fid].Ortho
	}
	return
}

// cellGradients estimates per-cell gradients by Green-Gauss reconstruction:
// grad(phi)_P = (1/V_P) * sum_f phi_f * A_f * n_out.
func cellGradients(msh mesh.Geometry, vals utils.Vector) (grads []mesh.Vec) {
	var (
		K = msh.NumCells()
	)
	grads = make([]mesh.Vec, K)
	for i := 0; i < msh.NumFaces(); i++ {
		var (
			f    = msh.Face(i)
			phiF float64
		)
		if f.IsBoundary() {
			phiF = vals.AtVec(f.Owner)
		} else {
			phiF = 0.5 * (vals.AtVec(f.Owner) + vals.AtVec(f.Neighbour))
		}
		df := f.Normal.Scale(phiF * f.Area)
		grads[f.Owner] = grads[f.Owner].Add(df)
		if !f.IsBoundary() {
			grads[f.Neighbour] = grads[f.Neighbour].Sub(df)
		}
	}
	for c := 0; c < K; c++ {
		grads[c] = grads[c].Scale(1 / msh.CellVolume(c))
	}
	return
}

// ImplicitDiffusion contributes the flux coefficients to the matrix,
// evaluated at the unknown time level.
type ImplicitDiffusion struct {
	DiffusionTerm
}

func NewImplicitDiffusion(gamma Diffusivity) *ImplicitDiffusion {
	return &ImplicitDiffusion{DiffusionTerm{Gamma: gamma}}
}

func (t *ImplicitDiffusion) Assemble(phi *field.CellField, bcs []bc.Condition,
	opts AssembleOpts) (System, error) {
	return t.assemble(phi, phi.Values, bcs, opts)
}

// ExplicitDiffusion evaluates the operator at the old time level and folds
// the result into the right hand side: the returned matrix is all zero and
// B becomes b - L*phi_old. A field without a snapshot assembles identically
// to the implicit variant's B fold.
type ExplicitDiffusion struct {
	DiffusionTerm
}

func NewExplicitDiffusion(gamma Diffusivity) *ExplicitDiffusion {
	return &ExplicitDiffusion{DiffusionTerm{Gamma: gamma}}
}

func (t *ExplicitDiffusion) Assemble(phi *field.CellField, bcs []bc.Condition,
	opts AssembleOpts) (sys System, err error) {
	old := phi.Values
	if phi.HasOld() {
		old = phi.Old()
	}
	oldField := &field.CellField{Name: phi.Name, Mesh: phi.Mesh, Values: old}
	var base System
	if base, err = t.assemble(oldField, phi.Values, bcs, opts); err != nil {
		return
	}
	var LOld utils.Vector
	if LOld, err = base.L.MulVec(old); err != nil {
		// sizing is invariant, so this is an assembly bug, not user error
		err = fmt.Errorf("internal: explicit fold of L*phi_old failed: %w", err)
		return
	}
	K := phi.Mesh.NumCells()
	sys = System{
		Phi: phi,
		L:   utils.NewSparse(K, K),
		B:   base.B.Copy().Sub(LOld),
	}
	return
}
