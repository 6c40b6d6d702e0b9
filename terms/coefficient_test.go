package terms

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/notargets/gofvm/mesh"
	"github.com/notargets/gofvm/utils"
)

func TestResolveFaceCoeffs(t *testing.T) {
	{ // unit chain: coefficient is Gamma*A/d = 1 on interior, 2 on boundary
		msh := mesh.NewUniform1D(0, 3, 3)
		coeffs, err := resolveFaceCoeffs(msh, ConstantGamma(1), msh.IsOrthogonal())
		assert.NoError(t, err)
		assert.True(t, near(coeffs[0].Ortho, 1))
		assert.True(t, near(coeffs[1].Ortho, 1))
		assert.True(t, near(coeffs[2].Ortho, 2))
		assert.True(t, near(coeffs[3].Ortho, 2))
		for _, c := range coeffs {
			assert.Equal(t, mesh.Vec{}, c.Correction)
		}
	}
	{ // zero diffusivity shuts faces off without dividing by zero
		msh := mesh.NewUniform1D(0, 3, 3)
		coeffs, err := resolveFaceCoeffs(msh, ConstantGamma(0), msh.IsOrthogonal())
		assert.NoError(t, err)
		for _, c := range coeffs {
			assert.True(t, near(c.Ortho, 0))
			assert.False(t, math.IsNaN(c.Ortho) || math.IsInf(c.Ortho, 0))
		}
	}
	{ // degenerate inter-cell distance fails fast and names the face
		faces := []mesh.Face{
			{ID: 0, Owner: 0, Neighbour: 1, Area: 1, Normal: mesh.Vec{1, 0}, CellDist: mesh.Vec{}},
		}
		msh := mesh.NewMesh(2, []float64{1, 1}, faces, true)
		_, err := resolveFaceCoeffs(msh, ConstantGamma(1), true)
		var degenerate *DegenerateGeometryError
		assert.ErrorAs(t, err, &degenerate)
		assert.Equal(t, 0, degenerate.Face)
	}
	{ // non-orthogonal faces split into an ortho part and a correction
		s := 0.5
		msh := mesh.NewSheared2D(2, 1, 2, 1, s)
		coeffs, err := resolveFaceCoeffs(msh, ConstantGamma(1), false)
		assert.NoError(t, err)
		f := msh.Face(0) // interior east face
		assert.False(t, f.IsBoundary())
		cos := 1 / math.Sqrt(1+s*s)
		// A = sqrt(1+s^2), d = 1: ortho part A*cos/d = 1
		assert.True(t, near(coeffs[0].Ortho, 1))
		// correction is tangential: orthogonal to the cell-to-cell direction
		dHat := f.CellDist.Scale(1 / f.CellDist.Norm())
		assert.True(t, near(coeffs[0].Correction.Dot(dHat), 0))
		assert.True(t, near(coeffs[0].Correction.Norm(), f.Area*math.Sqrt(1-cos*cos)))
	}
}

func TestCellGamma(t *testing.T) {
	msh := mesh.NewUniform1D(0, 3, 3)
	g := CellGamma{Values: utils.NewVector(3, []float64{0, 2, 4})}
	assert.NoError(t, g.Validate(msh))

	// harmonic mean: a zero on either side kills the face value
	assert.True(t, near(g.FaceValue(msh, msh.Face(0)), 0))
	assert.True(t, near(g.FaceValue(msh, msh.Face(1)), 2*2*4/(2.+4.)))
	// boundary faces take the owner value
	assert.True(t, near(g.FaceValue(msh, msh.Face(3)), 4))

	bad := CellGamma{Values: utils.NewVector(2)}
	var unsupported *UnsupportedConfigurationError
	assert.ErrorAs(t, bad.Validate(msh), &unsupported)
}

func TestTensorGamma(t *testing.T) {
	msh := mesh.NewUniform1D(0, 2, 2)
	g := TensorGamma{
		XX: utils.NewVector(2, []float64{2, 4}),
		YY: utils.NewVector(2, []float64{7, 7}),
		XY: utils.NewVector(2),
	}
	assert.NoError(t, g.Validate(msh))
	// x-normal face projects out the XX component only
	assert.True(t, near(g.FaceValue(msh, msh.Face(0)), 3))

	bad := TensorGamma{XX: utils.NewVector(2), YY: utils.NewVector(2), XY: utils.NewVector(1)}
	assert.Error(t, bad.Validate(msh))
}

func near(a, b float64) (l bool) {
	if math.Abs(a-b) < 1.e-08*(math.Abs(a)+1) {
		l = true
	}
	return
}
