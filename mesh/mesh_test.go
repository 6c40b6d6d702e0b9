package mesh

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUniform1D(t *testing.T) {
	msh := NewUniform1D(0, 3, 3)
	assert.Equal(t, 3, msh.NumCells())
	assert.Equal(t, 4, msh.NumFaces())
	assert.True(t, msh.IsOrthogonal())
	assert.True(t, near(msh.CellVolume(1), 1))

	// interior faces first, owner below neighbour
	f := msh.Face(0)
	assert.Equal(t, 0, f.Owner)
	assert.Equal(t, 1, f.Neighbour)
	assert.False(t, f.IsBoundary())
	assert.True(t, near(f.CellDist.Norm(), 1))
	assert.True(t, near(f.Normal.Dot(f.CellDist), 1))

	// boundary faces carry outward normals and half distances
	left := msh.Face(2)
	assert.True(t, left.IsBoundary())
	assert.Equal(t, 0, left.Owner)
	assert.True(t, near(left.Normal[0], -1))
	assert.True(t, near(left.CellDist.Norm(), 0.5))
	assert.True(t, near(left.Normal.Dot(left.CellDist), 0.5))
}

func TestUniform2D(t *testing.T) {
	msh := NewUniform2D(3, 2, 3, 2)
	assert.Equal(t, 6, msh.NumCells())
	assert.True(t, msh.IsOrthogonal())
	var interior, boundary int
	for i := 0; i < msh.NumFaces(); i++ {
		f := msh.Face(i)
		if f.IsBoundary() {
			boundary++
		} else {
			interior++
		}
		assert.True(t, near(f.Normal.Norm(), 1))
		// positive distance along the normal on every face
		assert.True(t, f.Normal.Dot(f.CellDist) > 0)
	}
	assert.Equal(t, 7, interior)
	assert.Equal(t, 10, boundary)
}

func TestSheared2D(t *testing.T) {
	s := 0.5
	msh := NewSheared2D(2, 2, 2, 2, s)
	assert.False(t, msh.IsOrthogonal())
	assert.True(t, near(msh.CellVolume(0), 1)) // shear preserves volume
	for i := 0; i < msh.NumFaces(); i++ {
		f := msh.Face(i)
		assert.True(t, near(f.Normal.Norm(), 1))
		assert.True(t, f.Normal.Dot(f.CellDist) > 0)
		if !f.IsBoundary() {
			// normals are skewed off the cell-to-cell direction
			dHat := f.CellDist.Scale(1 / f.CellDist.Norm())
			assert.True(t, f.Normal.Dot(dHat) < 1-1.e-10)
		}
	}
}

func near(a, b float64) (l bool) {
	if math.Abs(a-b) < 1.e-08*(math.Abs(a)+1) {
		l = true
	}
	return
}
