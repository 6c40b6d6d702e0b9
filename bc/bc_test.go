package bc

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/notargets/gofvm/mesh"
	"github.com/notargets/gofvm/utils"
)

func TestFixedValue(t *testing.T) {
	msh := mesh.NewUniform1D(0, 3, 3)
	L := utils.NewSparse(3, 3)
	b := utils.NewVector(3)

	// left boundary face is face 2 on the 3-cell chain, owner cell 0
	cond := &FixedValue{Faces: []int{2}, Value: 10}
	err := cond.Apply(msh, []float64{2}, L, b)
	assert.NoError(t, err)
	assert.InDelta(t, -2, L.At(0, 0), 1.e-14)
	assert.InDelta(t, -20, b.AtVec(0), 1.e-14)

	// coefficient count must match the face count
	err = cond.Apply(msh, []float64{1, 2}, L, b)
	assert.Error(t, err)
}

func TestFixedFlux(t *testing.T) {
	msh := mesh.NewUniform1D(0, 3, 3)
	L := utils.NewSparse(3, 3)
	b := utils.NewVector(3)

	cond := &FixedFlux{Faces: []int{3}, Flux: 5}
	err := cond.Apply(msh, []float64{1}, L, b)
	assert.NoError(t, err)
	// vector only
	assert.InDelta(t, 0, L.At(2, 2), 1.e-14)
	assert.InDelta(t, -5, b.AtVec(2), 1.e-14)
}
