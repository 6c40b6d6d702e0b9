package utils

import (
	"fmt"

	"github.com/james-bowman/sparse"
	"gonum.org/v1/gonum/mat"
)

// Sparse is the coefficient matrix of an assembled system. It wraps a DOK
// store for accumulation during assembly and converts to CSR for products.
type Sparse struct {
	M        *sparse.DOK
	readOnly bool
	name     string
}

// NewSparse returns an all-zero nr x nc matrix.
func NewSparse(nr, nc int) (R Sparse) {
	R = Sparse{
		sparse.NewDOK(nr, nc),
		false,
		"unnamed - hint: pass a variable name to SetReadOnly()",
	}
	return
}

// Dims, At and T minimally satisfy the mat.Matrix interface.
func (m Sparse) Dims() (r, c int)    { return m.M.Dims() }
func (m Sparse) At(i, j int) float64 { return m.M.At(i, j) }
func (m Sparse) T() mat.Matrix       { return m.M.T() }

func (m *Sparse) SetReadOnly(name ...string) Sparse {
	if len(name) != 0 {
		m.name = name[0]
	}
	m.readOnly = true
	return *m
}

func (m Sparse) Set(i, j int, val float64) {
	m.checkWritable()
	m.M.Set(i, j, val)
}

// AddAt accumulates val into entry (i, j). Faces sharing a cell both write
// that cell's diagonal through this path.
func (m Sparse) AddAt(i, j int, val float64) {
	m.checkWritable()
	m.M.Set(i, j, m.M.At(i, j)+val)
}

func (m Sparse) checkWritable() {
	if m.readOnly {
		err := fmt.Errorf("attempt to write to a read only matrix named: \"%v\"", m.name)
		panic(err)
	}
}

// Copy returns a writable deep copy.
func (m Sparse) Copy() (R Sparse) {
	var (
		nr, nc = m.Dims()
	)
	R = NewSparse(nr, nc)
	m.M.DoNonZero(func(i, j int, v float64) {
		R.M.Set(i, j, v)
	})
	return
}

// Plus returns the elementwise sum m + a. Systems assembled by separate
// terms combine through this operation.
func (m Sparse) Plus(a Sparse) (R Sparse, err error) {
	var (
		nr, nc   = m.Dims()
		nra, nca = a.Dims()
	)
	if nr != nra || nc != nca {
		err = fmt.Errorf("dimension mismatch in matrix addition: %dx%d vs %dx%d", nr, nc, nra, nca)
		return
	}
	R = m.Copy()
	a.M.DoNonZero(func(i, j int, v float64) {
		R.AddAt(i, j, v)
	})
	return
}

// MulVec computes m * v through a CSR conversion.
func (m Sparse) MulVec(v Vector) (R Vector, err error) {
	var (
		nr, nc = m.Dims()
	)
	if nc != v.Len() {
		err = fmt.Errorf("dimension mismatch in matrix-vector product: %dx%d times %d", nr, nc, v.Len())
		return
	}
	R = NewVector(nr)
	var (
		csr  = m.M.ToCSR()
		data = R.DataP()
	)
	csr.DoNonZero(func(i, j int, val float64) {
		data[i] += val * v.AtVec(j)
	})
	return
}

// RowSum returns the sum of row i, the flux-conservation check quantity.
func (m Sparse) RowSum(i int) (sum float64) {
	var (
		_, nc = m.Dims()
	)
	for j := 0; j < nc; j++ {
		sum += m.At(i, j)
	}
	return
}

// ToDense converts to a gonum dense matrix for direct solves.
func (m Sparse) ToDense() (R *mat.Dense) {
	var (
		nr, nc = m.Dims()
	)
	R = mat.NewDense(nr, nc, nil)
	m.M.DoNonZero(func(i, j int, v float64) {
		R.Set(i, j, v)
	})
	return
}
