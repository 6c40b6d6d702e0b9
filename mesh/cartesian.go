package mesh

import "math"

// Mesh is a concrete Geometry backed by explicit face and volume tables. The
// structured constructors below fill it; NewMesh accepts arbitrary tables so
// callers can wrap externally built topologies.
type Mesh struct {
	cells      int
	vols       []float64
	faces      []Face
	orthogonal bool
}

func NewMesh(cells int, vols []float64, faces []Face, orthogonal bool) (msh *Mesh) {
	msh = &Mesh{
		cells:      cells,
		vols:       vols,
		faces:      faces,
		orthogonal: orthogonal,
	}
	return
}

func (msh *Mesh) NumCells() int            { return msh.cells }
func (msh *Mesh) NumFaces() int            { return len(msh.faces) }
func (msh *Mesh) Face(i int) Face          { return msh.faces[i] }
func (msh *Mesh) CellVolume(i int) float64 { return msh.vols[i] }
func (msh *Mesh) IsOrthogonal() bool       { return msh.orthogonal }

// NewUniform1D builds a 1D mesh of K equal cells spanning [xmin, xmax].
// Interior faces come first, then the two boundary faces with outward
// normals. Face areas are unity.
func NewUniform1D(xmin, xmax float64, K int) (msh *Mesh) {
	var (
		dx    = (xmax - xmin) / float64(K)
		vols  = make([]float64, K)
		faces = make([]Face, 0, K+1)
	)
	for i := 0; i < K; i++ {
		vols[i] = dx
	}
	for i := 0; i < K-1; i++ {
		faces = append(faces, Face{
			ID:         i,
			Owner:      i,
			Neighbour:  i + 1,
			Area:       1,
			Normal:     Vec{1, 0},
			CellDist:   Vec{dx, 0},
			Orthogonal: true,
		})
	}
	faces = append(faces, Face{
		ID:         K - 1,
		Owner:      0,
		Neighbour:  Exterior,
		Area:       1,
		Normal:     Vec{-1, 0},
		CellDist:   Vec{-dx / 2, 0},
		Orthogonal: true,
	})
	faces = append(faces, Face{
		ID:         K,
		Owner:      K - 1,
		Neighbour:  Exterior,
		Area:       1,
		Normal:     Vec{1, 0},
		CellDist:   Vec{dx / 2, 0},
		Orthogonal: true,
	})
	msh = NewMesh(K, vols, faces, true)
	return
}

// NewUniform2D builds an nx x ny Cartesian mesh over [0,lx] x [0,ly].
// Cell (i, j) has index i + nx*j.
func NewUniform2D(nx, ny int, lx, ly float64) (msh *Mesh) {
	return newSheared2D(nx, ny, lx, ly, 0)
}

// NewSheared2D builds a parallelogram-cell mesh: the Cartesian grid sheared
// in x by shear*y. Cell volumes are unaffected, but face normals are no
// longer parallel to the cell-to-cell vectors, exercising the
// non-orthogonal correction path.
func NewSheared2D(nx, ny int, lx, ly, shear float64) (msh *Mesh) {
	return newSheared2D(nx, ny, lx, ly, shear)
}

func newSheared2D(nx, ny int, lx, ly, shear float64) (msh *Mesh) {
	var (
		dx     = lx / float64(nx)
		dy     = ly / float64(ny)
		K      = nx * ny
		vols   = make([]float64, K)
		faces  = make([]Face, 0, 2*K+nx+ny)
		ortho  = shear == 0
		vnorm  = Vec{1, -shear}.Scale(1 / math.Sqrt(1+shear*shear))
		vlen   = dy * math.Sqrt(1+shear*shear)
		cellID = func(i, j int) int { return i + nx*j }
	)
	for i := range vols {
		vols[i] = dx * dy
	}
	add := func(owner, neighbour int, area float64, normal, dist Vec) {
		faces = append(faces, Face{
			ID:         len(faces),
			Owner:      owner,
			Neighbour:  neighbour,
			Area:       area,
			Normal:     normal,
			CellDist:   dist,
			Orthogonal: ortho,
		})
	}
	for j := 0; j < ny; j++ {
		for i := 0; i < nx; i++ {
			// east face: interior or right boundary
			if i < nx-1 {
				add(cellID(i, j), cellID(i+1, j), vlen, vnorm, Vec{dx, 0})
			} else {
				add(cellID(i, j), Exterior, vlen, vnorm, Vec{dx / 2, 0})
			}
			// north face: interior or top boundary
			if j < ny-1 {
				add(cellID(i, j), cellID(i, j+1), dx, Vec{0, 1}, Vec{shear * dy, dy})
			} else {
				add(cellID(i, j), Exterior, dx, Vec{0, 1}, Vec{shear * dy / 2, dy / 2})
			}
		}
	}
	// west and south boundaries
	for j := 0; j < ny; j++ {
		add(cellID(0, j), Exterior, vlen, vnorm.Scale(-1), Vec{-dx / 2, 0})
	}
	for i := 0; i < nx; i++ {
		add(cellID(i, 0), Exterior, dx, Vec{0, -1}, Vec{-shear * dy / 2, -dy / 2})
	}
	msh = NewMesh(K, vols, faces, ortho)
	return
}
