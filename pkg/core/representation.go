package core

import "fmt"

// Representation is an ordered sequence of vector encodings of fixed
// length. Values are stored in row-major order: element j of the encoding
// at position i lives at data[i*dim+j].
//
// Representation is not safe for concurrent use. Synchronization must be
// handled by the caller if needed.
type Representation struct {
	data []float64
	n    int // sequence length
	dim  int // width of each encoding
}

// NewRepresentation creates a zero-valued representation holding n
// encodings of width dim. Panics if either dimension is non-positive;
// malformed shapes are programmer bugs, not runtime conditions.
func NewRepresentation(n, dim int) *Representation {
	if n <= 0 {
		panic(fmt.Sprintf("core: sequence length must be positive, got %d", n))
	}
	if dim <= 0 {
		panic(fmt.Sprintf("core: encoding width must be positive, got %d", dim))
	}
	return &Representation{
		data: make([]float64, n*dim),
		n:    n,
		dim:  dim,
	}
}

// Len returns the number of encodings in the sequence.
func (r *Representation) Len() int { return r.n }

// Dim returns the width of each encoding.
func (r *Representation) Dim() int { return r.dim }

// At returns element j of the encoding at position i.
func (r *Representation) At(i, j int) float64 {
	r.check(i, j)
	return r.data[i*r.dim+j]
}

// Set stores v as element j of the encoding at position i.
func (r *Representation) Set(i, j int, v float64) {
	r.check(i, j)
	r.data[i*r.dim+j] = v
}

func (r *Representation) check(i, j int) {
	if i < 0 || i >= r.n || j < 0 || j >= r.dim {
		panic(fmt.Sprintf("core: index (%d, %d) out of range for %dx%d representation", i, j, r.n, r.dim))
	}
}
