package grid

// NumVars is the number of conservative-variable components stored per
// node: (rho, rho*u, rho*v, rho*w, rho*E).
const NumVars = 5

// Field holds two time-level conservative-variable buffers and swaps
// between them by exchanging slice headers, never by copying bytes.
// The two buffers are distinct owned arrays of equal shape; they are
// never aliased.
type Field struct {
	a, b []float64 // each len == NumVars*space.NMax
	cur  *[]float64
	next *[]float64
}

// NewField allocates both time-level buffers for a grid with nMax
// nodes.
func NewField(nMax int) *Field {
	f := &Field{
		a: make([]float64, NumVars*nMax),
		b: make([]float64, NumVars*nMax),
	}
	f.cur = &f.a
	f.next = &f.b
	return f
}

// Cur returns the buffer holding the current time level (read from).
func (f *Field) Cur() []float64 { return *f.cur }

// Next returns the buffer to be written with the next time level.
func (f *Field) Next() []float64 { return *f.next }

// Swap exchanges the current/next buffer pointers in O(1), without
// copying any bytes.
func (f *Field) Swap() {
	f.cur, f.next = f.next, f.cur
}

// U returns the 5-component conservative state at flat node offset n
// in the current buffer.
func (f *Field) U(n int) []float64 {
	b := f.Cur()
	return b[n*NumVars : n*NumVars+NumVars]
}

// UNext returns the 5-component conservative state at flat node offset
// n in the next buffer, for writing.
func (f *Field) UNext(n int) []float64 {
	b := f.Next()
	return b[n*NumVars : n*NumVars+NumVars]
}
