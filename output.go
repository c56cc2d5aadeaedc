package xbrz

import "github.com/gogpu/xbrz/internal/color"

// maxRotationN bounds the block size: coordinates are packed into nibbles.
const maxRotationN = 15

// rotationTable maps block coordinates written for rot0 to the physical
// coordinates inside an n x n output block for each rotation. Entries pack
// I into the high nibble and J into the low nibble.
type rotationTable struct {
	n      int
	lookup []uint8
}

// newRotationTable precomputes all 4*n*n rotated coordinates.
// It panics if n is outside [1, maxRotationN].
func newRotationTable(n int) *rotationTable {
	if n <= 0 || n > maxRotationN {
		panic("xbrz: rotation table size out of range")
	}

	t := &rotationTable{n: n, lookup: make([]uint8, 4*n*n)}
	for rot := range 4 {
		offset := rot * n * n
		for i := range n {
			for j := range n {
				t.lookup[offset+i*n+j] = t.rotate(rot, packIJ(i, j))
			}
		}
	}
	return t
}

// rotate applies rot quarter turns clockwise by composing the single
// 90 degree rule (I, J) -> (n-1-J, I).
func (t *rotationTable) rotate(rot int, ij uint8) uint8 {
	if rot == 0 {
		return ij
	}
	i, j := unpackIJ(t.rotate(rot-1, ij))
	return packIJ(t.n-1-j, i)
}

// at returns the physical (I, J) for logical (i, j) under rot.
func (t *rotationTable) at(rot rotation, i, j int) (int, int) {
	return unpackIJ(t.lookup[int(rot)*t.n*t.n+i*t.n+j])
}

func packIJ(i, j int) uint8 {
	//nolint:gosec // G115: i and j are below 16
	return uint8(i<<4 | j)
}

func unpackIJ(ij uint8) (int, int) {
	return int(ij >> 4), int(ij & 0xF)
}

// outputMatrix writes n x n output blocks, one per source pixel, into the
// destination buffer. offset is the top-left of the current block.
type outputMatrix struct {
	n        int
	out      []uint32
	outWidth int
	offset   int
	rot      *rotationTable
	gradient color.Gradient
}

func (m *outputMatrix) reset(out []uint32, outWidth int, rot *rotationTable, gradient color.Gradient) {
	*m = outputMatrix{
		n:        rot.n,
		out:      out,
		outWidth: outWidth,
		rot:      rot,
		gradient: gradient,
	}
}

// positionY moves to the first block of source row y.
func (m *outputMatrix) positionY(y int) {
	m.offset = m.n * y * m.outWidth
}

// incrementX moves to the next block in the row.
func (m *outputMatrix) incrementX() {
	m.offset += m.n
}

func (m *outputMatrix) position(rot rotation, i, j int) int {
	pi, pj := m.rot.at(rot, i, j)
	return m.offset + pi*m.outWidth + pj
}

// set stores col at logical (i, j) of the current block.
func (m *outputMatrix) set(rot rotation, i, j int, col uint32) {
	m.out[m.position(rot, i, j)] = col
}

// blend mixes col with weight num/den over the current value at logical
// (i, j) of the current block.
func (m *outputMatrix) blend(rot rotation, i, j, num, den int, col uint32) {
	pos := m.position(rot, i, j)
	m.out[pos] = m.gradient(num, den, m.out[pos], col)
}

// fillBlock writes col across the whole current block.
func (m *outputMatrix) fillBlock(col uint32) {
	for y, trg := 0, m.offset; y < m.n; y, trg = y+1, trg+m.outWidth {
		row := m.out[trg : trg+m.n]
		for x := range row {
			row[x] = col
		}
	}
}
