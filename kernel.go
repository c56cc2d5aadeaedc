package xbrz

// kernel4x4 is the sliding source window around the current pixel f:
//
//	-----------------
//	| a | b | c | d |
//	|---|---|---|---|
//	| e | f | g | h |
//	|---|---|---|---|
//	| i | j | k | l |
//	|---|---|---|---|
//	| m | n | o | p |
//	-----------------
//
// Reads outside the image never touch src: with alpha on they yield
// transparent black, otherwise coordinates are clamped to the nearest
// edge pixel.
type kernel4x4 struct {
	a, b, c, d uint32
	e, f, g, h uint32
	i, j, k, l uint32
	m, n, o, p uint32

	src       []uint32
	width     int
	height    int
	withAlpha bool

	// Row start offsets of y-1..y+2; -1 marks a row outside the image
	// under the transparent policy.
	sM1, s0, sP1, sP2 int
}

func (k *kernel4x4) reset(src []uint32, width, height int, withAlpha bool) {
	*k = kernel4x4{src: src, width: width, height: height, withAlpha: withAlpha}
}

// positionY moves the window to row y with column x = -1 at f.
func (k *kernel4x4) positionY(y int) {
	if k.withAlpha {
		k.sM1 = k.rowTransparent(y - 1)
		k.s0 = k.rowTransparent(y)
		k.sP1 = k.rowTransparent(y + 1)
		k.sP2 = k.rowTransparent(y + 2)
	} else {
		k.sM1 = k.width * clamp(y-1, 0, k.height-1)
		k.s0 = k.width * clamp(y, 0, k.height-1)
		k.sP1 = k.width * clamp(y+1, 0, k.height-1)
		k.sP2 = k.width * clamp(y+2, 0, k.height-1)
	}

	// Fill columns x = -3..0 through the d, h, l, p column.
	k.readDHLP(-4)
	k.a, k.e, k.i, k.m = k.d, k.h, k.l, k.p

	k.readDHLP(-3)
	k.b, k.f, k.j, k.n = k.d, k.h, k.l, k.p

	k.readDHLP(-2)
	k.c, k.g, k.k, k.o = k.d, k.h, k.l, k.p

	k.readDHLP(-1)
}

func (k *kernel4x4) rowTransparent(y int) int {
	if 0 <= y && y < k.height {
		return k.width * y
	}
	return -1
}

// readDHLP reads the rightmost column for (x, y) at position f.
func (k *kernel4x4) readDHLP(x int) {
	x2 := x + 2

	if !k.withAlpha {
		x2 = clamp(x2, 0, k.width-1)
		k.d = k.src[k.sM1+x2]
		k.h = k.src[k.s0+x2]
		k.l = k.src[k.sP1+x2]
		k.p = k.src[k.sP2+x2]
		return
	}

	if x2 < 0 || x2 >= k.width {
		k.d, k.h, k.l, k.p = 0, 0, 0, 0
		return
	}
	k.d = k.readTransparent(k.sM1, x2)
	k.h = k.readTransparent(k.s0, x2)
	k.l = k.readTransparent(k.sP1, x2)
	k.p = k.readTransparent(k.sP2, x2)
}

func (k *kernel4x4) readTransparent(row, x int) uint32 {
	if row < 0 {
		return 0
	}
	return k.src[row+x]
}

// shift moves every column one step to the left. readDHLP must follow
// to load the new rightmost column.
func (k *kernel4x4) shift() {
	k.a, k.b, k.c = k.b, k.c, k.d
	k.e, k.f, k.g = k.f, k.g, k.h
	k.i, k.j, k.k = k.j, k.k, k.l
	k.m, k.n, k.o = k.n, k.o, k.p
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// rotation is a clockwise rotation in steps of 90 degrees.
type rotation uint8

const (
	rot0 rotation = iota
	rot90
	rot180
	rot270
)

// kernel3x3 is the inner 3x3 of a kernel4x4 seen under a rotation, with
// the current pixel at e:
//
//	-------------
//	| a | b | c |
//	|---|---|---|
//	| d | e | f |
//	|---|---|---|
//	| g | h | i |
//	-------------
type kernel3x3 struct {
	a, b, c uint32
	d, e, f uint32
	g, h, i uint32
}

// read3x3 returns the inner 3x3 of k rotated by rot. The same blend rule
// applied to each rotation covers all four corners of a pixel.
func read3x3(k *kernel4x4, rot rotation) kernel3x3 {
	switch rot {
	case rot90:
		return kernel3x3{
			a: k.i, b: k.e, c: k.a,
			d: k.j, e: k.f, f: k.b,
			g: k.k, h: k.g, i: k.c,
		}
	case rot180:
		return kernel3x3{
			a: k.k, b: k.j, c: k.i,
			d: k.g, e: k.f, f: k.e,
			g: k.c, h: k.b, i: k.a,
		}
	case rot270:
		return kernel3x3{
			a: k.c, b: k.g, c: k.k,
			d: k.b, e: k.f, f: k.j,
			g: k.a, h: k.e, i: k.i,
		}
	default:
		return kernel3x3{
			a: k.a, b: k.b, c: k.c,
			d: k.e, e: k.f, f: k.g,
			g: k.i, h: k.j, i: k.k,
		}
	}
}
