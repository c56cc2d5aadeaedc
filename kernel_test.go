package xbrz

import "testing"

// 2x2 test image:
//
//	1 2
//	3 4
var kernelSrc = []uint32{1, 2, 3, 4}

func loadKernel(withAlpha bool, x, y int) *kernel4x4 {
	var k kernel4x4
	k.reset(kernelSrc, 2, 2, withAlpha)
	k.positionY(y)
	for cx := range x + 1 {
		k.shift()
		k.readDHLP(cx)
	}
	return &k
}

func kernelCells(k *kernel4x4) [16]uint32 {
	return [16]uint32{
		k.a, k.b, k.c, k.d,
		k.e, k.f, k.g, k.h,
		k.i, k.j, k.k, k.l,
		k.m, k.n, k.o, k.p,
	}
}

func TestKernelDuplicatePolicy(t *testing.T) {
	tests := []struct {
		name string
		x, y int
		want [16]uint32
	}{
		{
			name: "top-left",
			x:    0, y: 0,
			want: [16]uint32{
				1, 1, 2, 2,
				1, 1, 2, 2,
				3, 3, 4, 4,
				3, 3, 4, 4,
			},
		},
		{
			name: "bottom-right",
			x:    1, y: 1,
			want: [16]uint32{
				1, 2, 2, 2,
				3, 4, 4, 4,
				3, 4, 4, 4,
				3, 4, 4, 4,
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := kernelCells(loadKernel(false, tt.x, tt.y)); got != tt.want {
				t.Errorf("cells = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestKernelTransparentPolicy(t *testing.T) {
	tests := []struct {
		name string
		x, y int
		want [16]uint32
	}{
		{
			name: "top-left",
			x:    0, y: 0,
			want: [16]uint32{
				0, 0, 0, 0,
				0, 1, 2, 0,
				0, 3, 4, 0,
				0, 0, 0, 0,
			},
		},
		{
			name: "bottom-right",
			x:    1, y: 1,
			want: [16]uint32{
				1, 2, 0, 0,
				3, 4, 0, 0,
				0, 0, 0, 0,
				0, 0, 0, 0,
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := kernelCells(loadKernel(true, tt.x, tt.y)); got != tt.want {
				t.Errorf("cells = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestKernelPositionYPrimesLeftColumns(t *testing.T) {
	// Before the first shift, f sits at x = -1.
	var k kernel4x4
	k.reset(kernelSrc, 2, 2, false)
	k.positionY(0)
	if k.f != 1 || k.g != 1 || k.h != 2 {
		t.Errorf("duplicate f, g, h = %d, %d, %d; want 1, 1, 2", k.f, k.g, k.h)
	}

	k.reset(kernelSrc, 2, 2, true)
	k.positionY(0)
	if k.f != 0 || k.g != 1 || k.h != 2 {
		t.Errorf("transparent f, g, h = %d, %d, %d; want 0, 1, 2", k.f, k.g, k.h)
	}
}

func TestKernelFarOutsideRows(t *testing.T) {
	var k kernel4x4
	k.reset(kernelSrc, 2, 2, true)
	k.positionY(-3)
	k.shift()
	k.readDHLP(0)
	if got := kernelCells(&k); got != ([16]uint32{}) {
		t.Errorf("cells above the image = %v, want all transparent", got)
	}
}

func TestRead3x3(t *testing.T) {
	k := &kernel4x4{
		a: 'a', b: 'b', c: 'c', d: 'd',
		e: 'e', f: 'f', g: 'g', h: 'h',
		i: 'i', j: 'j', k: 'k', l: 'l',
		m: 'm', n: 'n', o: 'o', p: 'p',
	}
	tests := []struct {
		rot  rotation
		want string
	}{
		{rot0, "abcefgijk"},
		{rot90, "ieajfbkgc"},
		{rot180, "kjigfecba"},
		{rot270, "cgkbfjaei"},
	}
	for _, tt := range tests {
		v := read3x3(k, tt.rot)
		got := string([]rune{
			rune(v.a), rune(v.b), rune(v.c),
			rune(v.d), rune(v.e), rune(v.f),
			rune(v.g), rune(v.h), rune(v.i),
		})
		if got != tt.want {
			t.Errorf("read3x3(rot %d) = %q, want %q", tt.rot, got, tt.want)
		}
	}
}
