package xbrz

// blendType is the blend strength of one corner.
type blendType uint8

const (
	blendNone     blendType = 0
	blendNormal   blendType = 1 // a normal indication to blend
	blendDominant blendType = 2 // a strong indication to blend
)

// blendResult holds the corner classification of the 2x2 block at the
// bottom-right of the current pixel f:
//
//	---------
//	| F | G |
//	|---+---|
//	| J | K |
//	---------
type blendResult struct {
	f, g, j, k blendType
}

// blendCode packs the four corner strengths of one source pixel:
// top-left in bits 0-1, top-right in 2-3, bottom-right in 4-5 and
// bottom-left in 6-7, i.e. clockwise from the top-left.
type blendCode uint8

func (b blendCode) topR() blendType    { return blendType(b >> 2 & 0x3) }
func (b blendCode) bottomR() blendType { return blendType(b >> 4 & 0x3) }
func (b blendCode) bottomL() blendType { return blendType(b >> 6 & 0x3) }

func (b blendCode) addTopR(t blendType) blendCode    { return b | blendCode(t)<<2 }
func (b blendCode) addBottomR(t blendType) blendCode { return b | blendCode(t)<<4 }
func (b blendCode) addBottomL(t blendType) blendCode { return b | blendCode(t)<<6 }

// rotate turns the corner fields by rot so that the corner that ends up at
// the bottom-right under rot is read by bottomR.
func (b blendCode) rotate(rot rotation) blendCode {
	s := 2 * uint(rot)
	return b<<s | b>>(8-s)
}

// preProcessCorners classifies the corners of the block {f, g, j, k}.
//
// The diagonal whose endpoints are closer to their surroundings wins; when
// it wins by DominantDirectionThreshold the corners are marked dominant.
func (s *Scaler) preProcessCorners(k *kernel4x4) blendResult {
	var res blendResult

	if (k.f == k.g && k.j == k.k) || (k.f == k.j && k.g == k.k) {
		return res
	}

	dist := s.dist
	bias := s.cfg.CenterDirectionBias

	jg := dist.Distance(k.i, k.f) + dist.Distance(k.f, k.c) +
		dist.Distance(k.n, k.k) + dist.Distance(k.k, k.h) +
		bias*dist.Distance(k.j, k.g)
	fk := dist.Distance(k.e, k.j) + dist.Distance(k.j, k.o) +
		dist.Distance(k.b, k.g) + dist.Distance(k.g, k.l) +
		bias*dist.Distance(k.f, k.k)

	switch {
	case jg < fk:
		strength := blendNormal
		if s.cfg.DominantDirectionThreshold*jg < fk {
			strength = blendDominant
		}
		if k.f != k.g && k.f != k.j {
			res.f = strength
		}
		if k.k != k.j && k.k != k.g {
			res.k = strength
		}

	case fk < jg:
		strength := blendNormal
		if s.cfg.DominantDirectionThreshold*fk < jg {
			strength = blendDominant
		}
		if k.j != k.f && k.j != k.k {
			res.j = strength
		}
		if k.g != k.f && k.g != k.k {
			res.g = strength
		}
	}
	return res
}
