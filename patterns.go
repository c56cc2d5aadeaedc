package xbrz

// blendWrite is one sub-pixel write of a pattern: logical block position
// (i, j) receives the blend color with weight num/den. num == den writes
// the blend color unmixed.
type blendWrite struct {
	i, j     int
	num, den int
}

// pattern is an ordered list of writes into one output block, expressed for
// the bottom-right corner under rot0.
type pattern []blendWrite

// apply performs the writes of p for the given rotation.
func (p pattern) apply(out *outputMatrix, rot rotation, col uint32) {
	for _, w := range p {
		if w.num == w.den {
			out.set(rot, w.i, w.j, col)
		} else {
			out.blend(rot, w.i, w.j, w.num, w.den, col)
		}
	}
}

// scalePatterns are the five blend shapes for one scale factor.
type scalePatterns struct {
	shallow         pattern
	steep           pattern
	steepAndShallow pattern
	diagonal        pattern
	corner          pattern
}

// patternsFor returns the tables for factor, or nil if there are none.
func patternsFor(factor int) *scalePatterns {
	if factor < MinFactor || factor > MaxFactor {
		return nil
	}
	return &patternTables[factor-MinFactor]
}

// The fractions are tuned by hand; the corner weights approximate the
// area a quarter circle leaves uncovered in each sub-pixel (1 - pi/4 for
// the single 2x sub-pixel). They are exact constants, not derived values:
// output is compared pixel for pixel against reference images.
var patternTables = [MaxFactor - MinFactor + 1]scalePatterns{
	// 2x
	{
		shallow: pattern{
			{1, 0, 1, 4},
			{1, 1, 3, 4},
		},
		steep: pattern{
			{0, 1, 1, 4},
			{1, 1, 3, 4},
		},
		steepAndShallow: pattern{
			{1, 0, 1, 4},
			{0, 1, 1, 4},
			{1, 1, 5, 6}, // 7/8 in xBR
		},
		diagonal: pattern{
			{1, 1, 1, 2},
		},
		corner: pattern{
			{1, 1, 21, 100}, // exact: 0.2146018366
		},
	},

	// 3x
	{
		shallow: pattern{
			{2, 0, 1, 4},
			{1, 2, 1, 4},
			{2, 1, 3, 4},
			{2, 2, 1, 1},
		},
		steep: pattern{
			{0, 2, 1, 4},
			{2, 1, 1, 4},
			{1, 2, 3, 4},
			{2, 2, 1, 1},
		},
		steepAndShallow: pattern{
			{2, 0, 1, 4},
			{0, 2, 1, 4},
			{2, 1, 3, 4},
			{1, 2, 3, 4},
			{2, 2, 1, 1},
		},
		diagonal: pattern{
			{1, 2, 1, 8}, // overlaps other rotations on odd scales
			{2, 1, 1, 8},
			{2, 2, 7, 8},
		},
		corner: pattern{
			{2, 2, 45, 100}, // exact: 0.4545939598
		},
	},

	// 4x
	{
		shallow: pattern{
			{3, 0, 1, 4},
			{2, 2, 1, 4},
			{3, 1, 3, 4},
			{2, 3, 3, 4},
			{3, 2, 1, 1},
			{3, 3, 1, 1},
		},
		steep: pattern{
			{0, 3, 1, 4},
			{2, 2, 1, 4},
			{1, 3, 3, 4},
			{3, 2, 3, 4},
			{2, 3, 1, 1},
			{3, 3, 1, 1},
		},
		steepAndShallow: pattern{
			{3, 1, 3, 4},
			{1, 3, 3, 4},
			{3, 0, 1, 4},
			{0, 3, 1, 4},
			{2, 2, 1, 3}, // 1/4 in xBR
			{3, 3, 1, 1},
			{3, 2, 1, 1},
			{2, 3, 1, 1},
		},
		diagonal: pattern{
			{3, 2, 1, 2},
			{2, 3, 1, 2},
			{3, 3, 1, 1},
		},
		corner: pattern{
			{3, 3, 68, 100}, // exact: 0.6848532563
			{3, 2, 9, 100},  // 0.08677704501
			{2, 3, 9, 100},
		},
	},

	// 5x
	{
		shallow: pattern{
			{4, 0, 1, 4},
			{3, 2, 1, 4},
			{2, 4, 1, 4},
			{4, 1, 3, 4},
			{3, 3, 3, 4},
			{4, 2, 1, 1},
			{4, 3, 1, 1},
			{4, 4, 1, 1},
			{3, 4, 1, 1},
		},
		steep: pattern{
			{0, 4, 1, 4},
			{2, 3, 1, 4},
			{4, 2, 1, 4},
			{1, 4, 3, 4},
			{3, 3, 3, 4},
			{2, 4, 1, 1},
			{3, 4, 1, 1},
			{4, 4, 1, 1},
			{4, 3, 1, 1},
		},
		steepAndShallow: pattern{
			{0, 4, 1, 4},
			{2, 3, 1, 4},
			{1, 4, 3, 4},
			{4, 0, 1, 4},
			{3, 2, 1, 4},
			{4, 1, 3, 4},
			{3, 3, 2, 3},
			{2, 4, 1, 1},
			{3, 4, 1, 1},
			{4, 4, 1, 1},
			{4, 2, 1, 1},
			{4, 3, 1, 1},
		},
		diagonal: pattern{
			{4, 2, 1, 8}, // overlaps other rotations on odd scales
			{3, 3, 1, 8},
			{2, 4, 1, 8},
			{4, 3, 7, 8},
			{3, 4, 7, 8},
			{4, 4, 1, 1},
		},
		corner: pattern{
			{4, 4, 86, 100}, // exact: 0.8631434088
			{4, 3, 23, 100}, // 0.2306749731
			{3, 4, 23, 100},
		},
	},

	// 6x
	{
		shallow: pattern{
			{5, 0, 1, 4},
			{4, 2, 1, 4},
			{3, 4, 1, 4},
			{5, 1, 3, 4},
			{4, 3, 3, 4},
			{3, 5, 3, 4},
			{5, 2, 1, 1},
			{5, 3, 1, 1},
			{5, 4, 1, 1},
			{5, 5, 1, 1},
			{4, 4, 1, 1},
			{4, 5, 1, 1},
		},
		steep: pattern{
			{0, 5, 1, 4},
			{2, 4, 1, 4},
			{4, 3, 1, 4},
			{1, 5, 3, 4},
			{3, 4, 3, 4},
			{5, 3, 3, 4},
			{2, 5, 1, 1},
			{3, 5, 1, 1},
			{4, 5, 1, 1},
			{5, 5, 1, 1},
			{4, 4, 1, 1},
			{5, 4, 1, 1},
		},
		steepAndShallow: pattern{
			{0, 5, 1, 4},
			{2, 4, 1, 4},
			{1, 5, 3, 4},
			{3, 4, 3, 4},
			{5, 0, 1, 4},
			{4, 2, 1, 4},
			{5, 1, 3, 4},
			{4, 3, 3, 4},
			{2, 5, 1, 1},
			{3, 5, 1, 1},
			{4, 5, 1, 1},
			{5, 5, 1, 1},
			{4, 4, 1, 1},
			{5, 4, 1, 1},
			{5, 2, 1, 1},
			{5, 3, 1, 1},
		},
		diagonal: pattern{
			{5, 3, 1, 2},
			{4, 4, 1, 2},
			{3, 5, 1, 2},
			{4, 5, 1, 1},
			{5, 5, 1, 1},
			{5, 4, 1, 1},
		},
		corner: pattern{
			{5, 5, 97, 100}, // exact: 0.9711013910
			{4, 5, 42, 100}, // 0.4236372243
			{5, 4, 42, 100},
			{5, 3, 6, 100}, // 0.05652034508
			{3, 5, 6, 100},
		},
	},
}
