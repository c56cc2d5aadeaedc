// Package xbrz scales pixel art by an integer factor with the xBRZ
// algorithm.
//
// # Overview
//
// xBRZ ("scale by rules") enlarges each source pixel into a factor x factor
// block and then anti-aliases the block corners that lie on an edge. Edges
// are found by comparing color distances along the two diagonals of every
// 2x2 source block; depending on how steep the edge runs, one of a few
// fixed blend shapes is painted into the corner.
//
// # Quick Start
//
//	import "github.com/gogpu/xbrz"
//
//	// src holds width*height packed ARGB pixels, row-major.
//	s, err := xbrz.New(4, true)
//	if err != nil {
//		return err
//	}
//	dst, err := s.Scale(src, width, height)
//	// dst holds (width*4)*(height*4) pixels.
//
// # Pixels
//
// Pixels are uint32 values laid out as (a<<24)|(r<<16)|(g<<8)|b with
// straight alpha. The xbrzimage package converts to and from image.Image.
//
// # Alpha
//
// A Scaler created with alpha enabled treats pixels outside the image as
// transparent, weighs color distances by alpha and blends colors by alpha.
// Without alpha, the edge pixels are replicated outward and the output is
// fully opaque.
//
// # Concurrency
//
// A Scaler is immutable and safe for concurrent use. ScaleRange writes the
// output of a range of source rows, so disjoint ranges of one image can be
// scaled in parallel; ScaleConcurrent does this on a worker pool.
//
// # Logging
//
// The package is silent by default. SetLogger installs a slog.Logger that
// receives debug records.
package xbrz
