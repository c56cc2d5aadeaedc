package xbrz

import (
	"fmt"
	"runtime"

	"github.com/gogpu/xbrz/internal/parallel"
)

// stripesPerWorker oversplits the image so that workers finishing flat
// regions early take over rows from busier ones.
const stripesPerWorker = 4

// ScaleConcurrent scales src like Scale but splits the source rows into
// stripes that run on up to workers goroutines. A non-positive workers uses
// GOMAXPROCS. The result is identical to Scale.
//
// Each stripe re-classifies the row above its first row, so stripes are
// never thinner than parallel.MinStripeRows rows; small images run on the
// calling goroutine.
func (s *Scaler) ScaleConcurrent(src []uint32, width, height, workers int) ([]uint32, error) {
	if width <= 0 || height <= 0 {
		return nil, nil
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	n, err := OutputLen(width, height, s.factor)
	if err != nil {
		return nil, err
	}
	if len(src) < width*height {
		return nil, fmt.Errorf("%w: have %d pixels, want %d", ErrSourceTooSmall, len(src), width*height)
	}
	dst := make([]uint32, n)

	stripes := parallel.Stripes(height, workers*stripesPerWorker)
	if len(stripes) == 1 || workers == 1 {
		s.scaleRange(src, dst, width, height, 0, height)
		return dst, nil
	}

	Logger().Debug("xbrz: concurrent scale",
		"width", width, "height", height, "factor", s.factor, "workers", workers, "stripes", len(stripes))

	pool := parallel.NewWorkerPool(min(workers, len(stripes)))
	defer pool.Close()

	work := make([]func(), len(stripes))
	for i, st := range stripes {
		work[i] = func() {
			s.scaleRange(src, dst, width, height, st.YFirst, st.YLast)
		}
	}
	pool.ExecuteAll(work)

	return dst, nil
}
