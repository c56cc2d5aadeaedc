package parallel

// MinStripeRows is the smallest stripe Stripes will produce (except when the
// whole image is shorter). Every stripe re-reads the source row above its
// first row, so very thin stripes waste a growing share of the work.
const MinStripeRows = 8

// Stripe is a half-open range of source rows [YFirst, YLast).
type Stripe struct {
	YFirst int
	YLast  int
}

// Rows returns the number of rows in the stripe.
func (s Stripe) Rows() int {
	return s.YLast - s.YFirst
}

// Stripes splits height rows into at most n contiguous stripes of near-equal
// size that cover [0, height) exactly once, in top-to-bottom order.
// Returns nil for a non-positive height.
func Stripes(height, n int) []Stripe {
	if height <= 0 {
		return nil
	}
	n = max(n, 1)
	if maxStripes := max(height/MinStripeRows, 1); n > maxStripes {
		n = maxStripes
	}

	stripes := make([]Stripe, 0, n)
	base, extra := height/n, height%n
	y := 0
	for i := range n {
		rows := base
		if i < extra {
			rows++
		}
		stripes = append(stripes, Stripe{YFirst: y, YLast: y + rows})
		y += rows
	}
	return stripes
}
