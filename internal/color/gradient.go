package color

// Gradient blends front over back with weight m/n, 0 < m < n.
type Gradient func(m, n int, back, front uint32) uint32

// GradientRGB blends front with opacity m/n over an opaque background.
// The result is always fully opaque; alpha of both inputs is ignored.
func GradientRGB(m, n int, back, front uint32) uint32 {
	return PackRGB(
		mix(m, n, Red(front), Red(back)),
		mix(m, n, Green(front), Green(back)),
		mix(m, n, Blue(front), Blue(back)),
	)
}

func mix(m, n, front, back int) int {
	return (front*m + back*(n-m)) / n
}

// GradientARGB finds the intermediate color between two colors that carry
// alpha. Alpha acts as a weight for the color channels, so a transparent
// pixel contributes no color. This is not alpha compositing: the result alpha
// is the weighted mean of both alphas.
//
// A zero combined weight yields Transparent.
func GradientARGB(m, n int, back, front uint32) uint32 {
	weightFront := Alpha(front) * m
	weightBack := Alpha(back) * (n - m)
	weightSum := weightFront + weightBack
	if weightSum == 0 {
		return Transparent
	}

	return Pack(
		weightSum/n,
		weigh(weightFront, weightBack, weightSum, Red(front), Red(back)),
		weigh(weightFront, weightBack, weightSum, Green(front), Green(back)),
		weigh(weightFront, weightBack, weightSum, Blue(front), Blue(back)),
	)
}

func weigh(weightFront, weightBack, weightSum, front, back int) int {
	return (front*weightFront + back*weightBack) / weightSum
}
