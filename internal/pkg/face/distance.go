package face

import "math"

// Distance returns the Euclidean distance between two embeddings.
// Lower means more similar. Vectors of different lengths can never match;
// the distance is +Inf so any threshold comparison fails.
func Distance(a, b []float64) float64 {
	if len(a) != len(b) {
		return math.Inf(1)
	}
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return math.Sqrt(sum)
}
