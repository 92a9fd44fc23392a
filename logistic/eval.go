package logistic

// PseudoRSquared approximates explained variance for a fitted model via the
// sum-of-squares ratio 1 - SSE/SST, where SSE is the sum of squared
// residuals and SST the sum of squared deviations from the mean of the
// actual values.
//
// The result lies in (-inf, 1]; values near 1 indicate a good fit. Returns 0
// when the actual values have no variance or the slices are empty.
func PseudoRSquared(actual, predicted []float64) float64 {
	if len(actual) == 0 || len(actual) != len(predicted) {
		return 0
	}

	mean := 0.0
	for _, v := range actual {
		mean += v
	}
	mean /= float64(len(actual))

	ssTot := 0.0 // Total sum of squares
	ssRes := 0.0 // Residual sum of squares
	for i := range actual {
		ssTot += (actual[i] - mean) * (actual[i] - mean)
		ssRes += (actual[i] - predicted[i]) * (actual[i] - predicted[i])
	}

	if ssTot == 0 {
		return 0
	}

	return 1.0 - (ssRes / ssTot)
}
