package transition

// EaseOutCubic decelerates toward t=1.
func EaseOutCubic(t float64) float64 {
	u := 1 - t
	return 1 - u*u*u
}

// EaseInCubic accelerates away from t=0.
func EaseInCubic(t float64) float64 {
	return t * t * t
}
