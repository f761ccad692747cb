package fractal

// EscapeDepth iterates z <- z^2 + c from z = 0 and returns the index of the
// first iteration whose |z|^2 exceeds 4, or maxDepth if the orbit stays bounded.
func EscapeDepth(cr, ci float64, maxDepth int) int {
	var zr, zi float64
	for i := 0; i < maxDepth; i++ {
		zr, zi = zr*zr-zi*zi+cr, 2*zr*zi+ci
		if zr*zr+zi*zi > 4 {
			return i
		}
	}
	return maxDepth
}
