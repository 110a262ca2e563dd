package pyscroll

// floorDiv divides a by b rounding toward negative infinity. Go's integer
// division truncates toward zero, which breaks tile math left of the map
// origin.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// floorMod returns the remainder of floorDiv; the result is in [0, b) for
// positive b regardless of the sign of a.
func floorMod(a, b int) int {
	m := a % b
	if m != 0 && ((a < 0) != (b < 0)) {
		m += b
	}
	return m
}

// ceilDiv divides a by b rounding up. Used to size the view rect in tiles.
func ceilDiv(a, b int) int {
	return floorDiv(a+b-1, b)
}
