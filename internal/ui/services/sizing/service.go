package sizing

import "math"

// SnapWidth rounds a measured width up to whole increments.
// Anything up to 1.5 increments snaps to exactly 1.5 increments.
func SnapWidth(measured, increment float64) float64 {
	if increment <= 0 {
		return measured
	}

	increments := measured / increment
	if increments <= minIncrements {
		increments = minIncrements
	} else {
		increments = math.Ceil(increments)
	}

	width := increments * increment
	if floor := minIncrements * increment; width < floor {
		width = floor
	}
	return width
}

// SnapCells applies SnapWidth to a width measured in terminal cells.
// unitsPerCell converts cells to layout units; the result is rounded up to whole cells.
func SnapCells(cells int, increment, unitsPerCell float64) int {
	if unitsPerCell <= 0 {
		unitsPerCell = 1
	}
	snapped := SnapWidth(float64(cells)*unitsPerCell, increment)
	return int(math.Ceil(snapped / unitsPerCell))
}
