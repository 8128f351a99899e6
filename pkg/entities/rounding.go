package entities

import "math"

// floorEpsilon absorbs binary representation error so that decimal factors
// such as 0.2 or 0.6 floor to the integer a person computes by hand.
const floorEpsilon = 1e-9

// FloorInt floors x to an int
func FloorInt(x float64) int {
	return int(math.Floor(x + floorEpsilon))
}

// ScaleFloor returns floor(v * factor). Every multiplicative step in the
// engine goes through here so rounding stays floor everywhere.
func ScaleFloor(v int, factor float64) int {
	return FloorInt(float64(v) * factor)
}
