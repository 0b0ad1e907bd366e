package nscp

import "math"

// StandardBarSizes are the commercially available deformed bar diameters (mm),
// smallest first. The optimizer relies on this ordering for tie-breaking.
var StandardBarSizes = []int{10, 12, 16, 20, 25, 28, 32, 36, 40}

// StirrupBarSizes are the diameters normally used for closed stirrups.
var StirrupBarSizes = []int{10, 12, 16}

// BarArea returns the cross-sectional area of a single bar in mm².
func BarArea(diameter float64) float64 {
	return math.Pi * diameter * diameter / 4
}

// BarsInRange returns the standard diameters within [min, max] inclusive.
// An empty result means no standard bar falls in the requested range.
func BarsInRange(min, max int) []int {
	var bars []int
	for _, dia := range StandardBarSizes {
		if dia >= min && dia <= max {
			bars = append(bars, dia)
		}
	}
	return bars
}
