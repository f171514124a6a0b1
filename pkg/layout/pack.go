package layout

import "math"

// PackStripes returns the maximum count n of stripes of width stripe,
// separated by n-1 gaps of width gap, that fit into the linear span total:
//
//	n*stripe + (n-1)*gap <= total
//
// The count comes from the closed form floor((total+gap)/(stripe+gap)): add
// one phantom gap for the missing trailing gap after the last stripe, then
// divide by the per-unit period.
//
// A non-positive total or stripe packs nothing. A negative gap is an invalid
// configuration and also packs nothing, rather than being treated as zero.
func PackStripes(total, stripe, gap float64) int {
	if stripe <= 0 || total <= 0 || gap < 0 {
		return 0
	}
	n := int(math.Floor((total + gap) / (stripe + gap)))
	if n < 0 {
		return 0
	}
	return n
}
