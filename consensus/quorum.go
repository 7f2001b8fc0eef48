package consensus

import "math"

// tolerance absorbs float error in quorum*n, so 0.7 of 10 requires 7.
const tolerance = 1e-9

// Required is the number of the n documents which must agree on a value for
// it to be part of the base. quorum is clamped to [0, 1] and NaN counts as
// 1.
func Required(quorum float64, n int) int {
	switch {
	case math.IsNaN(quorum), quorum > 1:
		quorum = 1
	case quorum < 0:
		quorum = 0
	}
	res := int(math.Ceil(quorum*float64(n) - tolerance))
	if res < 0 {
		return 0
	}
	return res
}
