package pi

import (
	"gopkg.in/inf.v0"
)

// Arctan evaluates arctan(x) = x - x^3/3 + x^5/5 - x^7/7 + ... at the given
// working scale.
//
// Each term division is rounded HALF_EVEN to `scale` fractional digits. The
// loop terminates when a term rounds to exactly zero at that scale: |x| < 1
// for both series inputs, so the terms shrink geometrically and eventually
// underflow. There is deliberately no iteration cap.
func Arctan(x *inf.Dec, scale inf.Scale) *inf.Dec {
	result := new(inf.Dec).Set(x)
	xSquared := new(inf.Dec).Mul(x, x)
	term := new(inf.Dec).Set(x)
	divisor := inf.NewDec(1, 0)
	termToAdd := new(inf.Dec)

	for {
		divisor.Add(divisor, two) // 3, 5, 7, ...
		term.Neg(term.Mul(term, xSquared))

		termToAdd.QuoRound(term, divisor, scale, inf.RoundHalfEven)
		if termToAdd.Sign() == 0 {
			return result
		}
		result.Add(result, termToAdd)
	}
}
