/*
PURPOSE:
  Core arithmetic for the benchmark: computes Pi to a requested number of
  decimal digits using a Machin-like formula over arbitrary-precision
  decimals. This is the "work unit" every benchmark worker repeats.

REQUIREMENTS:
  User-specified:
  - Pi = 16 * arctan(1/5) - 4 * arctan(1/239).
  - Result rounded HALF_UP to exactly `digits` fractional places.

  Implementation-discovered:
  - Intermediate terms need extra scale (guard digits) so series rounding
    drift cannot corrupt the requested precision.
  - inf.Dec (unscaled big.Int + scale) gives BigDecimal-equivalent
    semantics: exact add/sub/mul, division to an explicit scale with an
    explicit rounding mode.

ARCHITECTURE INTEGRATION:
  - Called by: internal/engine (benchmark workers), tests.
  - Depends on: gopkg.in/inf.v0 only.

ERROR HANDLING:
  - None. Inputs are pre-validated by internal/config; with positive digit
    counts and the fixed reciprocals 1/5 and 1/239 the arithmetic cannot
    fail.

IMPLEMENTATION RULES:
  - Pure functions, no shared state. Safe to call from many goroutines.
  - Do not replace the underflow termination with an iteration cap; the
    loop ends exactly when a term rounds to zero at the working scale.

USAGE:
  p := pi.Compute(5000)
  fmt.Println(p.String())

RELATED FILES:
  - internal/engine/runner.go - repeats Compute across workers.

MAINTENANCE:
  - guardDigits must stay fixed for run-to-run result parity.
*/

package pi

import (
	"gopkg.in/inf.v0"
)

// guardDigits is the extra working scale carried through intermediate
// calculations so that rounding across series terms cannot disturb the
// final requested digits.
const guardDigits = 10

var (
	one     = inf.NewDec(1, 0)
	two     = inf.NewDec(2, 0)
	four    = inf.NewDec(4, 0)
	sixteen = inf.NewDec(16, 0)

	recip5   = inf.NewDec(5, 0)
	recip239 = inf.NewDec(239, 0)
)

// Compute calculates Pi to the given number of decimal places using
// Pi = 16*arctan(1/5) - 4*arctan(1/239), rounding the final value HALF_UP.
func Compute(digits int) *inf.Dec {
	scale := inf.Scale(digits) + guardDigits

	t1 := Arctan(Reciprocal(recip5, scale), scale)
	t2 := Arctan(Reciprocal(recip239, scale), scale)

	p := new(inf.Dec).Mul(t1, sixteen)
	p.Sub(p, new(inf.Dec).Mul(t2, four))

	return p.Round(p, inf.Scale(digits), inf.RoundHalfUp)
}

// Reciprocal returns 1/n at the given working scale. Used to seed the
// arctangent series with 1/5 and 1/239.
func Reciprocal(n *inf.Dec, scale inf.Scale) *inf.Dec {
	return new(inf.Dec).QuoRound(one, n, scale, inf.RoundHalfEven)
}
