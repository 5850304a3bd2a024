package math

import (
	"math/big"
)

type Rounding uint8

const (
	RoundingDown Rounding = iota
	RoundingUp
)

// MulDiv computes x*y/denominator with the requested rounding. A zero
// denominator yields zero, matching the callers that treat an empty side of
// the pool as contributing nothing.
func MulDiv(x, y, denominator *big.Int, rounding Rounding) *big.Int {
	if denominator.Sign() == 0 {
		return big.NewInt(0)
	}
	mul := new(big.Int).Mul(x, y)
	div, mod := new(big.Int).QuoRem(mul, denominator, new(big.Int))
	if rounding == RoundingUp && mod.Sign() != 0 {
		return div.Add(div, big.NewInt(1))
	}
	return div
}

// Sqrt returns floor(sqrt(value)) by Newton iteration. Exact for perfect
// squares and defined for zero.
func Sqrt(value *big.Int) *big.Int {
	if value == nil || value.Sign() == 0 {
		return big.NewInt(0)
	}
	if value.Cmp(big.NewInt(1)) == 0 {
		return big.NewInt(1)
	}

	x := new(big.Int).Set(value)
	y := new(big.Int).Add(value, big.NewInt(1))
	y.Div(y, big.NewInt(2))

	for y.Cmp(x) < 0 {
		x.Set(y)
		y = new(big.Int).Add(x, new(big.Int).Div(value, x))
		y.Div(y, big.NewInt(2))
	}

	return x
}
