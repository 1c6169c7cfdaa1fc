package math

import (
	"math/big"

	"github.com/db47h/bigreal/context"
)

// Sqrt sets z to the rounded square root of x, and returns it.
//
// Rounding is performed according to c's precision and rounding mode.
//
// If x < 0, the big.ErrNaN panic is trapped by c and reported by c.Err. The
// value of z is undefined in that case.
//
// This function is a proxy for c.Sqrt(z, x) that allows z and x to alias.
func Sqrt(c *context.Context, z, x *big.Float) *big.Float {
	if z == x {
		x = newFloat(0).Set(x)
	}
	return c.Sqrt(z, x)
}
