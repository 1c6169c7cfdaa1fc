package math

import (
	"math/big"
	"math/bits"

	"github.com/db47h/bigreal/context"
)

// wordBits is the number of guard bits added to intermediate results.
const wordBits = bits.UintSize

// constants
var (
	one     = big.NewFloat(1)
	two     = big.NewFloat(2)
	four    = big.NewFloat(4)
	half    = big.NewFloat(0.5)
	quarter = big.NewFloat(0.25)
)

// newFloat returns a new big.Float with value 0 and precision prec.
func newFloat(prec uint) *big.Float {
	return new(big.Float).SetPrec(prec)
}

// result sets z's rounding mode and precision to c's and returns z.
func result(c *context.Context, z *big.Float) *big.Float {
	return z.SetMode(c.Mode()).SetPrec(c.Prec())
}

// converged reports whether the difference d between two successive terms of a
// sequence converging to a is negligible at precision prec, i.e. within a
// couple of ulps of a.
func converged(d, a *big.Float, prec uint) bool {
	return d.Sign() == 0 || d.MantExp(nil) <= a.MantExp(nil)-int(prec)+2
}
