package math

import (
	"math/big"

	"github.com/db47h/bigreal/context"
)

var piConst = context.NewConstant("pi", pi)

// Pi sets z to π rounded to c's precision and returns z.
//
// The value is cached in c and only recomputed when c's precision grows
// beyond the precision it was computed at.
func Pi(c *context.Context, z *big.Float) *big.Float {
	return c.Const(result(c, z), piConst)
}

// pi computes π with the Gauss-Legendre algorithm to z.Prec() bits of
// precision and returns z.
func pi(_ *context.Context, z *big.Float) *big.Float {
	prec := z.Prec()

	var (
		// Increase precision. With only a few additional bits there are
		// specific bit counts for which the last bit is off by one, so we just
		// go ahead and add a whole word of precision.
		pp = prec + wordBits
		a  = newFloat(pp).SetInt64(1)
		u  = newFloat(pp).Sqrt(two)
		b  = newFloat(pp).Quo(one, u)
		t  = newFloat(pp).Set(quarter)
		p  = newFloat(pp).SetInt64(1)
		w  = newFloat(pp)
	)

	for {
		u.Set(a)                 // a_n
		a.Mul(w.Add(a, b), half) // a_n+1
		b.Sqrt(w.Mul(u, b))      // b_n+1

		// t = t - p×(a_n - a_n+1)^2
		w.Sub(u, a)
		w.Mul(w, w)
		t.Sub(t, w.Mul(w, p))

		if converged(w.Sub(a, b), a, pp) {
			break
		}

		p.SetMantExp(p, 1)
	}
	w.Add(a, b)
	a.Mul(w, w)
	t.Mul(t, four)
	return z.Quo(a, t)
}
