package math

import (
	"math/big"

	"github.com/db47h/bigreal/context"
	"go.uber.org/zap"
)

// Asin sets z to the arcsine of x rounded to c's precision and returns z.
//
// Asin(±1) = ±π/2. If |x| > 1, ErrDomain is reported to c and z is set to 0.
// x is rounded to c's precision first.
func Asin(c *context.Context, z, x *big.Float) *big.Float {
	u := c.Round(c.New(), x)
	w := c.New()
	switch c.Abs(w, u).Cmp(one) {
	case 0:
		return halfPi(c, z, u.Sign() < 0)
	case 1:
		c.Report(ErrDomain, zap.String("op", "asin"), zap.Stringer("value", x))
		return result(c, z).SetInt64(0)
	}

	// asin(x) = atan(x/sqrt(1-x²))
	c.Mul(w, u, u)
	c.Sub(w, one, w)
	c.Sqrt(w, w)
	c.Quo(w, u, w)
	return Atan(c, z, w)
}

// Atan2 sets z to the arctangent of y/x, using the signs of the two to
// determine the quadrant of the result, and returns z. The result is rounded to
// c's precision and lies in [-π, π].
//
// Special cases are:
//	Atan2(0, 0) = 0
//	Atan2(y, 0) = ±π/2 with the sign of y
//	Atan2(0, x) = 0 for x > 0
//	Atan2(0, x) = π for x < 0
func Atan2(c *context.Context, z, y, x *big.Float) *big.Float {
	ys, xs := y.Sign(), x.Sign()

	if xs == 0 {
		if ys == 0 {
			return result(c, z).SetInt64(0)
		}
		return halfPi(c, z, ys < 0)
	}
	if ys == 0 {
		if xs < 0 {
			return Pi(c, z)
		}
		return result(c, z).SetInt64(0)
	}

	if x.IsInf() && y.IsInf() {
		// ±π/4 or ±3π/4
		pi := Pi(c, newFloat(0))
		r := newFloat(c.Prec()).Set(pi)
		r.SetMantExp(r, -2)
		if xs < 0 {
			c.Sub(r, pi, r)
		}
		if ys < 0 {
			c.Neg(r, r)
		}
		return c.Round(z, r)
	}

	// quadrant offset
	var w *big.Float
	switch {
	case xs < 0 && ys > 0:
		w = Pi(c, newFloat(0))
	case xs < 0 && ys < 0:
		w = Pi(c, newFloat(0))
		w.Neg(w)
	}

	q := c.Quo(c.New(), y, x)
	Atan(c, q, q)
	if w != nil {
		c.Add(q, q, w)
	}
	return c.Round(z, q)
}

// halfPi sets z to ±π/2 rounded to c's precision and returns z.
func halfPi(c *context.Context, z *big.Float, neg bool) *big.Float {
	Pi(c, z)
	z.SetMantExp(z, -1)
	if neg {
		z.Neg(z)
	}
	return z
}
