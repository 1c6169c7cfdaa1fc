package math

import (
	"math/big"

	"github.com/db47h/bigreal/context"
)

// Atan sets z to the arctangent of x rounded to c's precision and returns z.
//
// Atan(±0) = ±0, Atan(±1) = ±π/4 and Atan(±Inf) = ±π/2.
//
// Atan may raise c's precision while it runs. The precision in effect when
// Atan was called is restored before it returns.
func Atan(c *context.Context, z, x *big.Float) *big.Float {
	t := c.Prec()
	defer c.Push(t)()

	if x.Sign() == 0 {
		return result(c, z).Set(x)
	}
	neg := x.Signbit()
	if x.IsInf() {
		y := Pi(c, newFloat(t))
		y.SetMantExp(y, -1)
		if neg {
			y.Neg(y)
		}
		return result(c, z).Set(y)
	}

	// very large arguments need enough precision for 1/x below.
	if ex := x.MantExp(nil); ex > int(t) {
		c.SetPrec(uint(ex + wordBits - ex%wordBits))
	}
	p := c.Prec()

	// compute atan(|x|) and negate later. The argument reduction below rounds
	// a few times per step; a word of guard bits absorbs it.
	y := newFloat(p + wordBits).Abs(x)

	if y.Cmp(one) == 0 {
		// atan(1) = π/4
		y = Pi(c, y)
		y.SetMantExp(y, -2)
		if neg {
			y.Neg(y)
		}
		c.SetPrec(t)
		return result(c, z).Set(y)
	}

	// atan(x) = π/2 - atan(1/x) for x > 1
	inv := false
	if y.MantExp(nil) > 0 {
		y.Quo(one, y)
		inv = true
	}

	// half-angle reduction: atan(x) = 2×atan(x/(1+sqrt(1+x²)))
	f := 0
	q := newFloat(p + wordBits)
	for y.MantExp(nil) > -10 {
		q.Mul(y, y)
		q.Add(q, one)
		q.Sqrt(q)
		q.Add(q, one)
		y.Quo(y, q)
		f++
	}
	a := newFloat(p).Mul(y, y)

	// atan(y)/y = Σ (-1)^i × a^i/(2i+1), summed backwards from the high order
	// terms. Each term only needs the precision of the terms that follow, so
	// the working precision starts low and grows by 2×ex per step up to t.
	ex := y.MantExp(nil)
	if ex < 0 {
		ex = -ex
	}
	ex <<= 1
	j := int(p) / ex
	if j&1 != 0 {
		j++
	}
	s := newFloat(p).SetInt64(int64(2*j + 1))
	s.Quo(one, s)
	w := newFloat(p)
	wp := uint(4 * ex)

	for i := j; i >= 1; i-- {
		w.SetPrec(wp).Mul(s, a)
		q.SetPrec(wp).SetInt64(int64(2*i - 1))
		q.Quo(one, q)
		wp += uint(2 * ex)
		if wp > t {
			wp = t
		}
		s.SetPrec(wp).Neg(w)
		s.Add(s, q)
	}

	c.SetPrec(t)
	r := newFloat(t).Mul(s, y)
	r.SetMantExp(r, f)

	if inv {
		h := Pi(c, newFloat(t))
		h.SetMantExp(h, -1)
		r.Sub(h, r)
	}
	if neg {
		r.Neg(r)
	}
	return result(c, z).Set(r)
}
