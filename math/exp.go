package math

import (
	"math/big"

	"github.com/db47h/bigreal/context"
)

// Exp sets z to the rounded value of e^x, and returns z.
//
// Exp(-Inf) = 0 and Exp(+Inf) = +Inf. Results beyond the exponent range of
// big.Float overflow to +Inf or underflow to 0.
func Exp(c *context.Context, z, x *big.Float) *big.Float {
	// special cases
	if x.IsInf() {
		if x.Signbit() {
			return result(c, z).SetInt64(0)
		}
		return result(c, z).SetInf(false)
	}
	if x.Sign() == 0 {
		return result(c, z).SetInt64(1)
	}
	// |x| >= 2^32 is well beyond big.MaxExp×log(2)
	if x.MantExp(nil) > 32 {
		if x.Sign() < 0 {
			return result(c, z).SetInt64(0)
		}
		return result(c, z).SetInf(false)
	}

	// x = k×log(2) + r with |r| < log(2). The reduction cancels up to 32
	// leading bits, hence the extra word.
	var (
		p = c.Prec() + 2*wordBits
		r = newFloat(p)
		t = newFloat(p)
		k = new(big.Int)
	)
	l2 := c.Const(newFloat(p), ln2Const)
	r.Quo(x, l2).Int(k)
	r.Sub(x, t.Mul(t.SetInt(k), l2))

	expT(t, r)
	return c.Round(z, t.SetMantExp(t, int(k.Int64())))
}

// expT sets z to the rounded value of e^x, and returns z.
// The precision of z must be non zero and the caller is responsible
// for allocating guard bits and rounding down z. The series converges
// quickly for |x| < 1.
func expT(z, x *big.Float) *big.Float {
	var (
		p    = z.Prec()
		q    = newFloat(p).SetInt64(1)
		fact = newFloat(p).SetInt64(1)
		t    = newFloat(p)
		xe   = newFloat(p).SetInt64(1)
		s    = newFloat(p).SetInt64(1) // first term
	)
	for {
		xe.Mul(xe, x)
		fact.Mul(fact, q)
		q.Add(q, one)
		s.Add(s, t.Quo(xe, fact))
		if t.Sign() == 0 || t.MantExp(nil) < s.MantExp(nil)-int(p) {
			break
		}
	}
	return z.Set(s)
}
