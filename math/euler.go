package math

import (
	gomath "math"
	"math/big"

	"github.com/db47h/bigreal/context"
)

var eulerConst = context.NewConstant("euler", euler)

// Euler sets z to the Euler-Mascheroni constant γ rounded to c's precision and
// returns z.
//
// The value is cached in c and only recomputed when c's precision grows
// beyond the precision it was computed at.
func Euler(c *context.Context, z *big.Float) *big.Float {
	return c.Const(result(c, z), eulerConst)
}

// euler computes γ to z.Prec() bits of precision with the Brent-McMillan
// algorithm and returns z:
//
//	A_0 = -log(x), B_0 = 1
//	B_k = B_k-1 × x²/k²
//	A_k = (A_k-1 × x²/k + B_k)/k
//	γ ≈ ΣA_k / ΣB_k
//
// The error is O(e^-4x), x and the number of terms n depend on the target
// precision only.
func euler(c *context.Context, z *big.Float) *big.Float {
	l := z.Prec()
	if l < 53 {
		l = 53
	}
	p := z.Prec() + wordBits

	x := 1 + int64(0.25*float64(l-3)*(wordBits*gomath.Ln2))
	n := 1 + int64(3.591*float64(x))

	var (
		u  = newFloat(p)
		xx = newFloat(p).SetInt64(x * x)
		b  = newFloat(p).SetInt64(1)
		v  = newFloat(p).SetInt64(1)
		kf = newFloat(p)
		k2 = newFloat(p)
		t  = newFloat(p)
	)

	restore := c.Push(p)
	Log(c, u, newFloat(p).SetInt64(x))
	restore()
	if u.Sign() > 0 {
		u.Neg(u)
	}
	a := newFloat(p).Set(u)

	for k := int64(1); k <= n; k++ {
		kf.SetInt64(k)
		k2.SetInt64(k * k)
		b.Mul(b, xx)
		b.Quo(b, k2)
		a.Mul(a, xx)
		a.Quo(a, kf)
		t.Add(a, b)
		a.Quo(t, kf)
		u.Add(u, a)
		v.Add(v, b)
	}
	return z.Quo(u, v)
}
