package math

import (
	"errors"
	"math/big"

	"github.com/db47h/bigreal/context"
	"go.uber.org/zap"
)

// ErrDomain is reported when a function is called with an argument outside of
// its domain.
var ErrDomain = errors.New("argument out of domain")

var ln2Const = context.NewConstant("ln2", ln2)

// Ln2 sets z to log(2) rounded to c's precision and returns z. The value is
// cached in c.
func Ln2(c *context.Context, z *big.Float) *big.Float {
	return c.Const(result(c, z), ln2Const)
}

// Log sets z to the natural logarithm of x rounded to c's precision, and
// returns z.
//
// Log(0) = -Inf and Log(+Inf) = +Inf. If x < 0, ErrDomain is reported to c
// and z is set to 0.
func Log(c *context.Context, z, x *big.Float) *big.Float {
	// Log uses the Salamin algorithm described in Michael Beeler, R. William
	// Gosper, Richard Schroeppel, HAKMEM, Artificial Intelligence Memo No. 239,
	// Item 143.
	p := c.Prec() + wordBits

	// special cases
	switch x.Sign() {
	case -1: // x < 0
		c.Report(ErrDomain, zap.String("op", "log"), zap.Stringer("value", x))
		return result(c, z).SetInt64(0)
	case 0: // log(0) = -inf
		return result(c, z).SetInf(true)
	}
	// ln(+inf) = +inf
	if x.IsInf() {
		return result(c, z).SetInf(false)
	}

	w := newFloat(p)
	neg := false
	switch x.Cmp(one) {
	case 0: // ln(1) = 0
		return result(c, z).SetInt64(0)
	case -1: // x < 1, log(x) = -log(1/x)
		neg = true
		w.Quo(one, x)
	default:
		w.Set(x)
	}

	// scale w by 2^m so that w×2^m > 2/sqrt(epsilon)
	// with epsilon = 2^-p, 2/sqrt(epsilon) = 2^(p/2+1).
	// w is mant×2^exp with 0.5 <= mant < 1, so w >= 2^(exp-1) and
	// m+exp-1 > (p+1)/2 gives m = (p+1)/2-exp+2
	m := (int(p)+1)/2 - w.MantExp(nil) + 2
	if m > 0 {
		w.SetMantExp(w, m)
	}

	t := newFloat(p).SetInt64(1)
	u := newFloat(p).Quo(four, w)
	agm(w, t, u)
	w.Quo(c.Const(newFloat(p), piConst), t.Mul(w, two))
	if m > 0 {
		// scale back: w-m×log(2)
		t.Mul(u.SetInt64(int64(m)), c.Const(newFloat(p), ln2Const))
		w.Sub(w, t)
	}
	if neg {
		w.Neg(w)
	}
	return result(c, z).Set(w)
}

// ln2 computes log(2) to z.Prec() bits of precision and returns z.
//
// ln2 is a special case of Log where x = 2^n with n large enough that no
// pre-scaling is needed: log(2^n) = π/(2×agm(1, 4/2^n)) and log(2) is that
// value divided by n.
func ln2(c *context.Context, z *big.Float) *big.Float {
	p := z.Prec() + wordBits
	n := (int(p)+1)/2 + 2

	a := newFloat(p).SetInt64(1)
	b := newFloat(p).SetInt64(1)
	b.SetMantExp(b, 2-n) // 4/2^n
	w := newFloat(p)
	agm(w, a, b)
	w.Quo(c.Const(newFloat(p), piConst), a.Mul(w, two))
	return z.Quo(w, b.SetInt64(int64(n)))
}

// agm sets z to the arithmetic-geometric mean of a, b and returns z.
// a, b and z must be distinct floats. a and b are not preserved.
func agm(z, a, b *big.Float) *big.Float {
	var (
		prec = z.Prec()
		t    = newFloat(prec)
	)

	for {
		t.Set(a)
		a.Mul(z.Add(a, b), half) // a_n+1 = (a_n+b_n)/2
		b.Sqrt(z.Mul(t, b))      // b_n+1 = sqrt(a_n × b_n)
		if converged(z.Sub(a, b), a, prec) {
			break
		}
	}
	return z.Set(a)
}
