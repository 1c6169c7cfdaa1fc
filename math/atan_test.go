package math

import (
	"errors"
	gomath "math"
	"math/big"
	"math/rand"
	"strconv"
	"testing"

	"github.com/db47h/bigreal/context"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// piFrac returns π×num/den at precision prec.
func piFrac(num, den int64, prec uint) *big.Float {
	p := new(big.Float).SetPrec(prec).Mul(ref(piDigits), big.NewFloat(float64(num)))
	return p.Quo(p, big.NewFloat(float64(den)))
}

func sqrtOf(x int64, prec uint) *big.Float {
	return new(big.Float).SetPrec(prec).Sqrt(big.NewFloat(float64(x)))
}

func TestAtanSpecialValues(t *testing.T) {
	c := context.New(200, big.ToNearestEven)

	z := Atan(c, new(big.Float), new(big.Float))
	assert.Equal(t, 0, z.Sign())
	assert.Equal(t, uint(200), z.Prec())

	assertClose(t, piFrac(1, 4, 512), Atan(c, new(big.Float), big.NewFloat(1)), 200, 1)
	assertClose(t, piFrac(-1, 4, 512), Atan(c, new(big.Float), big.NewFloat(-1)), 200, 1)
	assertClose(t, piFrac(1, 2, 512), Atan(c, new(big.Float), new(big.Float).SetInf(false)), 200, 1)
	assertClose(t, piFrac(-1, 2, 512), Atan(c, new(big.Float), new(big.Float).SetInf(true)), 200, 1)

	// atan(√3) = π/3, atan(1/√3) = π/6, atan(2-√3) = π/12
	s3 := sqrtOf(3, 512)
	assertClose(t, piFrac(1, 3, 512), Atan(c, new(big.Float), s3), 200, 64)
	assertClose(t, piFrac(1, 6, 512), Atan(c, new(big.Float), new(big.Float).SetPrec(512).Quo(big.NewFloat(1), s3)), 200, 64)
	assertClose(t, piFrac(1, 12, 512), Atan(c, new(big.Float), new(big.Float).SetPrec(512).Sub(big.NewFloat(2), s3)), 200, 64)
}

func TestAtanMachin(t *testing.T) {
	// π/4 = 4×atan(1/5) - atan(1/239)
	for _, prec := range []uint{53, 100, 200, 300} {
		c := context.New(prec, big.ToNearestEven)
		a := Atan(c, new(big.Float), c.New().Quo(big.NewFloat(1), big.NewFloat(5)))
		b := Atan(c, new(big.Float), c.New().Quo(big.NewFloat(1), big.NewFloat(239)))
		a.Mul(a, big.NewFloat(4))
		a.Sub(a, b)
		assertClose(t, piFrac(1, 4, 512), a, prec, 128)
	}
}

func TestAtanOddAndReciprocal(t *testing.T) {
	const prec = 160
	c := context.New(prec, big.ToNearestEven)
	halfPi := piFrac(1, 2, 512)
	for _, s := range []string{"0.001", "0.1", "0.5", "0.75", "1.5", "2", "10", "12345.678", "1e30", "3e-20"} {
		t.Run(s, func(t *testing.T) {
			x, ok := c.NewString(s)
			require.True(t, ok)
			y := Atan(c, new(big.Float), x)
			ny := Atan(c, new(big.Float), new(big.Float).Neg(x))
			assert.Equal(t, 0, ny.Cmp(new(big.Float).Neg(y)), "atan(-x) != -atan(x)")

			// atan(x) + atan(1/x) = π/2
			r := Atan(c, new(big.Float), c.New().Quo(big.NewFloat(1), x))
			sum := new(big.Float).SetPrec(512).Add(y, r)
			assertClose(t, halfPi, sum, prec, 64)
		})
	}
}

func TestAtanFloat64(t *testing.T) {
	c := context.New(100, big.ToNearestEven)
	rnd := rand.New(rand.NewSource(42))
	for i := 0; i < 500; i++ {
		x := (rnd.Float64() - 0.5) * gomath.Pow(10, float64(rnd.Intn(12)-6))
		got, _ := Atan(c, new(big.Float), big.NewFloat(x)).Float64()
		want := gomath.Atan(x)
		assert.InDelta(t, want, got, 1e-15*gomath.Max(gomath.Abs(want), 1e-300), "atan(%g)", x)
	}
}

func TestAtanRestoresPrecision(t *testing.T) {
	for _, s := range []string{"0", "1", "-1", "0.3", "7", "0x1p400", "-0x1p1000", "Inf", "1e-500"} {
		t.Run(s, func(t *testing.T) {
			c := context.New(100, big.ToNearestEven)
			x, ok := new(big.Float).SetPrec(2000).SetString(s)
			require.True(t, ok)
			z := Atan(c, new(big.Float), x)
			assert.Equal(t, uint(100), c.Prec())
			assert.Equal(t, uint(100), z.Prec())
		})
	}
}

func TestAtanLargeArgument(t *testing.T) {
	// atan(2^400) = π/2 - 2^-400 + ...
	c := context.New(100, big.ToNearestEven)
	x := new(big.Float).SetMantExp(big.NewFloat(1), 400)
	assertClose(t, piFrac(1, 2, 512), Atan(c, new(big.Float), x), 100, 1)
	assert.Equal(t, uint(100), c.Prec())

	// tiny argument: atan(x) = x
	x.SetMantExp(big.NewFloat(1), -400)
	z := Atan(c, new(big.Float), x)
	assertClose(t, x, z, 100, 1)
}

func TestAtanAliasing(t *testing.T) {
	c := context.New(128, big.ToNearestEven)
	x := c.NewInt64(3)
	want := Atan(c, new(big.Float), x)
	Atan(c, x, x)
	assert.Equal(t, 0, want.Cmp(x))
}

func TestAsin(t *testing.T) {
	c := context.New(200, big.ToNearestEven)
	assertClose(t, piFrac(1, 2, 512), Asin(c, new(big.Float), big.NewFloat(1)), 200, 1)
	assertClose(t, piFrac(-1, 2, 512), Asin(c, new(big.Float), big.NewFloat(-1)), 200, 1)
	assertClose(t, piFrac(1, 6, 512), Asin(c, new(big.Float), big.NewFloat(0.5)), 200, 64)
	assertClose(t, piFrac(-1, 6, 512), Asin(c, new(big.Float), big.NewFloat(-0.5)), 200, 64)

	// asin(√2/2) = π/4
	x := sqrtOf(2, 512)
	x.SetMantExp(x, -1)
	assertClose(t, piFrac(1, 4, 512), Asin(c, new(big.Float), x), 200, 64)
	assert.Equal(t, 0, Asin(c, new(big.Float), new(big.Float)).Sign())
	assert.NoError(t, c.Diag())

	// just above 1, but 1 at the context precision
	x = new(big.Float).SetPrec(1000).SetMantExp(big.NewFloat(1), -500)
	x.Add(x, big.NewFloat(1))
	assertClose(t, piFrac(1, 2, 512), Asin(c, new(big.Float), x), 200, 1)
	assert.NoError(t, c.Diag())
	assert.NoError(t, c.Err())
}

func TestAsinDomainError(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	c := context.New(100, big.ToNearestEven).SetLogger(zap.New(core))

	for _, x := range []float64{1.5, -2, gomath.Inf(1)} {
		t.Run(strconv.FormatFloat(x, 'g', -1, 64), func(t *testing.T) {
			z := Asin(c, c.NewInt64(42), big.NewFloat(x))
			assert.Equal(t, 0, z.Sign())
			assert.True(t, errors.Is(c.Diag(), ErrDomain))
			require.NotZero(t, logs.Len())
			last := logs.All()[logs.Len()-1]
			assert.Equal(t, "asin", last.ContextMap()["op"])
		})
	}
	assert.NoError(t, c.Err())
}

func TestAtan2(t *testing.T) {
	const prec = 150
	c := context.New(prec, big.ToNearestEven)
	inf := new(big.Float).SetInf(false)
	ninf := new(big.Float).SetInf(true)
	f := big.NewFloat

	td := []struct {
		y, x     *big.Float
		num, den int64
	}{
		{f(0), f(1), 0, 1},
		{f(1), f(0), 1, 2},
		{f(0), f(-1), 1, 1},
		{f(-1), f(0), -1, 2},
		{f(0), f(0), 0, 1},
		{f(1), f(1), 1, 4},
		{f(1), f(-1), 3, 4},
		{f(-1), f(-1), -3, 4},
		{f(-1), f(1), -1, 4},
		{f(2), f(2), 1, 4},
		{inf, f(-3), 1, 2},
		{f(3), ninf, 1, 1},
		{f(-3), ninf, -1, 1},
		{inf, inf, 1, 4},
		{ninf, ninf, -3, 4},
	}
	for _, d := range td {
		t.Run(d.y.String()+","+d.x.String(), func(t *testing.T) {
			z := Atan2(c, new(big.Float), d.y, d.x)
			assert.Equal(t, uint(prec), z.Prec())
			if d.num == 0 {
				assert.Equal(t, 0, z.Sign())
				return
			}
			assertClose(t, piFrac(d.num, d.den, 512), z, prec, 64)
		})
	}
	assert.NoError(t, c.Err())
	assert.Equal(t, uint(prec), c.Prec())
}

func BenchmarkAtan(b *testing.B) {
	for _, prec := range []uint{53, 256, 1024} {
		b.Run(strconv.Itoa(int(prec)), func(b *testing.B) {
			c := context.New(prec, big.ToNearestEven)
			x := c.NewFloat64(0.7)
			z := c.New()
			for i := 0; i < b.N; i++ {
				Atan(c, z, x)
			}
		})
	}
}
