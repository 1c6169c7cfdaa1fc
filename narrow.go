// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigreal

import (
	"errors"
	"fmt"
	"math"
	"math/big"

	"github.com/db47h/bigreal/context"
	"go.uber.org/zap"
)

// ErrRange is reported when a value does not fit in the target type of a
// narrowing conversion.
var ErrRange = errors.New("value out of range")

// RoundingMode selects how Int64Rounded and Int64RoundedFloat64 round values
// that are not integers.
type RoundingMode int8

// The rounding modes. The values match the integer codes of the C-style
// rounding flags (-1, 0, 1).
const (
	RoundDown    RoundingMode = -1 // toward -Inf (floor)
	RoundNearest RoundingMode = 0  // to nearest, half away from zero
	RoundUp      RoundingMode = 1  // toward +Inf (ceiling)
)

func (m RoundingMode) String() string {
	switch m {
	case RoundDown:
		return "down"
	case RoundNearest:
		return "nearest"
	case RoundUp:
		return "up"
	}
	return fmt.Sprintf("RoundingMode(%d)", int8(m))
}

// ParseRoundingMode returns the rounding mode named s, one of "nearest", "up"
// or "down".
func ParseRoundingMode(s string) (RoundingMode, error) {
	for _, m := range []RoundingMode{RoundNearest, RoundUp, RoundDown} {
		if s == m.String() {
			return m, nil
		}
	}
	return RoundNearest, fmt.Errorf("invalid rounding mode %q", s)
}

var (
	minInt32 = big.NewInt(math.MinInt32)
	maxInt32 = big.NewInt(math.MaxInt32)
	minInt64 = big.NewInt(math.MinInt64)
	maxInt64 = big.NewInt(math.MaxInt64)

	minInt64f = new(big.Float).SetInt64(math.MinInt64)
	maxInt64f = new(big.Float).SetInt64(math.MaxInt64)
)

// Int32 returns the value of x as an int32 and true. If x does not fit in an
// int32, ErrRange is reported to c and Int32 returns (0, false).
//
// The returned value alone cannot tell a zero x from a failed conversion; use
// the boolean result or c.Diag for that.
func Int32(c *context.Context, x *big.Int) (int32, bool) {
	if x.Sign() == 0 {
		return 0, true
	}
	if x.Cmp(minInt32) < 0 || x.Cmp(maxInt32) > 0 {
		c.Report(ErrRange, zap.String("op", "int32"), zap.Stringer("value", x))
		return 0, false
	}
	return int32(narrow(x, minInt32, maxInt32)), true
}

// Int64 returns the value of x as an int64 and true. If x does not fit in an
// int64, ErrRange is reported to c and Int64 returns (0, false).
//
// The returned value alone cannot tell a zero x from a failed conversion; use
// the boolean result or c.Diag for that.
func Int64(c *context.Context, x *big.Int) (int64, bool) {
	if x.Sign() == 0 {
		return 0, true
	}
	if x.Cmp(minInt64) < 0 || x.Cmp(maxInt64) > 0 {
		c.Report(ErrRange, zap.String("op", "int64"), zap.Stringer("value", x))
		return 0, false
	}
	return narrow(x, minInt64, maxInt64), true
}

// narrow returns x, with min <= x <= max, as an int64. Positive values are
// reduced modulo max, which must leave them unchanged. Negative values are
// negated and narrowed, except for min whose negation does not fit.
func narrow(x, min, max *big.Int) int64 {
	switch x.Sign() {
	case 0:
		return 0
	case 1:
		if x.Cmp(max) == 0 {
			return max.Int64()
		}
		r := new(big.Int).Rem(x, max)
		if r.Cmp(x) != 0 {
			panic(fmt.Sprintf("bigreal: %v mod %v != %v", x, max, x))
		}
		return r.Int64()
	default:
		if x.Cmp(min) == 0 {
			return min.Int64()
		}
		return -narrow(new(big.Int).Neg(x), min, max)
	}
}

// Int64Rounded rounds x to an integer according to mode and returns it as an
// int64 together with true. If x is outside of the int64 range, ErrRange is
// reported to c and Int64Rounded returns (0, false).
func Int64Rounded(c *context.Context, x *big.Float, mode RoundingMode) (int64, bool) {
	if x.IsInf() || x.Cmp(minInt64f) < 0 || x.Cmp(maxInt64f) > 0 {
		c.Report(ErrRange, zap.String("op", "int64"), zap.Stringer("value", x), zap.Stringer("mode", mode))
		return 0, false
	}

	i, acc := x.Int(nil)
	if acc != big.Exact {
		switch mode {
		case RoundNearest:
			// |x| - trunc(|x|) >= 0.5 iff trunc(2|x|) is odd.
			d, _ := new(big.Float).SetMantExp(x, 1).Int(nil)
			if d.Bit(0) != 0 {
				i.Add(i, big.NewInt(int64(x.Sign())))
			}
		case RoundUp:
			if acc == big.Below {
				i.Add(i, big.NewInt(1))
			}
		case RoundDown:
			if acc == big.Above {
				i.Sub(i, big.NewInt(1))
			}
		}
	}
	return Int64(c, i)
}

// Int64RoundedFloat64 is like Int64Rounded for a float64 argument. Rounding
// is done with truncation toward zero plus an offset, depending on the sign of
// x and on its fractional part. NaNs and values outside of [-2^63, 2^63) are
// reported as ErrRange.
func Int64RoundedFloat64(c *context.Context, x float64, mode RoundingMode) (int64, bool) {
	if !(x >= -0x1p63 && x < 0x1p63) {
		c.Report(ErrRange, zap.String("op", "int64"), zap.Float64("value", x), zap.Stringer("mode", mode))
		return 0, false
	}
	a := int64(x)
	// |x - a| is exact: below 2^52 the integer part and the fraction both
	// fit in the mantissa, above it x has no fraction.
	f := x - float64(a)
	switch mode {
	case RoundNearest:
		if f >= 0.5 {
			a++
		} else if f <= -0.5 {
			a--
		}
	case RoundUp:
		if f > 0 {
			a++
		}
	default:
		if f < 0 {
			a--
		}
	}
	return a, true
}
