// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package context provides working precision contexts for big.Float
// computations.
//
// A Context replaces a process-wide working precision: every function of the
// bigreal packages takes a *Context and computes its result with the
// context's precision (in bits) and rounding mode. Functions that need more
// precision internally change it with Push and restore it on return.
//
// All factory functions of the form
//
//    func (c *Context) NewT(x T) *big.Float
//
// create a new big.Float set to the value of x, and rounded using c's
// precision and rounding mode.
//
// Operators that set a receiver z to function of other arguments like:
//
//    func (c *Context) UnaryOp(z, x *big.Float) *big.Float
//    func (c *Context) BinaryOp(z, x, y *big.Float) *big.Float
//
// set z to the result of z.Op(args), rounded using the c's precision and
// rounding mode and return z.
//
// A Context catches NaN errors: if an operation generates a NaN, the operation
// will silently succeed with an undefined result. Further operations with the
// context will be no-ops (they simply return the receiver z) until
// (*Context).Err is called to check for errors.
//
// Soft failures (a narrowing conversion that does not fit, an arcsine domain
// error) are reported to the context's diagnostic logger and recorded until
// (*Context).Diag is called. They do not disable further operations.
//
// A Context is not safe for concurrent use. Use one context per goroutine.
package context

import (
	"errors"
	"math/big"

	"go.uber.org/zap"
)

// DefaultPrec is the precision in bits used by contexts created with a zero
// precision.
const DefaultPrec = 150

const handleNaNs = true

// A Context holds the working precision and rounding mode for big.Float
// computations, a diagnostic sink and a cache of precision dependent
// constants.
type Context struct {
	prec   uint32
	mode   big.RoundingMode
	err    error
	diag   error
	log    *zap.Logger
	consts map[*Constant]*entry
}

// New creates a new context with the given precision and rounding mode. If prec
// is 0, it will be set to DefaultPrec.
func New(prec uint, mode big.RoundingMode) *Context {
	return new(Context).SetMode(mode).SetPrec(prec)
}

// Mode returns the rounding mode of c.
func (c *Context) Mode() big.RoundingMode {
	return c.mode
}

// Prec returns the working precision of c in bits.
func (c *Context) Prec() uint {
	if c.prec == 0 {
		return DefaultPrec
	}
	return uint(c.prec)
}

// SetMode sets c's rounding mode to mode and returns c.
func (c *Context) SetMode(mode big.RoundingMode) *Context {
	c.mode = mode
	return c
}

// SetPrec sets c's precision to prec and returns c.
//
// If prec > big.MaxPrec, it is set to big.MaxPrec. If prec == 0, it is set to
// DefaultPrec.
func (c *Context) SetPrec(prec uint) *Context {
	// special case
	if prec == 0 {
		prec = DefaultPrec
	}
	// general case
	if prec > big.MaxPrec {
		prec = big.MaxPrec
	}
	c.prec = uint32(prec)
	return c
}

// Push sets c's precision to prec and returns a function that restores the
// precision in effect before the call. It is meant to be deferred:
//
//	defer c.Push(p)()
func (c *Context) Push(prec uint) (restore func()) {
	old := c.prec
	c.SetPrec(prec)
	return func() { c.prec = old }
}

// SetLogger sets the diagnostic sink of c and returns c. A nil logger
// discards diagnostics.
func (c *Context) SetLogger(l *zap.Logger) *Context {
	c.log = l
	return c
}

// Logger returns c's diagnostic sink.
func (c *Context) Logger() *zap.Logger {
	if c.log == nil {
		return zap.NewNop()
	}
	return c.log
}

// Report logs err as a warning together with the given fields and records it
// as a soft failure. The first soft failure since the last call to Diag is
// kept.
func (c *Context) Report(err error, fields ...zap.Field) {
	c.Logger().Warn(err.Error(), fields...)
	if c.diag == nil {
		c.diag = err
	}
}

// Diag returns the first soft failure reported since the last call to Diag
// and clears it.
func (c *Context) Diag() (err error) {
	err = c.diag
	c.diag = nil
	return
}

// New returns a new big.Float with value 0, precision and rounding mode set
// to c's precision and rounding mode.
func (c *Context) New() *big.Float {
	return new(big.Float).SetMode(c.mode).SetPrec(c.Prec())
}

// NewInt returns a new *big.Float set to the (possibly rounded) value of x.
func (c *Context) NewInt(x *big.Int) *big.Float {
	return c.New().SetInt(x)
}

// NewInt64 returns a new *big.Float set to the (possibly rounded) value of x.
func (c *Context) NewInt64(x int64) *big.Float {
	return c.New().SetInt64(x)
}

// NewFloat64 returns a new *big.Float set to the (possibly rounded) value of
// x. It panics with big.ErrNaN if x is a NaN.
func (c *Context) NewFloat64(x float64) *big.Float {
	return c.New().SetFloat64(x)
}

// NewRat returns a new *big.Float set to the (possibly rounded) value of x.
func (c *Context) NewRat(x *big.Rat) *big.Float {
	return c.New().SetRat(x)
}

// NewString returns a new big.Float with the value of s and a boolean
// indicating success. s must be a floating-point number of the same format as
// accepted by (*big.Float).Parse, with base argument 0. The entire string
// (not just a prefix) must be valid for success. If the operation failed, the
// returned value is nil.
func (c *Context) NewString(s string) (f *big.Float, success bool) {
	return c.New().SetString(s)
}

// Err returns the first error encountered since the last call to Err and clears
// the error state.
func (c *Context) Err() (err error) {
	err = c.err
	c.err = nil
	return
}

// trap stores a recovered big.ErrNaN panic in c.err. Any other panic is
// propagated.
func (c *Context) trap(r interface{}) {
	var nan big.ErrNaN
	if err, ok := r.(error); ok && errors.As(err, &nan) {
		c.err = nan
		return
	}
	panic(r)
}

// Round sets z's to the value of x and returns z rounded using c's precision
// and rounding mode.
func (c *Context) Round(z, x *big.Float) *big.Float {
	if handleNaNs {
		if c.err != nil {
			return z
		}
	}
	return c.apply(z.Copy(x))
}

// apply applies c's precision and rounding mode to z and returns z.
func (c *Context) apply(z *big.Float) *big.Float {
	z.SetMode(c.mode)
	if z.Prec() != c.Prec() {
		z.SetPrec(c.Prec())
	}
	return z
}

// Add sets z to the rounded sum x+y and returns z.
func (c *Context) Add(z, x, y *big.Float) (r *big.Float) {
	if handleNaNs {
		if c.err != nil {
			return z
		}
		defer func() {
			if err := recover(); err != nil {
				c.trap(err)
				r = z
			}
		}()
	}
	return c.apply(z).Add(x, y)
}

// Sub sets z to the rounded difference x-y and returns z.
func (c *Context) Sub(z, x, y *big.Float) (r *big.Float) {
	if handleNaNs {
		if c.err != nil {
			return z
		}
		defer func() {
			if err := recover(); err != nil {
				c.trap(err)
				r = z
			}
		}()
	}
	return c.apply(z).Sub(x, y)
}

// Mul sets z to the rounded product x×y and returns z.
func (c *Context) Mul(z, x, y *big.Float) (r *big.Float) {
	if handleNaNs {
		if c.err != nil {
			return z
		}
		defer func() {
			if err := recover(); err != nil {
				c.trap(err)
				r = z
			}
		}()
	}
	return c.apply(z).Mul(x, y)
}

// Quo sets z to the rounded quotient x/y and returns z.
func (c *Context) Quo(z, x, y *big.Float) (r *big.Float) {
	if handleNaNs {
		if c.err != nil {
			return z
		}
		defer func() {
			if err := recover(); err != nil {
				c.trap(err)
				r = z
			}
		}()
	}
	return c.apply(z).Quo(x, y)
}

// Neg sets z to the (possibly rounded) value of x with its sign negated,
// and returns z.
func (c *Context) Neg(z, x *big.Float) *big.Float {
	if handleNaNs {
		if c.err != nil {
			return z
		}
	}
	return c.apply(z).Neg(x)
}

// Abs sets z to the (possibly rounded) value |x| (the absolute value of x)
// and returns z.
func (c *Context) Abs(z, x *big.Float) *big.Float {
	if handleNaNs {
		if c.err != nil {
			return z
		}
	}
	return c.apply(z).Abs(x)
}

// Sqrt sets z to the rounded square root of x, and returns z.
func (c *Context) Sqrt(z, x *big.Float) (r *big.Float) {
	if handleNaNs {
		if c.err != nil {
			return z
		}
		defer func() {
			if err := recover(); err != nil {
				c.trap(err)
				r = z
			}
		}()
	}
	return c.apply(z).Sqrt(x)
}
