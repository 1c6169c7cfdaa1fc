// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package context

import (
	"math/big"

	"go.uber.org/zap"
)

// A Constant is a precision dependent mathematical constant whose value is
// cached by each Context that uses it.
type Constant struct {
	name    string
	compute func(c *Context, z *big.Float) *big.Float
}

type entry struct {
	v    *big.Float
	prec uint
}

// NewConstant declares a constant. compute must set z to the value of the
// constant at z's precision and return z; z's precision is never zero.
func NewConstant(name string, compute func(c *Context, z *big.Float) *big.Float) *Constant {
	return &Constant{name: name, compute: compute}
}

// Name returns the name k was declared with.
func (k *Constant) Name() string { return k.name }

// Const sets z to the (possibly rounded) value of k and returns z. If z's
// precision is 0, it is changed to c's precision.
//
// The value is computed on first use and cached in c. It is recomputed when
// the cached value was computed at a precision lower than the precision of c
// or z, so that repeated calls at a non-increasing precision return the same
// value without computing it again.
func (c *Context) Const(z *big.Float, k *Constant) *big.Float {
	if z.Prec() == 0 {
		z.SetPrec(c.Prec())
	}
	need := c.Prec()
	if p := z.Prec(); p > need {
		need = p
	}
	e := c.consts[k]
	if e == nil || e.prec < need {
		if c.consts == nil {
			c.consts = make(map[*Constant]*entry)
		}
		v := k.compute(c, new(big.Float).SetPrec(need))
		e = &entry{v: v, prec: need}
		c.consts[k] = e
		c.Logger().Debug("constant computed", zap.String("name", k.name), zap.Uint("prec", need))
	}
	return z.Set(e.v)
}

// Computed returns the precision at which k is currently cached in c. ok is
// false if k has not been computed yet.
func (c *Context) Computed(k *Constant) (prec uint, ok bool) {
	e := c.consts[k]
	if e == nil {
		return 0, false
	}
	return e.prec, true
}
