// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package bigreal implements a small arbitrary-precision numeric kernel on top of
math/big.

The kernel is split in three packages:

  - context provides Context, which carries the working precision (in bits),
    the rounding mode, a diagnostic logger and a cache of precision dependent
    constants. It replaces a process-wide working precision: every function
    takes a *Context and computes its result with the context's precision.
  - math implements the constants π, log(2) and the Euler-Mascheroni constant
    γ, and the functions Log, Exp, Sqrt, Atan, Asin and Atan2 for big.Float
    values.
  - bigreal (this package) provides checked narrowing conversions from
    big.Int and big.Float (or float64) values to int32 and int64, and a
    Complex type with a parser for literals of the form "(re,im)", "(re)" or
    "re".

For instance, computing atan(1/3) with 256 bits of precision:

	c := context.New(256, big.ToNearestEven)
	x := c.Quo(c.New(), c.NewInt64(1), c.NewInt64(3))
	z := math.Atan(c, c.New(), x)

Soft failures

Narrowing conversions of values that do not fit in the target type and calls
to math.Asin outside of [-1, 1] do not panic: they report an error to the
context's diagnostic logger and return a zero value. The conversions also
return a boolean indicating success, and the first soft failure since the last
check can be retrieved with (*context.Context).Diag:

	c := context.New(0, big.ToNearestEven).SetLogger(logger)
	if v, ok := bigreal.Int32(c, x); !ok {
		// v == 0, c.Diag() is ErrRange
	}

Concurrency

A Context is not safe for concurrent use. The precision, the cached constants
and the diagnostic state are owned by a single goroutine; use one context per
goroutine.
*/
package bigreal
