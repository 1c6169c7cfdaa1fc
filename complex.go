// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigreal

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math/big"
	"strings"
	"unicode"

	"github.com/db47h/bigreal/context"
	"go.uber.org/zap"
)

// ErrSyntax is returned when the input does not hold a valid complex literal.
var ErrSyntax = errors.New("invalid complex literal")

// A Complex is a complex number with arbitrary precision real and imaginary
// parts.
type Complex struct {
	Re, Im *big.Float
}

// NewComplex returns a new Complex with real part re and imaginary part im.
// The parts are not copied.
func NewComplex(re, im *big.Float) *Complex {
	return &Complex{Re: re, Im: im}
}

// Text converts z to a string of the form "(re,im)", formatting each part
// with (*big.Float).Text(format, digits).
func (z *Complex) Text(format byte, digits int) string {
	var b strings.Builder
	b.WriteByte('(')
	b.WriteString(partText(z.Re, format, digits))
	b.WriteByte(',')
	b.WriteString(partText(z.Im, format, digits))
	b.WriteByte(')')
	return b.String()
}

// String formats z like z.Text('g', 10).
func (z *Complex) String() string {
	return z.Text('g', 10)
}

func partText(x *big.Float, format byte, digits int) string {
	if x == nil {
		return "0"
	}
	return x.Text(format, digits)
}

var _ fmt.Scanner = (*Complex)(nil) // *Complex must implement fmt.Scanner

// Scan is a support routine for fmt.Scanner; it sets z to the value of the
// scanned complex literal. See Scanner for the accepted syntax. The parts are
// parsed with the precision of z.Re, or context.DefaultPrec if z.Re is nil or
// has a zero precision.
func (z *Complex) Scan(s fmt.ScanState, ch rune) error {
	var prec uint
	if z.Re != nil {
		prec = z.Re.Prec()
	}
	if prec == 0 {
		prec = context.DefaultPrec
	}
	return scanComplex(s, z, prec, big.ToNearestEven)
}

// ParseComplex parses s as a complex literal with c's precision and rounding
// mode. The entire string, save for surrounding white space, must be valid.
func ParseComplex(c *context.Context, s string) (*Complex, error) {
	r := strings.NewReader(s)
	z := new(Complex)
	if err := scanComplex(r, z, c.Prec(), c.Mode()); err != nil {
		if err == io.EOF {
			err = fmt.Errorf("%w: empty input", ErrSyntax)
		}
		return nil, err
	}
	if ch, err := skipSpace(r); err != io.EOF {
		if err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("%w: expected end of string, found %q", ErrSyntax, ch)
	}
	return z, nil
}

// A Scanner reads complex literals from a stream.
//
// The accepted forms are
//
//	"(" real "," real ")"
//	"(" real ")"
//	real
//
// where real is any number accepted by (*big.Float).Parse with base 0. White
// space before each token is skipped.
//
// The first failure is sticky: once a literal could not be read, every
// following call to Scan returns the same error without reading from the
// stream.
type Scanner struct {
	c   *context.Context
	r   io.RuneScanner
	err error
}

// NewScanner returns a Scanner that reads from r and parses real numbers with
// c's precision and rounding mode. Syntax errors are also reported to c.
func NewScanner(c *context.Context, r io.Reader) *Scanner {
	rs, ok := r.(io.RuneScanner)
	if !ok {
		rs = bufio.NewReader(r)
	}
	return &Scanner{c: c, r: rs}
}

// Scan reads the next complex literal into z. On failure, z is left
// unchanged and the error is returned; io.EOF is returned if the input ends
// before the first token.
func (s *Scanner) Scan(z *Complex) error {
	if s.err != nil {
		return s.err
	}
	if err := scanComplex(s.r, z, s.c.Prec(), s.c.Mode()); err != nil {
		s.err = err
		if errors.Is(err, ErrSyntax) {
			s.c.Report(err, zap.String("op", "scan"))
		}
		return err
	}
	return nil
}

// Err returns the error that stopped s, or nil.
func (s *Scanner) Err() error {
	return s.err
}

// Failed reports whether s stopped on an error other than io.EOF.
func (s *Scanner) Failed() bool {
	return s.err != nil && s.err != io.EOF
}

func scanComplex(r io.RuneScanner, z *Complex, prec uint, mode big.RoundingMode) error {
	ch, err := skipSpace(r)
	if err != nil {
		return err
	}
	if ch != '(' {
		if err = r.UnreadRune(); err != nil {
			return err
		}
		re, err := scanReal(r, prec, mode)
		if err != nil {
			return err
		}
		z.Re, z.Im = re, new(big.Float).SetPrec(prec).SetMode(mode)
		return nil
	}

	re, err := scanReal(r, prec, mode)
	if err != nil {
		return err
	}
	var im *big.Float
	switch ch, err = skipSpace(r); {
	case err != nil:
		return unexpected(err)
	case ch == ')':
		im = new(big.Float).SetPrec(prec).SetMode(mode)
	case ch == ',':
		if im, err = scanReal(r, prec, mode); err != nil {
			return err
		}
		if ch, err = skipSpace(r); err != nil {
			return unexpected(err)
		}
		if ch != ')' {
			return fmt.Errorf("%w: expected ')', found %q", ErrSyntax, ch)
		}
	default:
		return fmt.Errorf("%w: expected ',' or ')', found %q", ErrSyntax, ch)
	}
	z.Re, z.Im = re, im
	return nil
}

// scanReal reads the longest prefix of r that looks like a floating point
// number and parses it.
func scanReal(r io.RuneScanner, prec uint, mode big.RoundingMode) (*big.Float, error) {
	if _, err := skipSpace(r); err != nil {
		return nil, unexpected(err)
	}
	if err := r.UnreadRune(); err != nil {
		return nil, err
	}
	var b strings.Builder
	var last rune
	for {
		ch, _, err := r.ReadRune()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if !isRealRune(ch, last, b.Len() == 0) {
			if err = r.UnreadRune(); err != nil {
				return nil, err
			}
			break
		}
		b.WriteRune(ch)
		last = ch
	}
	if b.Len() == 0 {
		ch, _, _ := r.ReadRune()
		return nil, fmt.Errorf("%w: expected number, found %q", ErrSyntax, ch)
	}
	f, _, err := big.ParseFloat(b.String(), 0, prec, mode)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSyntax, err)
	}
	return f, nil
}

// isRealRune reports whether ch can be part of a number literal following
// last.
func isRealRune(ch, last rune, first bool) bool {
	switch {
	case ch == '+' || ch == '-':
		return first || last == 'e' || last == 'E' || last == 'p' || last == 'P'
	case ch == '.' || ch == '_':
		return true
	case ch < unicode.MaxASCII && (unicode.IsDigit(ch) || unicode.IsLetter(ch)):
		return true
	}
	return false
}

// skipSpace reads and discards white space from r and returns the next rune.
func skipSpace(r io.RuneScanner) (rune, error) {
	for {
		ch, _, err := r.ReadRune()
		if err != nil {
			return 0, err
		}
		if !unicode.IsSpace(ch) {
			return ch, nil
		}
	}
}

func unexpected(err error) error {
	if err == io.EOF {
		return fmt.Errorf("%w: %v", ErrSyntax, io.ErrUnexpectedEOF)
	}
	return err
}
