// Copyright (C) 2025 fincrypt-project
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with this program. If not, see <https://www.gnu.org/licenses/>.

// SPDX-License-Identifier: LGPL-3.0-or-later

package reedsolomon

import "errors"

// ErrTooManyErrors is returned when a codeword carries more symbol errors
// than the parity budget can locate and correct.
var ErrTooManyErrors = errors.New("reedsolomon: too many errors to correct")

// ErrInvalidParity is returned when the requested parity length is not a
// usable size for the given codeword.
var ErrInvalidParity = errors.New("reedsolomon: invalid parity length")

// Encode appends parity Reed-Solomon parity symbols to data and returns the
// resulting systematic codeword: the original data bytes unchanged, followed
// by the parity block. Framing that needs this on decode must pass the same
// parity value back into Decode.
func Encode(data []byte, parity int) ([]byte, error) {
	if parity <= 0 || parity >= gf256Order {
		return nil, ErrInvalidParity
	}
	gen := generatorPoly(parity)

	remainder := make([]byte, len(data)+parity)
	copy(remainder, data)
	for i := 0; i < len(data); i++ {
		coef := remainder[i]
		if coef == 0 {
			continue
		}
		for j, g := range gen {
			remainder[i+j] = gfAdd(remainder[i+j], gfMul(g, coef))
		}
	}

	out := make([]byte, len(data)+parity)
	copy(out, data)
	copy(out[len(data):], remainder[len(data):])
	return out, nil
}

// Decode recovers the original data block from codeword, which must be data
// followed by parity parity symbols as produced by Encode. In a codeword of
// at most 255 symbols, up to floor(parity/2) symbol errors anywhere,
// including inside the data portion, are located and corrected. More errors
// than that usually end in ErrTooManyErrors; an error pattern that happens
// to lie within floor(parity/2) symbols of a different codeword is decoded
// to that codeword's data. Error locators repeat every 255 positions, so in
// a longer codeword errors cannot be located: such a codeword decodes only
// when it is clean, and corruption in it is not corrected. The second
// return value is the number of symbol errors that were located and
// corrected (zero for an already-clean codeword), so callers can surface
// how much damage a frame absorbed.
func Decode(codeword []byte, parity int) ([]byte, int, error) {
	n := len(codeword)
	if parity <= 0 || parity >= n {
		return nil, 0, ErrInvalidParity
	}

	syndromes := make([]byte, parity)
	clean := true
	for k := 0; k < parity; k++ {
		syndromes[k] = gfPolyEval(codeword, gfExp(k))
		if syndromes[k] != 0 {
			clean = false
		}
	}
	if clean {
		out := make([]byte, n-parity)
		copy(out, codeword[:n-parity])
		return out, 0, nil
	}

	lambda := berlekampMassey(syndromes)
	numErrors := len(lambda) - 1
	maxErrors := parity / 2
	if numErrors == 0 || numErrors > maxErrors {
		return nil, 0, ErrTooManyErrors
	}

	type errorLocation struct {
		pos int
		x   byte
	}
	locations := make([]errorLocation, 0, numErrors)
	for i := 0; i < n; i++ {
		power := n - 1 - i
		invX := gfExp(-power)
		if gfPolyEvalLow(lambda, invX) == 0 {
			locations = append(locations, errorLocation{pos: i, x: gfExp(power)})
		}
	}
	if len(locations) != numErrors {
		return nil, 0, ErrTooManyErrors
	}

	omegaFull := gfPolyMulLow(syndromes, lambda)
	omega := omegaFull
	if len(omega) > parity {
		omega = omega[:parity]
	}
	lambdaDeriv := formalDerivative(lambda)

	corrected := make([]byte, n)
	copy(corrected, codeword)
	for _, loc := range locations {
		xInv := gfInv(loc.x)
		derivVal := gfPolyEvalLow(lambdaDeriv, xInv)
		if derivVal == 0 {
			return nil, 0, ErrTooManyErrors
		}
		magnitude := gfMul(loc.x, gfDiv(gfPolyEvalLow(omega, xInv), derivVal))
		corrected[loc.pos] = gfAdd(corrected[loc.pos], magnitude)
	}

	for k := 0; k < parity; k++ {
		if gfPolyEval(corrected, gfExp(k)) != 0 {
			return nil, 0, ErrTooManyErrors
		}
	}

	out := make([]byte, n-parity)
	copy(out, corrected[:n-parity])
	return out, len(locations), nil
}

// generatorPoly builds prod_{k=0}^{parity-1} (x - alpha^k) in GF(2^8),
// highest-degree coefficient first. Subtraction is XOR in characteristic 2,
// so this is the same as (x + alpha^k).
func generatorPoly(parity int) []byte {
	gen := []byte{1}
	for k := 0; k < parity; k++ {
		gen = gfPolyMul(gen, []byte{1, gfExp(k)})
	}
	return gen
}

// berlekampMassey finds the shortest linear feedback shift register that
// generates the syndrome sequence, i.e. the error locator polynomial Lambda,
// returned lowest-degree-first with Lambda[0] == 1.
func berlekampMassey(syndromes []byte) []byte {
	n := len(syndromes)
	c := make([]byte, n+1)
	b := make([]byte, n+1)
	c[0] = 1
	b[0] = 1
	l := 0
	m := 1
	bCoef := byte(1)

	for i := 0; i < n; i++ {
		delta := syndromes[i]
		for j := 1; j <= l; j++ {
			delta = gfAdd(delta, gfMul(c[j], syndromes[i-j]))
		}
		switch {
		case delta == 0:
			m++
		case 2*l <= i:
			t := make([]byte, len(c))
			copy(t, c)
			coef := gfDiv(delta, bCoef)
			for j := range b {
				if j+m < len(c) {
					c[j+m] = gfAdd(c[j+m], gfMul(coef, b[j]))
				}
			}
			l = i + 1 - l
			copy(b, t)
			bCoef = delta
			m = 1
		default:
			coef := gfDiv(delta, bCoef)
			for j := range b {
				if j+m < len(c) {
					c[j+m] = gfAdd(c[j+m], gfMul(coef, b[j]))
				}
			}
			m++
		}
	}
	return c[:l+1]
}

// gfPolyEvalLow evaluates a polynomial given lowest-degree-first, the
// convention berlekampMassey and its derived polynomials use.
func gfPolyEvalLow(coeffs []byte, x byte) byte {
	result := byte(0)
	xPow := byte(1)
	for _, c := range coeffs {
		result = gfAdd(result, gfMul(c, xPow))
		xPow = gfMul(xPow, x)
	}
	return result
}

// gfPolyMulLow multiplies two lowest-degree-first polynomials.
func gfPolyMulLow(a, b []byte) []byte {
	if len(a) == 0 || len(b) == 0 {
		return nil
	}
	result := make([]byte, len(a)+len(b)-1)
	for i, ac := range a {
		if ac == 0 {
			continue
		}
		for j, bc := range b {
			result[i+j] = gfAdd(result[i+j], gfMul(ac, bc))
		}
	}
	return result
}

// formalDerivative computes the formal derivative of a lowest-degree-first
// polynomial over GF(2^8). In characteristic 2, even-power terms vanish.
func formalDerivative(coeffs []byte) []byte {
	if len(coeffs) <= 1 {
		return []byte{0}
	}
	deriv := make([]byte, len(coeffs)-1)
	for i := 1; i < len(coeffs); i++ {
		if i%2 == 1 {
			deriv[i-1] = coeffs[i]
		}
	}
	return deriv
}
