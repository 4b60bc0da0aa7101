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

// Package curve provides the prime-order short-Weierstrass curve contract
// shared by the KEM and the ECDSA signature scheme. It is a thin wrapper
// around secp256k1, exposed through the standard library's elliptic.Curve
// interface so scalar multiplication, point addition and on-curve checks
// all come from well-trodden code paths rather than bespoke field math.
package curve

import (
	"crypto/elliptic"
	"errors"
	"math/big"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// ErrPointNotOnCurve is returned when an externally supplied point does
// not satisfy the curve equation.
var ErrPointNotOnCurve = errors.New("curve: point is not on the curve")

// ErrIdentityPoint is returned when an operation would produce or consume
// the point at infinity, which is never a valid public key or shared secret.
var ErrIdentityPoint = errors.New("curve: point is the identity element")

// Point is an affine point (X, Y) on Curve. The zero value is not a valid
// point; use Curve.Generator or Curve.ScalarBaseMult to obtain one.
type Point struct {
	X, Y *big.Int
}

// IsIdentity reports whether p is the point at infinity. Go's elliptic.Curve
// implementations represent infinity as (0, 0).
func (p Point) IsIdentity() bool {
	return p.X == nil || p.Y == nil || (p.X.Sign() == 0 && p.Y.Sign() == 0)
}

// Curve is the fixed process-wide elliptic curve used by every FinCrypt
// operation: a single secp256k1 instance shared by the KEM and ECDSA.
type Curve struct {
	ec elliptic.Curve
}

// curveSingleton is the process-wide curve instance. secp256k1.S256 is
// expensive to allocate and is safe for concurrent use, matching the
// read-only RNG/primitive contract described for the rest of the package.
var curveSingleton = &Curve{ec: secp256k1.S256()}

// Secp256k1 returns the fixed curve instance used throughout FinCrypt.
func Secp256k1() *Curve {
	return curveSingleton
}

// Order returns n, the order of the curve's prime-order subgroup. It is
// the modulus for all ECDSA and KEM scalar arithmetic.
func (c *Curve) Order() *big.Int {
	return new(big.Int).Set(c.ec.Params().N)
}

// FieldPrime returns the prime modulus of the underlying field.
func (c *Curve) FieldPrime() *big.Int {
	return new(big.Int).Set(c.ec.Params().P)
}

// Generator returns the curve's fixed base point G.
func (c *Curve) Generator() Point {
	params := c.ec.Params()
	return Point{X: new(big.Int).Set(params.Gx), Y: new(big.Int).Set(params.Gy)}
}

// ScalarBaseMult computes k*G.
func (c *Curve) ScalarBaseMult(k *big.Int) Point {
	x, y := c.ec.ScalarBaseMult(k.Bytes())
	return Point{X: x, Y: y}
}

// ScalarMult computes k*P for an arbitrary point P.
func (c *Curve) ScalarMult(p Point, k *big.Int) Point {
	x, y := c.ec.ScalarMult(p.X, p.Y, k.Bytes())
	return Point{X: x, Y: y}
}

// Add returns p1 + p2.
func (c *Curve) Add(p1, p2 Point) Point {
	x, y := c.ec.Add(p1.X, p1.Y, p2.X, p2.Y)
	return Point{X: x, Y: y}
}

// IsOnCurve reports whether p lies on the curve.
func (c *Curve) IsOnCurve(p Point) bool {
	if p.X == nil || p.Y == nil {
		return false
	}
	return c.ec.IsOnCurve(p.X, p.Y)
}

// ValidatePublicPoint checks that p is a well-formed public key: it must
// lie on the curve and must not be the identity element.
func (c *Curve) ValidatePublicPoint(p Point) error {
	if p.IsIdentity() {
		return ErrIdentityPoint
	}
	if !c.IsOnCurve(p) {
		return ErrPointNotOnCurve
	}
	return nil
}
