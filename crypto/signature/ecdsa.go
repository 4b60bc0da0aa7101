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

// Package signature implements ECDSA sign and verify over the full 64-byte
// SHA3-512 digest of a message, treated as one big-endian integer reduced
// mod the curve order in the final formula step.
//
// This is hand-rolled instead of calling into crypto/ecdsa because the
// standard library's hashToInt right-shifts digests that are longer than
// the curve's bit length, discarding low-order bits before the modular
// reduction. That truncation is specific to the FIPS 186 recommendation
// crypto/ecdsa follows and does not match this scheme, which lets the
// digest-to-scalar step fall straight out of big.Int's Mod.
package signature

import (
	"errors"
	"math/big"

	"github.com/fincrypt-project/fincrypt/crypto/curve"
	"github.com/fincrypt-project/fincrypt/crypto/primitives"
)

// ErrVerificationFailure is returned whenever a signature does not validate.
// Like decryption failures, this is an expected outcome the core surfaces
// as a value, never as a panic.
var ErrVerificationFailure = errors.New("signature: verification failure")

// Signature is an (R, S) ECDSA signature pair.
type Signature struct {
	R, S *big.Int
}

// Sign computes an ECDSA signature over digest using private key d.
//
// digest is expected to be the full 64-byte SHA3-512 hash of the signed
// message, interpreted as a big-endian integer; callers that hash shorter
// messages must still pass the full digest, not a truncated prefix.
func Sign(private *big.Int, digest []byte) (*Signature, error) {
	c := curve.Secp256k1()
	n := c.Order()

	e := new(big.Int).SetBytes(digest)
	e.Mod(e, n)

	for {
		k, err := primitives.RandomScalar(n)
		if err != nil {
			return nil, err
		}

		point := c.ScalarBaseMult(k)
		r := new(big.Int).Mod(point.X, n)
		if r.Sign() == 0 {
			continue
		}

		kInv := new(big.Int).ModInverse(k, n)
		if kInv == nil {
			continue
		}

		s := new(big.Int).Mul(private, r)
		s.Add(s, e)
		s.Mul(s, kInv)
		s.Mod(s, n)
		if s.Sign() == 0 {
			continue
		}

		return &Signature{R: r, S: s}, nil
	}
}

// Verify checks an ECDSA signature over digest against a public point.
// It returns nil on success and ErrVerificationFailure on any mismatch; it
// never panics on attacker-controlled input.
func Verify(public curve.Point, digest []byte, sig *Signature) error {
	c := curve.Secp256k1()
	n := c.Order()

	if sig == nil || sig.R == nil || sig.S == nil {
		return ErrVerificationFailure
	}
	if sig.R.Sign() <= 0 || sig.R.Cmp(n) >= 0 || sig.S.Sign() <= 0 || sig.S.Cmp(n) >= 0 {
		return ErrVerificationFailure
	}
	if err := c.ValidatePublicPoint(public); err != nil {
		return ErrVerificationFailure
	}

	e := new(big.Int).SetBytes(digest)
	e.Mod(e, n)

	sInv := new(big.Int).ModInverse(sig.S, n)
	if sInv == nil {
		return ErrVerificationFailure
	}

	u1 := new(big.Int).Mul(e, sInv)
	u1.Mod(u1, n)
	u2 := new(big.Int).Mul(sig.R, sInv)
	u2.Mod(u2, n)

	p1 := c.ScalarBaseMult(u1)
	p2 := c.ScalarMult(public, u2)
	sum := c.Add(p1, p2)
	if sum.IsIdentity() {
		return ErrVerificationFailure
	}

	v := new(big.Int).Mod(sum.X, n)
	if v.Cmp(sig.R) != 0 {
		return ErrVerificationFailure
	}
	return nil
}
