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

// Package kem implements the ECIES-style key encapsulation used to agree on
// a shared secret with a recipient's public key. It only produces the
// shared point; it carries no MAC or key-confirmation step of its own, since
// the envelope that uses it authenticates the whole message with a separate
// ECDSA signature.
package kem

import (
	"math/big"

	"github.com/fincrypt-project/fincrypt/crypto/curve"
	"github.com/fincrypt-project/fincrypt/crypto/primitives"
)

// Exchange generates a fresh ephemeral key pair, computes the shared point
// with recipientPublic, and returns the ephemeral public point (to be sent
// to the recipient as the encapsulated key) together with the shared
// point's x-coordinate.
func Exchange(c *curve.Curve, recipientPublic curve.Point) (ephemeral curve.Point, sharedX *big.Int, err error) {
	if err := c.ValidatePublicPoint(recipientPublic); err != nil {
		return curve.Point{}, nil, err
	}

	ephemeralScalar, err := primitives.RandomScalar(c.Order())
	if err != nil {
		return curve.Point{}, nil, err
	}

	ephemeral = c.ScalarBaseMult(ephemeralScalar)
	shared := c.ScalarMult(recipientPublic, ephemeralScalar)
	if shared.IsIdentity() {
		return curve.Point{}, nil, curve.ErrIdentityPoint
	}
	return ephemeral, shared.X, nil
}

// Recover reproduces the shared point's x-coordinate on the recipient side
// given its own private scalar and the ephemeral point sent by Exchange.
func Recover(c *curve.Curve, recipientPrivate *big.Int, ephemeral curve.Point) (sharedX *big.Int, err error) {
	if err := c.ValidatePublicPoint(ephemeral); err != nil {
		return nil, err
	}

	shared := c.ScalarMult(ephemeral, recipientPrivate)
	if shared.IsIdentity() {
		return nil, curve.ErrIdentityPoint
	}
	return shared.X, nil
}
