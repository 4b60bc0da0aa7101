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

package fincrypt

import (
	"errors"

	"github.com/fincrypt-project/fincrypt/crypto/armor"
	"github.com/fincrypt-project/fincrypt/crypto/container"
	"github.com/fincrypt-project/fincrypt/crypto/curve"
	"github.com/fincrypt-project/fincrypt/crypto/primitives"
	"github.com/fincrypt-project/fincrypt/crypto/primitives/reedsolomon"
	"github.com/fincrypt-project/fincrypt/internal/metrics"
)

// PublicIdentity and PrivateIdentity are the two halves of a FinCrypt
// identity: the keyfile a user distributes, and the one they keep to
// themselves. Both are thin aliases over the DER container types, since
// the wire structure and the in-memory structure are one and the same.
type (
	PublicIdentity  = container.PublicKeyfile
	PrivateIdentity = container.PrivateKeyfile
)

// GenerateIdentity creates a fresh secp256k1 key pair and wraps it in a
// public/private identity pair carrying the given name and email.
func GenerateIdentity(name, email string) (*PrivateIdentity, *PublicIdentity, error) {
	c := curve.Secp256k1()
	scalar, err := primitives.RandomScalar(c.Order())
	if err != nil {
		return nil, nil, err
	}
	public := c.ScalarBaseMult(scalar)

	priv := &PrivateIdentity{Private: scalar, Name: name, Email: email}
	pub := &PublicIdentity{Public: public, Name: name, Email: email}
	return priv, pub, nil
}

// ArmorPublicIdentity DER-encodes, Reed-Solomon frames and text-armors a
// public identity for distribution.
func ArmorPublicIdentity(id *PublicIdentity) (string, error) {
	framed, err := id.MarshalFramed()
	if err != nil {
		return "", err
	}
	return armor.Armor(armor.LabelPublicKey, framed), nil
}

// ParsePublicIdentity reverses ArmorPublicIdentity.
func ParsePublicIdentity(armored string) (*PublicIdentity, error) {
	label, framed, err := armor.Dearmor(armored)
	if err != nil {
		return nil, wrapMalformedKey(err)
	}
	if label != armor.LabelPublicKey {
		return nil, ErrMalformedKey
	}
	identity, corrected, err := container.ParsePublicKeyfileFramed(framed)
	if err != nil {
		if errors.Is(err, reedsolomon.ErrTooManyErrors) {
			metrics.ReedSolomonFailures.WithLabelValues("public_key").Inc()
		}
		return nil, err
	}
	if corrected > 0 {
		metrics.ReedSolomonCorrections.WithLabelValues("public_key").Add(float64(corrected))
	}
	return identity, nil
}

// ArmorPrivateIdentity DER-encodes and text-armors a private identity for
// storage. Private identities carry no Reed-Solomon framing (see
// container.PrivateKeyfile.MarshalDER).
func ArmorPrivateIdentity(id *PrivateIdentity) (string, error) {
	der, err := id.MarshalDER()
	if err != nil {
		return "", err
	}
	return armor.Armor(armor.LabelPrivateKey, der), nil
}

// ParsePrivateIdentity reverses ArmorPrivateIdentity.
func ParsePrivateIdentity(armored string) (*PrivateIdentity, error) {
	label, der, err := armor.Dearmor(armored)
	if err != nil {
		return nil, wrapMalformedKey(err)
	}
	if label != armor.LabelPrivateKey {
		return nil, ErrMalformedKey
	}
	return container.ParsePrivateKeyfileDER(der)
}

func wrapMalformedKey(err error) error {
	return &malformedKeyError{cause: err}
}

type malformedKeyError struct {
	cause error
}

func (e *malformedKeyError) Error() string {
	return ErrMalformedKey.Error() + ": " + e.cause.Error()
}

func (e *malformedKeyError) Unwrap() error {
	return ErrMalformedKey
}
