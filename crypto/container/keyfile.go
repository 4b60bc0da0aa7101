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

package container

import (
	"encoding/asn1"
	"errors"
	"math/big"

	"github.com/fincrypt-project/fincrypt/crypto/curve"
	"github.com/fincrypt-project/fincrypt/crypto/primitives/reedsolomon"
)

// PublicKeyParity is the number of Reed-Solomon parity symbols framed around
// a public keyfile's DER encoding. Public keyfiles carry much more parity
// than messages because they are meant to be copied, retyped and pasted
// across channels that corrupt text more readily than message transport.
const PublicKeyParity = 30

// ErrMalformedKey is returned when a keyfile cannot be decoded, whether
// because its Reed-Solomon frame (public keys only) carried uncorrectable
// errors or its DER body doesn't match the expected structure.
var ErrMalformedKey = errors.New("container: malformed keyfile")

// derPublicKey is the DER wire structure for a public keyfile.
type derPublicKey struct {
	KX, KY *big.Int
	Name   []byte
	Email  []byte
}

// derPrivateKey is the DER wire structure for a private keyfile. Unlike the
// original container this omits the curve domain primes P and Q: FinCrypt
// fixes a single curve for every key, so per-key domain parameters would
// only ever restate the same constants (see DESIGN.md).
type derPrivateKey struct {
	K     *big.Int
	Name  []byte
	Email []byte
}

// PublicKeyfile is the decoded, in-memory form of a recipient/sender
// identity record.
type PublicKeyfile struct {
	Public curve.Point
	Name   string
	Email  string
}

// PrivateKeyfile is the decoded, in-memory form of a user's own identity.
type PrivateKeyfile struct {
	Private *big.Int
	Name    string
	Email   string
}

// MarshalFramed DER-encodes the public keyfile and wraps it in
// Reed-Solomon framing, since public keys are the container most exposed to
// manual copy-paste corruption.
func (k *PublicKeyfile) MarshalFramed() ([]byte, error) {
	der, err := asn1.Marshal(derPublicKey{
		KX:    k.Public.X,
		KY:    k.Public.Y,
		Name:  []byte(k.Name),
		Email: []byte(k.Email),
	})
	if err != nil {
		return nil, errors.Join(ErrMalformedKey, err)
	}
	return reedsolomon.Encode(der, PublicKeyParity)
}

// ParsePublicKeyfileFramed reverses MarshalFramed. The returned int is the
// number of symbol errors the frame absorbed, for callers that want to
// track channel damage (public keyfiles are the container most exposed to
// manual copy-paste corruption, see PublicKeyParity).
func ParsePublicKeyfileFramed(framed []byte) (*PublicKeyfile, int, error) {
	der, corrected, err := reedsolomon.Decode(framed, PublicKeyParity)
	if err != nil {
		return nil, 0, errors.Join(ErrMalformedKey, err)
	}

	var raw derPublicKey
	if _, err := asn1.Unmarshal(der, &raw); err != nil {
		return nil, corrected, errors.Join(ErrMalformedKey, err)
	}
	if raw.KX == nil || raw.KY == nil {
		return nil, corrected, ErrMalformedKey
	}

	point := curve.Point{X: raw.KX, Y: raw.KY}
	if err := curve.Secp256k1().ValidatePublicPoint(point); err != nil {
		return nil, corrected, errors.Join(ErrMalformedKey, err)
	}

	return &PublicKeyfile{
		Public: point,
		Name:   string(raw.Name),
		Email:  string(raw.Email),
	}, corrected, nil
}

// MarshalDER DER-encodes the private keyfile. Private keyfiles carry no
// Reed-Solomon framing: they are expected to live untouched on disk rather
// than pass through lossy copy-paste channels.
func (k *PrivateKeyfile) MarshalDER() ([]byte, error) {
	der, err := asn1.Marshal(derPrivateKey{
		K:     k.Private,
		Name:  []byte(k.Name),
		Email: []byte(k.Email),
	})
	if err != nil {
		return nil, errors.Join(ErrMalformedKey, err)
	}
	return der, nil
}

// ParsePrivateKeyfileDER reverses MarshalDER.
func ParsePrivateKeyfileDER(der []byte) (*PrivateKeyfile, error) {
	var raw derPrivateKey
	if _, err := asn1.Unmarshal(der, &raw); err != nil {
		return nil, errors.Join(ErrMalformedKey, err)
	}
	if raw.K == nil || raw.K.Sign() <= 0 {
		return nil, ErrMalformedKey
	}

	return &PrivateKeyfile{
		Private: raw.K,
		Name:    string(raw.Name),
		Email:   string(raw.Email),
	}, nil
}
