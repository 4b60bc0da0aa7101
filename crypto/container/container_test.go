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
	"math/big"
	"testing"

	"github.com/fincrypt-project/fincrypt/crypto/curve"
	"github.com/fincrypt-project/fincrypt/crypto/primitives"
	"github.com/fincrypt-project/fincrypt/crypto/signature"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func randomPoint(t *testing.T) curve.Point {
	t.Helper()
	c := curve.Secp256k1()
	scalar, err := primitives.RandomScalar(c.Order())
	require.NoError(t, err)
	return c.ScalarBaseMult(scalar)
}

func TestEnvelopeRoundTrip(t *testing.T) {
	env := &Envelope{
		EphemeralPoint: randomPoint(t),
		Body:           []byte("ciphertext body"),
		Signature:      signature.Signature{R: big.NewInt(12345), S: big.NewInt(67890)},
	}

	framed, err := env.MarshalFramed()
	require.NoError(t, err)

	recovered, corrected, err := ParseEnvelopeFramed(framed)
	require.NoError(t, err)
	assert.Zero(t, corrected)
	assert.Equal(t, env.Body, recovered.Body)
	assert.Equal(t, 0, env.EphemeralPoint.X.Cmp(recovered.EphemeralPoint.X))
	assert.Equal(t, 0, env.Signature.R.Cmp(recovered.Signature.R))
}

func TestEnvelopeCorrectsFrameCorruption(t *testing.T) {
	env := &Envelope{
		EphemeralPoint: randomPoint(t),
		Body:           []byte("another ciphertext body"),
		Signature:      signature.Signature{R: big.NewInt(111), S: big.NewInt(222)},
	}

	framed, err := env.MarshalFramed()
	require.NoError(t, err)

	corrupted := make([]byte, len(framed))
	copy(corrupted, framed)
	corrupted[0] ^= 0xFF
	corrupted[3] ^= 0xFF

	recovered, corrected, err := ParseEnvelopeFramed(corrupted)
	require.NoError(t, err)
	assert.Equal(t, 2, corrected)
	assert.Equal(t, env.Body, recovered.Body)
}

func TestEnvelopeUncorrectableCorruptionFails(t *testing.T) {
	env := &Envelope{
		EphemeralPoint: randomPoint(t),
		Body:           []byte("a ciphertext body long enough to corrupt in several places"),
		Signature:      signature.Signature{R: big.NewInt(333), S: big.NewInt(444)},
	}

	framed, err := env.MarshalFramed()
	require.NoError(t, err)

	corrupted := make([]byte, len(framed))
	copy(corrupted, framed)
	for i := 0; i < MessageParity/2+1; i++ {
		corrupted[i*3] ^= 0xFF
	}

	_, corrected, err := ParseEnvelopeFramed(corrupted)
	assert.Error(t, err)
	assert.Zero(t, corrected)
	assert.ErrorIs(t, err, ErrMalformedMessage)
}

func TestPublicKeyfileRoundTrip(t *testing.T) {
	keyfile := &PublicKeyfile{
		Public: randomPoint(t),
		Name:   "Ada Lovelace",
		Email:  "ada@example.com",
	}

	framed, err := keyfile.MarshalFramed()
	require.NoError(t, err)

	recovered, corrected, err := ParsePublicKeyfileFramed(framed)
	require.NoError(t, err)
	assert.Zero(t, corrected)
	assert.Equal(t, keyfile.Name, recovered.Name)
	assert.Equal(t, keyfile.Email, recovered.Email)
	assert.Equal(t, 0, keyfile.Public.X.Cmp(recovered.Public.X))
}

func TestPrivateKeyfileRoundTrip(t *testing.T) {
	c := curve.Secp256k1()
	private, err := primitives.RandomScalar(c.Order())
	require.NoError(t, err)

	keyfile := &PrivateKeyfile{Private: private, Name: "Ada Lovelace", Email: "ada@example.com"}

	der, err := keyfile.MarshalDER()
	require.NoError(t, err)

	recovered, err := ParsePrivateKeyfileDER(der)
	require.NoError(t, err)
	assert.Equal(t, 0, keyfile.Private.Cmp(recovered.Private))
	assert.Equal(t, keyfile.Name, recovered.Name)
}

func TestParsePublicKeyfileFramedRejectsGarbage(t *testing.T) {
	_, _, err := ParsePublicKeyfileFramed([]byte("not a valid keyfile"))
	assert.Error(t, err)
}
