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

package signature

import (
	"math/big"
	"testing"

	"github.com/fincrypt-project/fincrypt/crypto/curve"
	"github.com/fincrypt-project/fincrypt/crypto/primitives"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func generateKeyPair(t *testing.T) (*big.Int, curve.Point) {
	t.Helper()
	c := curve.Secp256k1()
	private, err := primitives.RandomScalar(c.Order())
	require.NoError(t, err)
	return private, c.ScalarBaseMult(private)
}

func digestOf(message string) []byte {
	d := primitives.SHA3512([]byte(message))
	return d[:]
}

func TestSignVerifyRoundTrip(t *testing.T) {
	private, public := generateKeyPair(t)
	digest := digestOf("sign this message")

	sig, err := Sign(private, digest)
	require.NoError(t, err)

	err = Verify(public, digest, sig)
	assert.NoError(t, err)
}

func TestVerifyFailsOnTamperedMessage(t *testing.T) {
	private, public := generateKeyPair(t)
	digest := digestOf("original message")

	sig, err := Sign(private, digest)
	require.NoError(t, err)

	tamperedDigest := digestOf("tampered message")
	err = Verify(public, tamperedDigest, sig)
	assert.ErrorIs(t, err, ErrVerificationFailure)
}

func TestVerifyFailsWithWrongSigner(t *testing.T) {
	private, _ := generateKeyPair(t)
	_, wrongPublic := generateKeyPair(t)
	digest := digestOf("message")

	sig, err := Sign(private, digest)
	require.NoError(t, err)

	err = Verify(wrongPublic, digest, sig)
	assert.ErrorIs(t, err, ErrVerificationFailure)
}

func TestVerifyRejectsNilSignatureComponents(t *testing.T) {
	_, public := generateKeyPair(t)
	digest := digestOf("message")

	err := Verify(public, digest, &Signature{})
	assert.ErrorIs(t, err, ErrVerificationFailure)
}

func TestVerifyRejectsOutOfRangeS(t *testing.T) {
	private, public := generateKeyPair(t)
	digest := digestOf("message")

	sig, err := Sign(private, digest)
	require.NoError(t, err)

	sig.S = curve.Secp256k1().Order()
	err = Verify(public, digest, sig)
	assert.ErrorIs(t, err, ErrVerificationFailure)
}
