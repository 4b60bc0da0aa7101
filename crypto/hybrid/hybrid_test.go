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

package hybrid

import (
	"math/big"
	"testing"

	"github.com/fincrypt-project/fincrypt/crypto/curve"
	"github.com/fincrypt-project/fincrypt/crypto/primitives"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func generateKeyPair(t *testing.T) (*curve.Curve, *big.Int, curve.Point) {
	t.Helper()
	c := curve.Secp256k1()
	private, err := primitives.RandomScalar(c.Order())
	require.NoError(t, err)
	public := c.ScalarBaseMult(private)
	return c, private, public
}

func TestEncryptDecryptRoundTrip(t *testing.T) {
	_, private, public := generateKeyPair(t)

	plaintext := []byte("a message that must remain confidential")
	ct, err := Encrypt(public, plaintext)
	require.NoError(t, err)
	assert.NotEmpty(t, ct.Body)

	recovered, err := Decrypt(private, ct)
	require.NoError(t, err)
	assert.Equal(t, plaintext, recovered)
}

func TestEncryptProducesDifferentCiphertextEachTime(t *testing.T) {
	_, _, public := generateKeyPair(t)

	plaintext := []byte("same plaintext, different ciphertext")
	ct1, err := Encrypt(public, plaintext)
	require.NoError(t, err)
	ct2, err := Encrypt(public, plaintext)
	require.NoError(t, err)

	assert.NotEqual(t, ct1.Body, ct2.Body)
}

func TestDecryptWithWrongKeyFails(t *testing.T) {
	_, _, public := generateKeyPair(t)
	_, wrongPrivate, _ := generateKeyPair(t)

	ct, err := Encrypt(public, []byte("secret"))
	require.NoError(t, err)

	_, err = Decrypt(wrongPrivate, ct)
	assert.ErrorIs(t, err, ErrDecryptionFailure)
}

func TestEmptyPlaintextRoundTrips(t *testing.T) {
	_, private, public := generateKeyPair(t)

	ct, err := Encrypt(public, nil)
	require.NoError(t, err)

	recovered, err := Decrypt(private, ct)
	require.NoError(t, err)
	assert.Empty(t, recovered)
}
