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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncryptAndSignDecryptAndVerifyRoundTrip(t *testing.T) {
	aliceKey, alicePub, err := GenerateIdentity("Alice", "alice@example.com")
	require.NoError(t, err)
	bobKey, bobPub, err := GenerateIdentity("Bob", "bob@example.com")
	require.NoError(t, err)

	message := []byte("meet at the usual place, same time")

	envelope, err := EncryptAndSign(message, bobPub, aliceKey)
	require.NoError(t, err)

	recovered, verified, err := DecryptAndVerify(envelope, alicePub, bobKey)
	require.NoError(t, err)
	assert.True(t, verified)
	assert.Equal(t, message, recovered)
}

func TestArmoredRoundTrip(t *testing.T) {
	aliceKey, alicePub, err := GenerateIdentity("Alice", "alice@example.com")
	require.NoError(t, err)
	bobKey, bobPub, err := GenerateIdentity("Bob", "bob@example.com")
	require.NoError(t, err)

	message := []byte("an armored message")

	armored, err := EncryptAndSignArmored(message, bobPub, aliceKey)
	require.NoError(t, err)

	recovered, verified, err := DecryptAndVerifyArmored(armored, alicePub, bobKey)
	require.NoError(t, err)
	assert.True(t, verified)
	assert.Equal(t, message, recovered)
}

func TestDecryptAndVerifyWithWrongRecipientFails(t *testing.T) {
	aliceKey, _, err := GenerateIdentity("Alice", "alice@example.com")
	require.NoError(t, err)
	_, alicePub, err := GenerateIdentity("Alice", "alice@example.com")
	require.NoError(t, err)
	_, bobPub, err := GenerateIdentity("Bob", "bob@example.com")
	require.NoError(t, err)
	wrongKey, _, err := GenerateIdentity("Eve", "eve@example.com")
	require.NoError(t, err)

	envelope, err := EncryptAndSign([]byte("top secret"), bobPub, aliceKey)
	require.NoError(t, err)

	message, verified, err := DecryptAndVerify(envelope, alicePub, wrongKey)
	require.NoError(t, err)
	assert.False(t, verified)
	assert.Nil(t, message)
}

func TestDecryptAndVerifyWithWrongSignerFailsVerificationOnly(t *testing.T) {
	aliceKey, _, err := GenerateIdentity("Alice", "alice@example.com")
	require.NoError(t, err)
	bobKey, bobPub, err := GenerateIdentity("Bob", "bob@example.com")
	require.NoError(t, err)
	_, impostorPub, err := GenerateIdentity("Impostor", "impostor@example.com")
	require.NoError(t, err)

	message := []byte("decrypts fine, signature does not match")
	envelope, err := EncryptAndSign(message, bobPub, aliceKey)
	require.NoError(t, err)

	recovered, verified, err := DecryptAndVerify(envelope, impostorPub, bobKey)
	require.NoError(t, err)
	assert.False(t, verified)
	assert.Equal(t, message, recovered)
}

func TestDecryptAndVerifyWithTamperedCiphertextBodyFails(t *testing.T) {
	aliceKey, alicePub, err := GenerateIdentity("Alice", "alice@example.com")
	require.NoError(t, err)
	bobKey, bobPub, err := GenerateIdentity("Bob", "bob@example.com")
	require.NoError(t, err)

	message := []byte("a message long enough to tamper with in several places")
	envelope, err := EncryptAndSign(message, bobPub, aliceKey)
	require.NoError(t, err)

	tampered := make([]byte, len(envelope))
	copy(tampered, envelope)
	// Flip a scattered handful of single bits near the start of the frame
	// (DER header and the first ciphertext bytes), more than the envelope's
	// Reed-Solomon correction budget, so the framing layer cannot silently
	// repair the tamper and the envelope is rejected.
	for i := 0; i < 5; i++ {
		tampered[i*3] ^= 0x01
	}

	recovered, verified, err := DecryptAndVerify(tampered, alicePub, bobKey)
	require.NoError(t, err)
	assert.False(t, verified)
	assert.Nil(t, recovered)
}

func TestDecryptAndVerifyWithMalformedEnvelopeReturnsUnverified(t *testing.T) {
	_, alicePub, err := GenerateIdentity("Alice", "alice@example.com")
	require.NoError(t, err)
	bobKey, _, err := GenerateIdentity("Bob", "bob@example.com")
	require.NoError(t, err)

	message, verified, err := DecryptAndVerify([]byte("garbage, not a real envelope"), alicePub, bobKey)
	require.NoError(t, err)
	assert.False(t, verified)
	assert.Nil(t, message)
}
