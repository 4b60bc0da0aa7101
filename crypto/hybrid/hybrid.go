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

// Package hybrid combines the KEM, a SHA3-512 key derivation step, OAEP
// padding and AES-256-CBC into the authenticated-encryption-free hybrid
// cipher FinCrypt uses to protect message bodies. Integrity and authenticity
// of the plaintext are provided separately, by the ECDSA signature over the
// whole message; this package only provides confidentiality.
package hybrid

import (
	"errors"
	"math/big"

	"github.com/fincrypt-project/fincrypt/crypto/curve"
	"github.com/fincrypt-project/fincrypt/crypto/kem"
	"github.com/fincrypt-project/fincrypt/crypto/oaep"
	"github.com/fincrypt-project/fincrypt/crypto/primitives"
)

// ErrDecryptionFailure wraps every way decryption can fail once the shared
// secret has been recovered: wrong key, corrupted ciphertext, or bad
// padding. Per the core's error-handling policy, this is a return value
// decrypt callers check, never a panic -- a wrong-key decryption attempt is
// an expected outcome, not a program bug.
var ErrDecryptionFailure = errors.New("hybrid: decryption failure")

// Ciphertext is everything a recipient needs to recover a message body: the
// ephemeral KEM point and the AES-CBC ciphertext it protects.
type Ciphertext struct {
	EphemeralPoint curve.Point
	Body           []byte
}

// Encrypt derives a fresh shared secret with recipientPublic, pads plaintext
// with OAEP, and encrypts the result under AES-256-CBC using a key and IV
// both drawn from the shared secret's SHA3-512 digest.
func Encrypt(recipientPublic curve.Point, plaintext []byte) (*Ciphertext, error) {
	c := curve.Secp256k1()

	ephemeral, sharedX, err := kem.Exchange(c, recipientPublic)
	if err != nil {
		return nil, err
	}

	key, iv := deriveKeyIV(sharedX)

	padded, err := oaep.Pad(plaintext, oaep.DefaultSeedLength)
	if err != nil {
		return nil, err
	}

	body, err := primitives.EncryptCBC(key, iv, padded)
	if err != nil {
		return nil, err
	}

	return &Ciphertext{EphemeralPoint: ephemeral, Body: body}, nil
}

// Decrypt recovers the shared secret using recipientPrivate and the
// ciphertext's ephemeral point, then reverses AES-CBC and OAEP to recover
// the original plaintext.
func Decrypt(recipientPrivate *big.Int, ct *Ciphertext) ([]byte, error) {
	c := curve.Secp256k1()

	sharedX, err := kem.Recover(c, recipientPrivate, ct.EphemeralPoint)
	if err != nil {
		return nil, errors.Join(ErrDecryptionFailure, err)
	}

	key, iv := deriveKeyIV(sharedX)

	padded, err := primitives.DecryptCBC(key, iv, ct.Body)
	if err != nil {
		return nil, errors.Join(ErrDecryptionFailure, err)
	}

	plaintext, err := oaep.Unpad(padded, oaep.DefaultSeedLength)
	if err != nil {
		return nil, errors.Join(ErrDecryptionFailure, err)
	}
	return plaintext, nil
}

// deriveKeyIV turns the shared secret's x-coordinate into an AES key and IV.
//
// The reference implementation encodes the shared value as the decimal
// string representation of its x-coordinate (str(s).encode('utf-8') in the
// original), not its raw bytes, before hashing -- an interoperability detail
// that must be preserved exactly or no two independent implementations will
// ever agree on a key.
func deriveKeyIV(sharedX *big.Int) (key, iv []byte) {
	digest := primitives.SHA3512([]byte(sharedX.String()))
	return digest[:primitives.KeySize], digest[primitives.KeySize : primitives.KeySize+primitives.IVSize]
}
