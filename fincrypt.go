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
	"github.com/fincrypt-project/fincrypt/crypto/hybrid"
	"github.com/fincrypt-project/fincrypt/crypto/primitives"
	"github.com/fincrypt-project/fincrypt/crypto/primitives/reedsolomon"
	"github.com/fincrypt-project/fincrypt/crypto/signature"
	"github.com/fincrypt-project/fincrypt/internal/metrics"
)

// EncryptAndSign encrypts message to recipient's public identity and signs
// it with signer's private identity, returning the DER-encoded,
// Reed-Solomon-framed message envelope. Callers that want a text-safe
// result should pass this through armor.Armor(armor.LabelMessage, ...).
func EncryptAndSign(message []byte, recipient *PublicIdentity, signer *PrivateIdentity) ([]byte, error) {
	ct, err := hybrid.Encrypt(recipient.Public, message)
	if err != nil {
		return nil, err
	}

	digest := primitives.SHA3512(message)
	sig, err := signature.Sign(signer.Private, digest[:])
	if err != nil {
		return nil, err
	}

	env := &container.Envelope{
		EphemeralPoint: ct.EphemeralPoint,
		Body:           ct.Body,
		Signature:      *sig,
	}
	return env.MarshalFramed()
}

// EncryptAndSignArmored is EncryptAndSign followed by text armoring.
func EncryptAndSignArmored(message []byte, recipient *PublicIdentity, signer *PrivateIdentity) (string, error) {
	framed, err := EncryptAndSign(message, recipient, signer)
	if err != nil {
		return "", err
	}
	return armor.Armor(armor.LabelMessage, framed), nil
}

// DecryptAndVerify parses a message envelope, decrypts it with recipient's
// private identity and verifies it against sender's public identity.
//
// A malformed envelope or a failed decryption both yield (nil, false, nil):
// the reference tool never distinguishes "could not even parse the
// message" from "parsed fine but the key didn't match" at this layer, and
// this port preserves that. A failed signature verification yields
// (message, false, nil) -- the plaintext the encryption layer recovered,
// marked unverified, exactly as the original returns a decrypted-but-
// unauthenticated message rather than discarding it. The error result is
// always nil; decryption uses no randomness, so there is no RNG failure to
// report either.
func DecryptAndVerify(framed []byte, sender *PublicIdentity, recipient *PrivateIdentity) (message []byte, verified bool, err error) {
	env, corrected, parseErr := container.ParseEnvelopeFramed(framed)
	if parseErr != nil {
		if errors.Is(parseErr, reedsolomon.ErrTooManyErrors) {
			metrics.ReedSolomonFailures.WithLabelValues("message").Inc()
		}
		return nil, false, nil
	}
	if corrected > 0 {
		metrics.ReedSolomonCorrections.WithLabelValues("message").Add(float64(corrected))
	}

	ct := &hybrid.Ciphertext{EphemeralPoint: env.EphemeralPoint, Body: env.Body}
	plaintext, decErr := hybrid.Decrypt(recipient.Private, ct)
	if decErr != nil {
		return nil, false, nil
	}

	digest := primitives.SHA3512(plaintext)
	verifyErr := signature.Verify(sender.Public, digest[:], &env.Signature)
	return plaintext, verifyErr == nil, nil
}

// DecryptAndVerifyArmored dearmors a message before passing it to
// DecryptAndVerify.
func DecryptAndVerifyArmored(armored string, sender *PublicIdentity, recipient *PrivateIdentity) (message []byte, verified bool, err error) {
	label, framed, dearmorErr := armor.Dearmor(armored)
	if dearmorErr != nil || label != armor.LabelMessage {
		return nil, false, nil
	}
	return DecryptAndVerify(framed, sender, recipient)
}
