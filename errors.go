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
	"github.com/fincrypt-project/fincrypt/crypto/container"
	"github.com/fincrypt-project/fincrypt/crypto/hybrid"
	"github.com/fincrypt-project/fincrypt/crypto/primitives"
	"github.com/fincrypt-project/fincrypt/crypto/signature"
)

// These re-exports give callers of this package a single, stable set of
// sentinel errors to check against, without reaching into the
// crypto/ subpackages that actually define them.
//
// ErrMalformedKey is returned by the keyfile parsers (ParsePublicIdentity,
// ParsePrivateIdentity), and ErrRNGFailure by EncryptAndSign when randomness
// is unavailable. DecryptAndVerify never returns an error: decryption and
// verification mismatches surface as return values, and a malformed message
// envelope on decrypt is reported the same way the reference tool reports
// it -- an unverified nil result.
var (
	// ErrMalformedKey means a keyfile's framing or DER structure could not
	// be parsed.
	ErrMalformedKey = container.ErrMalformedKey

	// ErrMalformedMessage means a message envelope's framing or DER
	// structure could not be parsed. It is exposed for callers that parse
	// envelopes directly through the container package; DecryptAndVerify
	// itself folds this case into an unverified nil result instead of
	// returning it.
	ErrMalformedMessage = container.ErrMalformedMessage

	// ErrDecryptionFailure means the recovered shared secret did not
	// produce valid padding, i.e. decryption was attempted with the wrong
	// key or against corrupted ciphertext.
	ErrDecryptionFailure = hybrid.ErrDecryptionFailure

	// ErrVerificationFailure means an ECDSA signature did not validate.
	ErrVerificationFailure = signature.ErrVerificationFailure

	// ErrRNGFailure means the system CSPRNG could not supply randomness.
	ErrRNGFailure = primitives.ErrRNGFailure
)
