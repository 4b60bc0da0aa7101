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

// Package primitives exposes the low-level contracts the rest of FinCrypt
// builds on: fixed and extendable-output hashing, AES-256-CBC, a
// cryptographically strong RNG, and Reed-Solomon framing. None of the
// internal logic of these primitives is specified; only their behavior is.
package primitives

import (
	"golang.org/x/crypto/sha3"
)

// DigestSize is the fixed output length, in bytes, of SHA3512.
const DigestSize = 64

// SHA3512 returns the 64-byte SHA3-512 digest of data.
func SHA3512(data []byte) [DigestSize]byte {
	return sha3.Sum512(data)
}

// SHAKE256 returns an outLen-byte extendable-output digest of data.
func SHAKE256(data []byte, outLen int) []byte {
	h := sha3.NewShake256()
	h.Write(data)
	out := make([]byte, outLen)
	h.Read(out)
	return out
}
