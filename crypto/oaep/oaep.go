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

// Package oaep implements the two-round Feistel-style padding scheme that
// wraps plaintext before it is handed to AES-CBC. It is not RSA-OAEP: there
// is no curve or modulus involved, only a SHAKE256 mask generation function
// driving two XOR rounds over a random seed.
package oaep

import (
	"errors"

	"github.com/fincrypt-project/fincrypt/crypto/primitives"
)

// DefaultSeedLength is the number of random seed bytes appended to every
// padded block, matching the reference scheme's default.
const DefaultSeedLength = 32

// ErrPaddedDataTooShort is returned when Unpad is given fewer bytes than
// the seed it expects to find at the tail of the block.
var ErrPaddedDataTooShort = errors.New("oaep: padded data shorter than seed length")

// Pad masks message with a fresh random seed of seedLength bytes, returning
// message.length + seedLength bytes: the masked message followed by the
// masked seed.
//
// Because both masking rounds XOR two byte strings of identical length, the
// result is exactly the same whether the operands are treated as big- or
// little-endian integers first -- XOR is position-wise and endianness only
// matters when the two sides are reassembled into integers of different
// widths, which never happens here. This implementation therefore works
// directly on byte slices rather than round-tripping through math/big.
func Pad(message []byte, seedLength int) ([]byte, error) {
	seed, err := primitives.RandomBytes(seedLength)
	if err != nil {
		return nil, err
	}
	return padWithSeed(message, seed)
}

// padWithSeed implements Pad for a caller-supplied seed, split out so tests
// can exercise the deterministic masking logic directly.
func padWithSeed(message, seed []byte) ([]byte, error) {
	maskedMessage := xorBytes(primitives.SHAKE256(seed, len(message)), message)
	maskedSeed := xorBytes(primitives.SHAKE256(maskedMessage, len(seed)), seed)
	out := make([]byte, 0, len(maskedMessage)+len(maskedSeed))
	out = append(out, maskedMessage...)
	out = append(out, maskedSeed...)
	return out, nil
}

// Unpad reverses Pad, recovering the original message from a block produced
// with the same seedLength.
func Unpad(data []byte, seedLength int) ([]byte, error) {
	if len(data) < seedLength {
		return nil, ErrPaddedDataTooShort
	}
	messageLen := len(data) - seedLength
	maskedMessage := data[:messageLen]
	maskedSeed := data[messageLen:]

	seed := xorBytes(primitives.SHAKE256(maskedMessage, seedLength), maskedSeed)
	message := xorBytes(primitives.SHAKE256(seed, messageLen), maskedMessage)
	return message, nil
}

// xorBytes XORs two equal-length byte slices into a freshly allocated slice.
// Callers only ever pass slices of matching length, one from a plaintext/seed
// and one produced by SHAKE256 with that same length requested.
func xorBytes(a, b []byte) []byte {
	out := make([]byte, len(a))
	for i := range out {
		out[i] = a[i] ^ b[i]
	}
	return out
}
