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

package reedsolomon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	data := []byte("the quick brown fox jumps over the lazy dog")

	t.Run("NoCorruption", func(t *testing.T) {
		codeword, err := Encode(data, 8)
		require.NoError(t, err)
		assert.Len(t, codeword, len(data)+8)

		recovered, corrected, err := Decode(codeword, 8)
		require.NoError(t, err)
		assert.Equal(t, data, recovered)
		assert.Zero(t, corrected)
	})

	t.Run("CorrectsMaximumErrors", func(t *testing.T) {
		parity := 8
		codeword, err := Encode(data, parity)
		require.NoError(t, err)

		maxErrors := parity / 2
		corrupted := make([]byte, len(codeword))
		copy(corrupted, codeword)
		for i := 0; i < maxErrors; i++ {
			corrupted[i*3] ^= 0xFF
		}

		recovered, corrected, err := Decode(corrupted, parity)
		require.NoError(t, err)
		assert.Equal(t, data, recovered)
		assert.Equal(t, maxErrors, corrected)
	})

	t.Run("TooManyErrorsReportsFailure", func(t *testing.T) {
		parity := 8
		codeword, err := Encode(data, parity)
		require.NoError(t, err)

		corrupted := make([]byte, len(codeword))
		copy(corrupted, codeword)
		for i := 0; i < parity/2+1; i++ {
			corrupted[i*3] ^= 0xFF
		}

		_, corrected, err := Decode(corrupted, parity)
		assert.Error(t, err)
		assert.Zero(t, corrected)
	})

	t.Run("CorruptionInParityBlockIsAlsoCorrected", func(t *testing.T) {
		parity := 8
		codeword, err := Encode(data, parity)
		require.NoError(t, err)

		corrupted := make([]byte, len(codeword))
		copy(corrupted, codeword)
		corrupted[len(corrupted)-1] ^= 0xAA

		recovered, corrected, err := Decode(corrupted, parity)
		require.NoError(t, err)
		assert.Equal(t, data, recovered)
		assert.Equal(t, 1, corrected)
	})
}

func TestGF256Arithmetic(t *testing.T) {
	t.Run("MulByZeroIsZero", func(t *testing.T) {
		assert.Equal(t, byte(0), gfMul(0, 42))
		assert.Equal(t, byte(0), gfMul(42, 0))
	})

	t.Run("MulByOneIsIdentity", func(t *testing.T) {
		assert.Equal(t, byte(123), gfMul(123, 1))
	})

	t.Run("InverseRoundTrips", func(t *testing.T) {
		for a := 1; a < 256; a++ {
			inv := gfInv(byte(a))
			assert.Equal(t, byte(1), gfMul(byte(a), inv))
		}
	})

	t.Run("DivIsMulByInverse", func(t *testing.T) {
		assert.Equal(t, gfMul(77, gfInv(5)), gfDiv(77, 5))
	})
}
