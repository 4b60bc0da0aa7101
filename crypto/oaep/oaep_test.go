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

package oaep

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPadUnpadRoundTrip(t *testing.T) {
	t.Run("TypicalMessage", func(t *testing.T) {
		message := []byte("the envelope contains a secret")
		padded, err := Pad(message, DefaultSeedLength)
		require.NoError(t, err)
		assert.Len(t, padded, len(message)+DefaultSeedLength)

		recovered, err := Unpad(padded, DefaultSeedLength)
		require.NoError(t, err)
		assert.Equal(t, message, recovered)
	})

	t.Run("EmptyMessage", func(t *testing.T) {
		padded, err := Pad(nil, DefaultSeedLength)
		require.NoError(t, err)
		assert.Len(t, padded, DefaultSeedLength)

		recovered, err := Unpad(padded, DefaultSeedLength)
		require.NoError(t, err)
		assert.Empty(t, recovered)
	})

	t.Run("DeterministicWithFixedSeed", func(t *testing.T) {
		message := []byte("deterministic")
		seed := make([]byte, DefaultSeedLength)
		for i := range seed {
			seed[i] = byte(i)
		}

		padded1, err := padWithSeed(message, seed)
		require.NoError(t, err)
		padded2, err := padWithSeed(message, seed)
		require.NoError(t, err)
		assert.Equal(t, padded1, padded2)

		recovered, err := Unpad(padded1, DefaultSeedLength)
		require.NoError(t, err)
		assert.Equal(t, message, recovered)
	})
}

func TestUnpadRejectsShortInput(t *testing.T) {
	_, err := Unpad(make([]byte, DefaultSeedLength-1), DefaultSeedLength)
	assert.ErrorIs(t, err, ErrPaddedDataTooShort)
}
