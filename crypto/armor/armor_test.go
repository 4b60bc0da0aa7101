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

package armor

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArmorDearmorRoundTrip(t *testing.T) {
	data := []byte("arbitrary binary envelope contents, long enough to wrap across more than one line of base64 output")

	armored := Armor(LabelMessage, data)
	assert.True(t, strings.Contains(armored, "BEGIN FINCRYPT MESSAGE"))
	assert.True(t, strings.Contains(armored, "END FINCRYPT MESSAGE"))

	label, recovered, err := Dearmor(armored)
	require.NoError(t, err)
	assert.Equal(t, LabelMessage, label)
	assert.Equal(t, data, recovered)
}

func TestArmorWrapsLongBodies(t *testing.T) {
	data := make([]byte, 200)
	armored := Armor(LabelPublicKey, data)
	lines := strings.Split(armored, "\n")
	for _, line := range lines[1 : len(lines)-1] {
		assert.LessOrEqual(t, len(line), lineWidth)
	}
}

func TestDearmorRejectsPlainText(t *testing.T) {
	_, _, err := Dearmor("just some plain text, no armor here")
	assert.ErrorIs(t, err, ErrMalformedArmor)
}

func TestDearmorToleratesVaryingDashFenceWidth(t *testing.T) {
	data := []byte("short body")
	armored := Armor(LabelPrivateKey, data)
	armored = strings.Replace(armored, "-----", "---", 1)

	label, recovered, err := Dearmor(armored)
	require.NoError(t, err)
	assert.Equal(t, LabelPrivateKey, label)
	assert.Equal(t, data, recovered)
}
