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

package curve

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSecp256k1IsSingleton(t *testing.T) {
	assert.Same(t, Secp256k1(), Secp256k1())
}

func TestGeneratorIsOnCurve(t *testing.T) {
	c := Secp256k1()
	g := c.Generator()
	assert.True(t, c.IsOnCurve(g))
	assert.False(t, g.IsIdentity())
}

func TestScalarBaseMultMatchesScalarMultOfGenerator(t *testing.T) {
	c := Secp256k1()
	k := big.NewInt(424242)

	viaBase := c.ScalarBaseMult(k)
	viaGeneric := c.ScalarMult(c.Generator(), k)

	assert.Equal(t, viaBase.X, viaGeneric.X)
	assert.Equal(t, viaBase.Y, viaGeneric.Y)
}

func TestAddIsCommutative(t *testing.T) {
	c := Secp256k1()
	p1 := c.ScalarBaseMult(big.NewInt(7))
	p2 := c.ScalarBaseMult(big.NewInt(11))

	ab := c.Add(p1, p2)
	ba := c.Add(p2, p1)

	assert.Equal(t, ab.X, ba.X)
	assert.Equal(t, ab.Y, ba.Y)
}

func TestScalarMultAdditiveHomomorphism(t *testing.T) {
	c := Secp256k1()
	sum := new(big.Int).Add(big.NewInt(3), big.NewInt(5))

	lhs := c.ScalarBaseMult(sum)
	rhs := c.Add(c.ScalarBaseMult(big.NewInt(3)), c.ScalarBaseMult(big.NewInt(5)))

	assert.Equal(t, lhs.X, rhs.X)
	assert.Equal(t, lhs.Y, rhs.Y)
}

func TestValidatePublicPointRejectsIdentity(t *testing.T) {
	c := Secp256k1()
	err := c.ValidatePublicPoint(Point{X: big.NewInt(0), Y: big.NewInt(0)})
	require.ErrorIs(t, err, ErrIdentityPoint)
}

func TestValidatePublicPointRejectsOffCurvePoint(t *testing.T) {
	c := Secp256k1()
	off := Point{X: big.NewInt(1), Y: big.NewInt(1)}
	err := c.ValidatePublicPoint(off)
	require.ErrorIs(t, err, ErrPointNotOnCurve)
}

func TestValidatePublicPointAcceptsGenerator(t *testing.T) {
	c := Secp256k1()
	assert.NoError(t, c.ValidatePublicPoint(c.Generator()))
}

func TestOrderAndFieldPrimeAreDistinctAndPositive(t *testing.T) {
	c := Secp256k1()
	assert.Equal(t, 1, c.Order().Sign())
	assert.Equal(t, 1, c.FieldPrime().Sign())
	assert.NotEqual(t, 0, c.Order().Cmp(c.FieldPrime()))
}
