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

package storage

import (
	"fmt"
	"math/big"
	"testing"

	"github.com/fincrypt-project/fincrypt/crypto/container"
	"github.com/fincrypt-project/fincrypt/crypto/curve"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testIdentity(t *testing.T, email string) *container.PublicKeyfile {
	t.Helper()
	c := curve.Secp256k1()
	point := c.ScalarBaseMult(big.NewInt(12345))
	return &container.PublicKeyfile{Public: point, Name: "Test User", Email: email}
}

func TestIdentityCache(t *testing.T) {
	cache := NewIdentityCache()

	t.Run("StoreAndLoad", func(t *testing.T) {
		identity := testIdentity(t, "alice@example.com")

		cache.Store("alice", identity)

		loaded, err := cache.Load("alice")
		require.NoError(t, err)
		assert.Equal(t, identity.Email, loaded.Email)
	})

	t.Run("LoadNonExistent", func(t *testing.T) {
		_, err := cache.Load("non-existent")
		assert.ErrorIs(t, err, ErrIdentityNotFound)
	})

	t.Run("OverwriteExisting", func(t *testing.T) {
		first := testIdentity(t, "first@example.com")
		second := testIdentity(t, "second@example.com")

		cache.Store("overwrite-test", first)
		cache.Store("overwrite-test", second)

		loaded, err := cache.Load("overwrite-test")
		require.NoError(t, err)
		assert.Equal(t, "second@example.com", loaded.Email)
	})

	t.Run("Delete", func(t *testing.T) {
		cache.Store("delete-test", testIdentity(t, "bob@example.com"))
		assert.True(t, cache.Exists("delete-test"))

		require.NoError(t, cache.Delete("delete-test"))
		assert.False(t, cache.Exists("delete-test"))

		_, err := cache.Load("delete-test")
		assert.ErrorIs(t, err, ErrIdentityNotFound)
	})

	t.Run("DeleteNonExistent", func(t *testing.T) {
		err := cache.Delete("non-existent")
		assert.ErrorIs(t, err, ErrIdentityNotFound)
	})

	t.Run("ListIsSorted", func(t *testing.T) {
		fresh := NewIdentityCache()
		fresh.Store("carol", testIdentity(t, "carol@example.com"))
		fresh.Store("alice", testIdentity(t, "alice@example.com"))
		fresh.Store("bob", testIdentity(t, "bob@example.com"))

		assert.Equal(t, []string{"alice", "bob", "carol"}, fresh.List())
	})

	t.Run("EmptyCacheList", func(t *testing.T) {
		empty := NewIdentityCache()
		assert.Empty(t, empty.List())
	})

	t.Run("ConcurrentAccess", func(t *testing.T) {
		concurrent := NewIdentityCache()
		done := make(chan bool)

		for i := 0; i < 10; i++ {
			go func(n int) {
				concurrent.Store(fmt.Sprintf("concurrent-%d", n), testIdentity(t, "x@example.com"))
				done <- true
			}(i)
		}

		for i := 0; i < 10; i++ {
			<-done
		}

		assert.Len(t, concurrent.List(), 10)
	})
}
