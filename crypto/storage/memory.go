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

// Package storage caches parsed recipient identities in memory, so a CLI
// invocation that resolves the same public_keys/ directory entry more than
// once doesn't re-parse and re-validate the armored keyfile every time. The
// keys command is its only caller; encrypt and decrypt parse their keyfiles
// directly.
package storage

import (
	"errors"
	"sort"
	"sync"

	"github.com/fincrypt-project/fincrypt/crypto/container"
)

// ErrIdentityNotFound is returned when a cache lookup misses.
var ErrIdentityNotFound = errors.New("storage: identity not found")

// IdentityCache holds parsed public keyfiles keyed by an arbitrary
// identifier, typically the filename stem under public_keys/.
type IdentityCache struct {
	mu    sync.RWMutex
	cache map[string]*container.PublicKeyfile
}

// NewIdentityCache creates a new in-memory identity cache.
func NewIdentityCache() *IdentityCache {
	return &IdentityCache{
		cache: make(map[string]*container.PublicKeyfile),
	}
}

// Store caches a public keyfile under id, overwriting any previous entry.
func (c *IdentityCache) Store(id string, identity *container.PublicKeyfile) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.cache[id] = identity
}

// Load returns the cached public keyfile for id, or ErrIdentityNotFound.
func (c *IdentityCache) Load(id string) (*container.PublicKeyfile, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	identity, ok := c.cache[id]
	if !ok {
		return nil, ErrIdentityNotFound
	}
	return identity, nil
}

// Delete removes the cached entry for id, or returns ErrIdentityNotFound.
func (c *IdentityCache) Delete(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.cache[id]; !ok {
		return ErrIdentityNotFound
	}
	delete(c.cache, id)
	return nil
}

// List returns every cached id in sorted order.
func (c *IdentityCache) List() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	ids := make([]string, 0, len(c.cache))
	for id := range c.cache {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Exists reports whether id is cached.
func (c *IdentityCache) Exists(id string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	_, ok := c.cache[id]
	return ok
}
