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

package primitives

import (
	"crypto/rand"
	"errors"
	"math/big"
)

// ErrRNGFailure is returned when the system CSPRNG cannot supply randomness.
// Every caller that surfaces this must propagate it unchanged; it is the
// one failure mode the core is allowed to raise on outside of malformed
// input, since there is no sane fallback for a broken entropy source.
var ErrRNGFailure = errors.New("primitives: random number generator failure")

// RandomBytes returns n cryptographically random bytes.
func RandomBytes(n int) ([]byte, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return nil, errors.Join(ErrRNGFailure, err)
	}
	return buf, nil
}

// RandomScalar returns a uniformly random integer in [1, max-1] via
// rejection sampling, the standard way to avoid modulo bias when max is
// not a power of two.
func RandomScalar(max *big.Int) (*big.Int, error) {
	if max == nil || max.Sign() <= 0 {
		return nil, errors.New("primitives: scalar upper bound must be positive")
	}
	upper := new(big.Int).Sub(max, big.NewInt(1))
	if upper.Sign() <= 0 {
		return nil, errors.New("primitives: scalar upper bound too small")
	}
	k, err := rand.Int(rand.Reader, upper)
	if err != nil {
		return nil, errors.Join(ErrRNGFailure, err)
	}
	return k.Add(k, big.NewInt(1)), nil
}
