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

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/fincrypt-project/fincrypt"
	"github.com/fincrypt-project/fincrypt/config"
	"github.com/fincrypt-project/fincrypt/crypto/container"
	"github.com/fincrypt-project/fincrypt/crypto/primitives"
	"github.com/fincrypt-project/fincrypt/crypto/storage"
	"github.com/fincrypt-project/fincrypt/internal/logger"
	"github.com/fincrypt-project/fincrypt/internal/randomart"
	"github.com/spf13/cobra"
)

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "List known public identities",
	Long: `Keys lists every public keyfile under the configured public key
directory, along with its SHA3-512 fingerprint and a randomart
visualization for eyeballed comparison.`,
	RunE: runKeys,
}

func init() {
	rootCmd.AddCommand(keysCmd)
}

func runKeys(cmd *cobra.Command, args []string) error {
	cfg := config.MustLoad()

	entries, err := os.ReadDir(cfg.Keys.PublicKeyDir)
	if err != nil {
		return fmt.Errorf("read public key directory: %w", err)
	}

	cache := storage.NewIdentityCache()
	names := make([]string, 0, len(entries))

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".asc") {
			continue
		}

		path := filepath.Join(cfg.Keys.PublicKeyDir, entry.Name())
		armored, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "skipping %s: %v\n", entry.Name(), err)
			continue
		}

		identity, err := fincrypt.ParsePublicIdentity(string(armored))
		if err != nil {
			fincryptErr := logger.NewFinCryptError(logger.ErrCodeMalformedKeyfile, "could not parse public keyfile", err).
				WithDetails("file", entry.Name())
			logger.GetDefaultLogger().Warn("skipping unreadable keyfile", logger.Error(fincryptErr))
			fmt.Fprintf(cmd.ErrOrStderr(), "skipping %s: %v\n", entry.Name(), err)
			continue
		}

		id := strings.TrimSuffix(entry.Name(), ".asc")
		cache.Store(id, identity)
		names = append(names, id)
	}

	sort.Strings(names)

	for _, id := range names {
		identity, err := cache.Load(id)
		if err != nil {
			continue
		}
		printIdentity(cmd, id, identity)
	}

	return nil
}

func printIdentity(cmd *cobra.Command, id string, identity *container.PublicKeyfile) {
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "%s <%s>\n", identity.Name, identity.Email)
	fmt.Fprintf(out, "  fingerprint: %s\n", fingerprint(identity))
	fmt.Fprintln(out, randomart.Draw(fingerprintBytes(identity), randomart.DefaultWidth, randomart.DefaultHeight))
	fmt.Fprintln(out)
}

func fingerprintBytes(identity *container.PublicKeyfile) []byte {
	digest := primitives.SHA3512(append(identity.Public.X.Bytes(), identity.Public.Y.Bytes()...))
	return digest[:]
}

func fingerprint(identity *container.PublicKeyfile) string {
	digest := fingerprintBytes(identity)

	hexDigits := "0123456789ABCDEF"
	var b strings.Builder
	for i, c := range digest {
		if i >= 32 {
			break
		}
		if i > 0 {
			b.WriteByte(':')
		}
		b.WriteByte(hexDigits[c>>4])
		b.WriteByte(hexDigits[c&0xf])
	}
	return b.String()
}
