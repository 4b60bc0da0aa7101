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

	"github.com/fincrypt-project/fincrypt"
	"github.com/fincrypt-project/fincrypt/config"
	"github.com/fincrypt-project/fincrypt/internal/logger"
	"github.com/spf13/cobra"
)

var (
	generateName  string
	generateEmail string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a new FinCrypt identity",
	Long: `Generate creates a fresh secp256k1 key pair and writes the private
half to the configured private key path, and the public half into the
configured public key directory under <name>.asc.`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVar(&generateName, "name", "", "identity name (required)")
	generateCmd.Flags().StringVar(&generateEmail, "email", "", "identity email (required)")
	_ = generateCmd.MarkFlagRequired("name")
	_ = generateCmd.MarkFlagRequired("email")

	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg := config.MustLoad()

	priv, pub, err := fincrypt.GenerateIdentity(generateName, generateEmail)
	if err != nil {
		fincryptErr := logger.NewFinCryptError(logger.ErrCodeRNGFailure, "identity generation failed", err).
			WithDetails("name", generateName)
		logger.GetDefaultLogger().Error("generate failed", logger.Error(fincryptErr))
		return fmt.Errorf("generate identity: %w", err)
	}

	privArmored, err := fincrypt.ArmorPrivateIdentity(priv)
	if err != nil {
		return fmt.Errorf("armor private identity: %w", err)
	}
	pubArmored, err := fincrypt.ArmorPublicIdentity(pub)
	if err != nil {
		return fmt.Errorf("armor public identity: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Keys.PrivateKeyPath), 0o700); err != nil {
		return fmt.Errorf("create private key directory: %w", err)
	}
	if err := os.WriteFile(cfg.Keys.PrivateKeyPath, []byte(privArmored), 0o600); err != nil {
		return fmt.Errorf("write private key: %w", err)
	}

	if err := os.MkdirAll(cfg.Keys.PublicKeyDir, 0o755); err != nil {
		return fmt.Errorf("create public key directory: %w", err)
	}
	pubPath := filepath.Join(cfg.Keys.PublicKeyDir, generateName+".asc")
	if err := os.WriteFile(pubPath, []byte(pubArmored), 0o644); err != nil {
		return fmt.Errorf("write public key: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "wrote private key to %s\n", cfg.Keys.PrivateKeyPath)
	fmt.Fprintf(cmd.OutOrStdout(), "wrote public key to %s\n", pubPath)
	return nil
}
