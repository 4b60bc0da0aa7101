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
	"time"

	"github.com/fincrypt-project/fincrypt"
	"github.com/fincrypt-project/fincrypt/config"
	"github.com/fincrypt-project/fincrypt/internal/logger"
	"github.com/fincrypt-project/fincrypt/internal/metrics"
	"github.com/spf13/cobra"
)

var (
	decryptSender string
	decryptIn     string
	decryptOut    string
	decryptBinary bool
)

var decryptCmd = &cobra.Command{
	Use:   "decrypt",
	Short: "Decrypt and verify a message",
	Long: `Decrypt reads a FinCrypt message envelope, decrypts it with the
caller's own private keyfile, verifies it against the sender's public
keyfile, zlib-decompresses the recovered plaintext and writes it out.

If the signature does not verify, the recovered plaintext is still written,
but a warning is printed to stderr -- FinCrypt never discards a decrypted
message just because it could not be authenticated.`,
	RunE: runDecrypt,
}

func init() {
	decryptCmd.Flags().StringVar(&decryptSender, "sender", "", "sender name under the public key directory (required)")
	decryptCmd.Flags().StringVar(&decryptIn, "in", "", "input file (default: stdin)")
	decryptCmd.Flags().StringVar(&decryptOut, "out", "", "output file (default: stdout)")
	decryptCmd.Flags().BoolVar(&decryptBinary, "binary", false, "read the raw framed envelope instead of text armor")
	_ = decryptCmd.MarkFlagRequired("sender")

	rootCmd.AddCommand(decryptCmd)
}

func runDecrypt(cmd *cobra.Command, args []string) error {
	cfg := config.MustLoad()
	start := time.Now()

	senderPath := filepath.Join(cfg.Keys.PublicKeyDir, decryptSender+".asc")
	senderArmored, err := os.ReadFile(senderPath)
	if err != nil {
		return fmt.Errorf("read sender public key: %w", err)
	}
	sender, err := fincrypt.ParsePublicIdentity(string(senderArmored))
	if err != nil {
		return fmt.Errorf("parse sender public key: %w", err)
	}

	recipientArmored, err := os.ReadFile(cfg.Keys.PrivateKeyPath)
	if err != nil {
		return fmt.Errorf("read private key: %w", err)
	}
	recipient, err := fincrypt.ParsePrivateIdentity(string(recipientArmored))
	if err != nil {
		return fmt.Errorf("parse private key: %w", err)
	}

	input, err := readInput(decryptIn, cmd.InOrStdin())
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	var compressed []byte
	var verified bool
	if decryptBinary {
		compressed, verified, err = fincrypt.DecryptAndVerify(input, sender, recipient)
	} else {
		compressed, verified, err = fincrypt.DecryptAndVerifyArmored(string(input), sender, recipient)
	}
	if err != nil {
		metrics.CryptoErrors.WithLabelValues("decrypt").Inc()
		fincryptErr := logger.NewFinCryptError(logger.ErrCodeMalformedMessage, "decrypt and verify failed", err).
			WithDetails("sender", decryptSender)
		logger.GetDefaultLogger().Error("decrypt failed", logger.Error(fincryptErr))
		return fmt.Errorf("decrypt and verify: %w", err)
	}
	if compressed == nil {
		metrics.CryptoErrors.WithLabelValues("decrypt").Inc()
		fincryptErr := logger.NewFinCryptError(logger.ErrCodeDecryptionFailure, "message could not be decrypted", nil).
			WithDetails("sender", decryptSender)
		logger.GetDefaultLogger().Error("decrypt failed", logger.Error(fincryptErr))
		return fmt.Errorf("decrypt and verify: message could not be decrypted")
	}

	metrics.CryptoOperations.WithLabelValues("decrypt", "ecies-secp256k1").Inc()
	metrics.CryptoOperationDuration.WithLabelValues("decrypt", "ecies-secp256k1").Observe(time.Since(start).Seconds())
	metrics.CryptoOperations.WithLabelValues("verify", "ecdsa-secp256k1").Inc()

	plaintext, err := decompress(compressed)
	if err != nil {
		return fmt.Errorf("decompress payload: %w", err)
	}

	if !verified {
		fincryptErr := logger.NewFinCryptError(logger.ErrCodeVerificationFailure, "signature did not verify", nil).
			WithDetails("sender", decryptSender)
		logger.GetDefaultLogger().Warn("verification failed", logger.Error(fincryptErr))
		fmt.Fprintln(cmd.ErrOrStderr(), "warning: signature did not verify against the named sender")
	}

	return writeOutput(decryptOut, cmd.OutOrStdout(), plaintext)
}
