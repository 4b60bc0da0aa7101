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
	"bytes"
	"compress/zlib"
	"fmt"
	"io"
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
	encryptRecipient string
	encryptIn        string
	encryptOut       string
	encryptBinary    bool
)

var encryptCmd = &cobra.Command{
	Use:   "encrypt",
	Short: "Encrypt and sign a message for a recipient",
	Long: `Encrypt reads a plaintext payload, zlib-compresses it, encrypts it to
the recipient's public keyfile and signs it with the caller's own private
keyfile, then writes the armored (or, with --binary, raw framed) envelope.`,
	RunE: runEncrypt,
}

func init() {
	encryptCmd.Flags().StringVar(&encryptRecipient, "recipient", "", "recipient name under the public key directory (required)")
	encryptCmd.Flags().StringVar(&encryptIn, "in", "", "input file (default: stdin)")
	encryptCmd.Flags().StringVar(&encryptOut, "out", "", "output file (default: stdout)")
	encryptCmd.Flags().BoolVar(&encryptBinary, "binary", false, "write the raw framed envelope instead of text armor")
	_ = encryptCmd.MarkFlagRequired("recipient")

	rootCmd.AddCommand(encryptCmd)
}

func runEncrypt(cmd *cobra.Command, args []string) error {
	cfg := config.MustLoad()
	start := time.Now()

	recipientPath := filepath.Join(cfg.Keys.PublicKeyDir, encryptRecipient+".asc")
	recipientArmored, err := os.ReadFile(recipientPath)
	if err != nil {
		return fmt.Errorf("read recipient public key: %w", err)
	}
	recipient, err := fincrypt.ParsePublicIdentity(string(recipientArmored))
	if err != nil {
		return fmt.Errorf("parse recipient public key: %w", err)
	}

	signerArmored, err := os.ReadFile(cfg.Keys.PrivateKeyPath)
	if err != nil {
		return fmt.Errorf("read private key: %w", err)
	}
	signer, err := fincrypt.ParsePrivateIdentity(string(signerArmored))
	if err != nil {
		return fmt.Errorf("parse private key: %w", err)
	}

	plaintext, err := readInput(encryptIn, cmd.InOrStdin())
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	compressed, err := compress(plaintext)
	if err != nil {
		return fmt.Errorf("compress payload: %w", err)
	}

	var output []byte
	if encryptBinary {
		output, err = fincrypt.EncryptAndSign(compressed, recipient, signer)
	} else {
		var armored string
		armored, err = fincrypt.EncryptAndSignArmored(compressed, recipient, signer)
		output = []byte(armored)
	}
	if err != nil {
		metrics.CryptoErrors.WithLabelValues("encrypt").Inc()
		fincryptErr := logger.NewFinCryptError(logger.ErrCodeCryptoError, "encrypt and sign failed", err).
			WithDetails("recipient", encryptRecipient)
		logger.GetDefaultLogger().Error("encrypt failed", logger.Error(fincryptErr))
		return fmt.Errorf("encrypt and sign: %w", err)
	}

	metrics.CryptoOperations.WithLabelValues("encrypt", "ecies-secp256k1").Inc()
	metrics.CryptoOperationDuration.WithLabelValues("encrypt", "ecies-secp256k1").Observe(time.Since(start).Seconds())

	return writeOutput(encryptOut, cmd.OutOrStdout(), output)
}

func compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	w, err := zlib.NewWriterLevel(&buf, zlib.BestCompression)
	if err != nil {
		return nil, err
	}
	if _, err := w.Write(data); err != nil {
		_ = w.Close()
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func decompress(data []byte) ([]byte, error) {
	r, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return io.ReadAll(r)
}

func readInput(path string, stdin io.Reader) ([]byte, error) {
	if path == "" {
		return io.ReadAll(stdin)
	}
	return os.ReadFile(path)
}

func writeOutput(path string, stdout io.Writer, data []byte) error {
	if path == "" {
		_, err := stdout.Write(data)
		if err == nil && len(data) > 0 && data[len(data)-1] != '\n' {
			_, err = stdout.Write([]byte("\n"))
		}
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
