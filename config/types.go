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

// Package config loads FinCrypt's runtime configuration: where identity
// keyfiles live on disk, and how logging, metrics and health checks behave.
package config

// Config is the top-level configuration structure.
type Config struct {
	Environment string        `yaml:"environment" json:"environment"`
	Keys        KeysConfig    `yaml:"keys" json:"keys"`
	Logging     LoggingConfig `yaml:"logging" json:"logging"`
	Metrics     MetricsConfig `yaml:"metrics" json:"metrics"`
	Health      HealthConfig  `yaml:"health" json:"health"`
}

// KeysConfig describes the directory conventions for identity keyfiles:
// a directory of recipients' public keys, and the path to the user's own
// private key.
type KeysConfig struct {
	PublicKeyDir   string `yaml:"public_key_dir" json:"public_key_dir"`
	PrivateKeyPath string `yaml:"private_key_path" json:"private_key_path"`
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	Level  string `yaml:"level" json:"level"`   // debug, info, warn, error
	Format string `yaml:"format" json:"format"` // json, text
	Output string `yaml:"output" json:"output"` // stdout, stderr, file path
}

// MetricsConfig contains metrics server configuration.
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled" json:"enabled"`
	Port    int    `yaml:"port" json:"port"`
	Path    string `yaml:"path" json:"path"`
}

// HealthConfig contains health check server configuration.
type HealthConfig struct {
	Enabled bool   `yaml:"enabled" json:"enabled"`
	Port    int    `yaml:"port" json:"port"`
	Path    string `yaml:"path" json:"path"`
}
