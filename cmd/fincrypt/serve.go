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
	"net/http"
	"os"

	"github.com/fincrypt-project/fincrypt/config"
	"github.com/fincrypt-project/fincrypt/health"
	"github.com/fincrypt-project/fincrypt/internal/logger"
	"github.com/fincrypt-project/fincrypt/internal/metrics"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the metrics and health endpoints",
	Long: `Serve starts up to two standalone HTTP listeners: a Prometheus metrics
endpoint tracking encrypt/decrypt/sign/verify activity, and a health
endpoint reporting whether the configured private key is present and
readable. Each listener starts only when it is enabled in the configuration
(metrics.enabled, health.enabled); both are off by default, in which case
serve starts no listener.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := config.MustLoad()
	log := logger.GetDefaultLogger()

	checker := health.NewHealthChecker(0)
	checker.RegisterCheck("private-key", health.KeyStoreHealthCheck(func() error {
		f, err := os.Open(cfg.Keys.PrivateKeyPath)
		if err != nil {
			return err
		}
		return f.Close()
	}))

	if cfg.Metrics.Enabled {
		go func() {
			log.Info("starting metrics server", logger.Int("port", cfg.Metrics.Port))
			if err := metrics.StartServer(fmt.Sprintf(":%d", cfg.Metrics.Port)); err != nil {
				log.Error("metrics server stopped", logger.Error(err))
			}
		}()
	}

	if cfg.Health.Enabled {
		mux := http.NewServeMux()
		mux.HandleFunc(cfg.Health.Path, func(w http.ResponseWriter, r *http.Request) {
			status := checker.GetOverallStatus(r.Context())
			if status != health.StatusHealthy {
				w.WriteHeader(http.StatusServiceUnavailable)
			}
			fmt.Fprintf(w, "%s\n", status)
		})

		log.Info("starting health server", logger.Int("port", cfg.Health.Port))
		return http.ListenAndServe(fmt.Sprintf(":%d", cfg.Health.Port), mux)
	}

	<-cmd.Context().Done()
	return nil
}
