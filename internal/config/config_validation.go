// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// validate checks that the final merged [StructuredConfig] satisfies the
// invariants shared by both binaries. Server-only requirements (a non-empty
// DSN, a token signing key) are enforced where those subsystems start, so a
// client run does not have to carry server settings.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenDuration <= 0 || cfg.App.AdminUsername == "" {
		return ErrInvalidAppConfigs
	}

	if cfg.Storage.Files.UploadsDir == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.Workers.SweepInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.ServerURL == "" || cfg.Adapter.RequestTimeout == 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Session.File == "" {
		return ErrInvalidSessionConfigs
	}

	return nil
}
