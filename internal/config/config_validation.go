// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"net/url"

	"golang.org/x/crypto/bcrypt"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// server invariants before it is used at startup. All violations are
// reported together.
func (cfg *StructuredConfig) validate() error {
	var errs []error

	if cfg.Storage.DB.DSN == "" {
		errs = append(errs, ErrEmptyDSN)
	}
	if cfg.App.TokenSignKey == "" {
		errs = append(errs, ErrEmptyTokenSignKey)
	}
	if cfg.Server.HTTPAddress == "" {
		errs = append(errs, ErrEmptyHTTPAddress)
	}
	if cfg.App.TokenDuration <= 0 || cfg.Server.RequestTimeout <= 0 {
		errs = append(errs, ErrInvalidDuration)
	}
	if cfg.App.BCryptCost < bcrypt.MinCost || cfg.App.BCryptCost > bcrypt.MaxCost {
		errs = append(errs, ErrInvalidBCryptCost)
	}
	if cfg.Server.AuthRateLimit <= 0 || cfg.Server.AuthRateBurst <= 0 {
		errs = append(errs, ErrInvalidRateLimit)
	}

	return errors.Join(errs...)
}

func (cfg *ClientConfig) validate() error {
	serverURL, err := url.Parse(cfg.ServerURL)
	if err != nil || serverURL.Scheme == "" || serverURL.Host == "" {
		return ErrInvalidAdapterConfigs
	}

	if cfg.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.SessionFile == "" {
		return ErrInvalidStorageConfigs
	}

	return nil
}
