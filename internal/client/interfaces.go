// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/go-note-keeper/models"
)

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run(ctx context.Context) error
}

// UI is the part of the terminal front end the application drives.
type UI interface {
	LoginFlow(ctx context.Context, notice string) (models.User, error)
	MainLoop(ctx context.Context, user models.User) (logout, sessionLost bool, err error)
}
