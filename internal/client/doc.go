// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It ties the session restore, the terminal UI login flow and the notes
// main loop into a single process lifecycle.
package client
