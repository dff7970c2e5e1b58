// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It wires the terminal UI and the client services into a single process
// lifecycle: restoring a persisted admin session on start and returning to
// the login screen after a logout.
package client
