// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive wallet client runtime.
//
// It ties the terminal UI, the wallet services and the background workers
// (balance watcher, optional debug API) into a single process lifecycle.
package client
