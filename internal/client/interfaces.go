// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until the user quits or
	// ctx is cancelled.
	Run(ctx context.Context) error
}

// UI is the interactive front-end driven by [App].
type UI interface {
	Run(ctx context.Context) error
}

// Runner is a set of background workers started and stopped around the UI.
type Runner interface {
	Run(ctx context.Context)
	Stop()
}
