// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run executes the command line in args and blocks until it finishes.
	Run(ctx context.Context, args []string) error
}
