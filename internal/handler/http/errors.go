// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrInvalidJSON is returned when a request body cannot be decoded.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrInvalidLimit is returned when the activity limit query parameter is
	// not an integer in 1..store.MaxListLimit.
	ErrInvalidLimit = errors.New("limit must be an integer between 1 and 100")
)
