// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

// ErrDebugDisabled is returned by [NewDebugServer] when no listen address is
// configured. The debug API is off by default.
var ErrDebugDisabled = errors.New("debug server is disabled: no address configured")
