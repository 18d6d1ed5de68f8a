// Copyright (c) 2026 The Wall Authors
// Licensed under the MIT License. See LICENSE file in the project root for details.

package backend

import (
	"wall/cli/internal/manifest"
)

// New creates a backend API implementation with the given endpoint table.
// Returns HTTP client (real backend).
func New(baseURL string, endpoints manifest.HTTPEndpoints, opts ...Option) API {
	return newHTTP(baseURL, endpoints, opts...)
}
