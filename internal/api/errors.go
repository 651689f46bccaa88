// Billboard - Cinema Billboard Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/billboard

package api

import "errors"

// ErrInvalidQueryParameter marks a query parameter that could not be parsed.
var ErrInvalidQueryParameter = errors.New("invalid query parameter")
