// Billboard - Cinema Billboard Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/billboard

// Package services adapts Billboard's long-lived components to
// suture.Service: Serve(ctx) blocks until ctx is canceled and returns an
// error when the component fails, so the supervisor can restart it.
package services
