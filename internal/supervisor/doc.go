// Billboard - Cinema Billboard Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/billboard

// Package supervisor runs Billboard's long-lived services under a
// thejerf/suture/v4 tree.
//
//	billboard (root)
//	├── data-layer   cache maintenance
//	└── api-layer    HTTP server
//
// A crashing service is restarted with suture's backoff without affecting
// the other layer. Supervisor events are logged through sutureslog, which
// takes the slog bridge from internal/logging.
//
//	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
//	tree.AddDataService(services.NewCacheMaintenanceService(keywordCache, 10*time.Minute))
//	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))
//	err = tree.Serve(ctx)
package supervisor
