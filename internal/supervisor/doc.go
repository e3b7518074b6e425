// Itemrec - Related Item Recommendations for Product Catalogs
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/itemrec

/*
Package supervisor provides process supervision for itemrec using suture v4.

The tree separates the data layer from the API layer:

	RootSupervisor ("itemrec")
	├── DataSupervisor ("data-layer")
	│   └── WarmupService
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

The API keeps serving health probes and 503 responses while the data layer
is still loading or has failed.

Supervisor events (service start, failure, backoff, restart) are logged
through a *slog.Logger using sutureslog. In production the logger is
logging.NewSlogLogger("supervisor"), which forwards to zerolog.

Usage:

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger("supervisor"), supervisor.DefaultTreeConfig())
	if err != nil {
	    return err
	}
	tree.AddDataService(services.NewWarmupService(engine, warmupCfg, logger))
	tree.AddAPIService(services.NewHTTPServerService(srv, addr, timeout, logger))

	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
	    return err
	}
*/
package supervisor
