// Itemrec - Related Item Recommendations for Product Catalogs
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/itemrec

/*
Package services provides suture.Service wrappers for itemrec components.

HTTP Server (HTTPServerService):
  - Runs an *http.Server, shuts it down with a timeout on cancellation
  - A server that stops on its own is reported as a failure so the
    supervisor restarts it

Data Warm-up (WarmupService):
  - Triggers the engine's one-time catalog and rating log load at startup
  - Writes the loaded dataset to snapshot sinks (Badger, DuckDB)
  - Runs once and returns suture.ErrDoNotRestart

Every service implements fmt.Stringer so suture events name it.
*/
package services
