// Itemrec - Related Item Recommendations for Product Catalogs
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/itemrec

/*
Package logging provides the process-wide zerolog logger used by itemrec.

Every component logs through zerolog. The global logger is configured once at
startup from the logging section of the application config, and components
derive child loggers with a "component" field:

	logging.Init(logging.Config{Level: "info", Format: "json"})
	log := logging.WithComponent("dataset")
	log.Info().Int("items", n).Msg("Catalog loaded")

# Request Context

HTTP middleware stores the chi request ID in the request context. Handlers and
the recommendation engine log through Ctx so every line for a request carries
the same request_id:

	ctx = logging.ContextWithRequestID(ctx, middleware.GetReqID(ctx))
	logging.Ctx(ctx).Debug().Str("item_id", id).Msg("Scoring")

# slog Bridge

The suture supervisor tree reports through log/slog. NewSlogLogger returns an
slog.Logger whose records are written by zerolog, so supervisor events share
the same format and level filtering as the rest of the process.

# Configuration

	LOG_LEVEL   trace, debug, info, warn, error (default: info)
	LOG_FORMAT  json or console (default: json)
	LOG_CALLER  include file:line (default: false)
*/
package logging
