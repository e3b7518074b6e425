// Itemrec - Related Item Recommendations for Product Catalogs
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/itemrec

package main

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/tomtom215/itemrec/internal/config"
	"github.com/tomtom215/itemrec/internal/recommend"
	"github.com/tomtom215/itemrec/internal/recommend/algorithms"
)

// buildEngineConfig maps the recommend section onto recommend.Config.
func buildEngineConfig(cfg *config.Config) *recommend.Config {
	engineCfg := recommend.DefaultConfig()
	engineCfg.Weights = recommend.FusionWeights{
		Content:       cfg.Recommend.ContentWeight,
		Collaborative: cfg.Recommend.CollaborativeWeight,
	}
	engineCfg.Limits.DefaultLimit = cfg.Recommend.DefaultLimit
	engineCfg.Cache.Enabled = cfg.Recommend.CacheEnabled
	engineCfg.Cache.TTL = cfg.Recommend.CacheTTL
	engineCfg.Cache.MaxEntries = cfg.Recommend.CacheMaxEntries
	engineCfg.Load.Timeout = cfg.Recommend.LoadTimeout

	return engineCfg
}

// initRecommend builds the engine with the content and co-rating scorers.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func initRecommend(cfg *config.Config, provider recommend.DataProvider, logger zerolog.Logger) (*recommend.Engine, error) {
	engineCfg := buildEngineConfig(cfg)

	engine, err := recommend.NewEngine(engineCfg, recommend.Dependencies{
		Provider: provider,
		Content:  algorithms.NewContentBased(),
		Collaborative: algorithms.NewCoRating(algorithms.CoRatingConfig{
			LikeThreshold:     cfg.Recommend.LikeThreshold,
			TitlePrefixLength: cfg.Recommend.ReasonTitleLength,
		}),
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("create engine: %w", err)
	}

	logger.Info().
		Float64("content_weight", engineCfg.Weights.Content).
		Float64("collaborative_weight", engineCfg.Weights.Collaborative).
		Float64("like_threshold", cfg.Recommend.LikeThreshold).
		Msg("recommendation engine initialized")

	return engine, nil
}
