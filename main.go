// SPDX-FileCopyrightText: 2025 badgesmith contributors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"github.com/xmidt-org/arrange"
	"github.com/xmidt-org/sallust"
	"github.com/xmidt-org/touchstone"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/badgesmith/badgesmith/badges"
	"github.com/badgesmith/badgesmith/httpapi"
	"github.com/badgesmith/badgesmith/remote"
	remotegithub "github.com/badgesmith/badgesmith/remote/github"
	remoteinmem "github.com/badgesmith/badgesmith/remote/inmem"
)

const applicationName = "badgesmith"

var (
	GitCommit = "undefined"
	Version   = "undefined"
	BuildTime = "undefined"
)

func main() {
	v, logger, err := setup(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	app := fx.New(
		arrange.LoggerFunc(logger.Sugar().Infof),
		arrange.ForViper(v),
		fx.Supply(logger, v, touchstone.Config{}),
		touchstone.Provide(),
		remote.ProvideMetrics(),
		httpapi.ProvideHandlers(),
		fx.Provide(
			provideConfig,
			provideRemote,
			provideEngine,
			func(e *badges.Engine) httpapi.Service { return e },
			newPrimaryRouter,
		),
		fx.Invoke(runServer),
	)

	switch err := app.Err(); {
	case errors.Is(err, pflag.ErrHelp):
		return
	case err == nil:
		app.Run()
	default:
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
}

func provideRemote(config appConfig, measures remote.Measures, logger *zap.Logger) (remote.Store, error) {
	var (
		store remote.Store
		err   error
	)
	switch config.Remote.Mode {
	case remoteModeInMem:
		store = remoteinmem.New()
	default:
		store, err = remotegithub.NewClient(remotegithub.ClientConfig{
			Owner:      config.Store.Owner,
			Repo:       config.Store.Repo,
			Branch:     config.Remote.Branch,
			Token:      config.Remote.Token,
			Timeout:    config.Remote.Timeout,
			APIBaseURL: config.Remote.APIBaseURL,
			Logger:     logger,
		}, sallust.Get)
		if err != nil {
			return nil, err
		}
	}
	return remote.NewInstrumentingStore(store, measures), nil
}

func provideEngine(lc fx.Lifecycle, config appConfig, store remote.Store, logger *zap.Logger) (*badges.Engine, error) {
	engine, err := badges.NewEngine(badges.EngineConfig{
		Remote: store,
		Store: badges.Config{
			Owner:   config.Store.Owner,
			Repo:    config.Store.Repo,
			BaseURL: config.Store.BaseURL,
		},
		Logger: logger,
	}, sallust.Get)
	if err != nil {
		return nil, err
	}

	// Reconciliation must complete before any mutation is served.
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return engine.Initialize(ctx)
		},
	})
	return engine, nil
}
