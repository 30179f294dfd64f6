// SPDX-FileCopyrightText: 2025 badgesmith contributors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"net"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/justinas/alice"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/xmidt-org/httpaux"
	"github.com/xmidt-org/httpaux/recovery"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/badgesmith/badgesmith/httpapi"
)

const apiBase = "/api/v1"

type PrimaryRouterIn struct {
	fx.In
	CreateIssuer httpapi.Handler `name:"create_issuer_handler"`
	CreateClass  httpapi.Handler `name:"create_class_handler"`
	CreateBadge  httpapi.Handler `name:"create_badge_handler"`
	ListClasses  httpapi.Handler `name:"list_classes_handler"`
	Gatherer     prometheus.Gatherer
}

func newPrimaryRouter(in PrimaryRouterIn) *mux.Router {
	router := mux.NewRouter()

	chain := alice.New(recovery.Middleware())

	api := router.PathPrefix(apiBase).Subrouter()
	api.Handle("/issuer", chain.Then(in.CreateIssuer)).Methods(http.MethodPut)
	api.Handle("/classes", chain.Then(in.CreateClass)).Methods(http.MethodPost)
	api.Handle("/classes", chain.Then(in.ListClasses)).Methods(http.MethodGet)
	api.Handle("/classes/{class}/badges", chain.Then(in.CreateBadge)).Methods(http.MethodPost)

	router.Handle("/metrics", promhttp.HandlerFor(in.Gatherer, promhttp.HandlerOpts{})).Methods(http.MethodGet)
	router.Handle("/health", httpaux.ConstantHandler{StatusCode: http.StatusOK}).Methods(http.MethodGet)

	return router
}

func runServer(lc fx.Lifecycle, config appConfig, router *mux.Router, logger *zap.Logger) {
	server := &http.Server{
		Addr:    config.Server.Address,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			listener, err := net.Listen("tcp", server.Addr)
			if err != nil {
				return err
			}
			logger.Info("primary server listening", zap.String("address", server.Addr))
			go func() {
				if err := server.Serve(listener); err != nil && err != http.ErrServerClosed {
					logger.Error("primary server failed", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return server.Shutdown(ctx)
		},
	})
}
