// SPDX-FileCopyrightText: 2025 badgesmith contributors
// SPDX-License-Identifier: Apache-2.0

package httpapi

import (
	"net/http"

	kithttp "github.com/go-kit/kit/transport/http"
	"go.uber.org/fx"
)

// Handler is one fully assembled authoring route.
type Handler http.Handler

// ProvideHandlers builds the four authoring handlers for the primary server.
func ProvideHandlers() fx.Option {
	return fx.Provide(
		fx.Annotated{
			Name:   "create_issuer_handler",
			Target: newCreateIssuerHandler,
		},
		fx.Annotated{
			Name:   "create_class_handler",
			Target: newCreateClassHandler,
		},
		fx.Annotated{
			Name:   "create_badge_handler",
			Target: newCreateBadgeHandler,
		},
		fx.Annotated{
			Name:   "list_classes_handler",
			Target: newListClassesHandler,
		},
	)
}

func newCreateIssuerHandler(s Service) Handler {
	return kithttp.NewServer(
		newCreateIssuerEndpoint(s),
		decodeCreateIssuerRequest,
		encodeCreatedResponse,
		kithttp.ServerErrorEncoder(encodeError),
	)
}

func newCreateClassHandler(s Service) Handler {
	return kithttp.NewServer(
		newCreateClassEndpoint(s),
		decodeCreateClassRequest,
		encodeCreatedResponse,
		kithttp.ServerErrorEncoder(encodeError),
	)
}

func newCreateBadgeHandler(s Service) Handler {
	return kithttp.NewServer(
		newCreateBadgeEndpoint(s),
		decodeCreateBadgeRequest,
		encodeCreatedResponse,
		kithttp.ServerErrorEncoder(encodeError),
	)
}

func newListClassesHandler(s Service) Handler {
	return kithttp.NewServer(
		newListClassesEndpoint(s),
		decodeListClassesRequest,
		encodeListClassesResponse,
		kithttp.ServerErrorEncoder(encodeError),
	)
}
