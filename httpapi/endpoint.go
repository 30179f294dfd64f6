// SPDX-FileCopyrightText: 2025 badgesmith contributors
// SPDX-License-Identifier: Apache-2.0

package httpapi

import (
	"context"

	"github.com/go-kit/kit/endpoint"

	"github.com/badgesmith/badgesmith/badges"
	"github.com/badgesmith/badgesmith/model"
)

// Service is the authoring capability the HTTP surface exposes. The badge
// engine satisfies it; tests substitute a mock.
type Service interface {
	CreateIssuer(ctx context.Context, in badges.IssuerInput) (model.Issuer, error)
	CreateClass(ctx context.Context, in badges.ClassInput) (model.Class, error)
	CreateBadge(ctx context.Context, className, email string) (model.Assertion, error)
	Classes() []badges.ClassRecord
}

func newCreateIssuerEndpoint(s Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		r := request.(*createIssuerRequest)
		issuer, err := s.CreateIssuer(ctx, r.input)
		if err != nil {
			return nil, err
		}
		return &issuer, nil
	}
}

func newCreateClassEndpoint(s Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		r := request.(*createClassRequest)
		class, err := s.CreateClass(ctx, r.input)
		if err != nil {
			return nil, err
		}
		return &class, nil
	}
}

func newCreateBadgeEndpoint(s Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		r := request.(*createBadgeRequest)
		assertion, err := s.CreateBadge(ctx, r.class, r.email)
		if err != nil {
			return nil, err
		}
		return &assertion, nil
	}
}

func newListClassesEndpoint(s Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		return s.Classes(), nil
	}
}
