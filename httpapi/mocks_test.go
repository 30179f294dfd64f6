// SPDX-FileCopyrightText: 2025 badgesmith contributors
// SPDX-License-Identifier: Apache-2.0

package httpapi

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/badgesmith/badgesmith/badges"
	"github.com/badgesmith/badgesmith/model"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) CreateIssuer(ctx context.Context, in badges.IssuerInput) (model.Issuer, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(model.Issuer), args.Error(1)
}

func (m *MockService) CreateClass(ctx context.Context, in badges.ClassInput) (model.Class, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(model.Class), args.Error(1)
}

func (m *MockService) CreateBadge(ctx context.Context, className, email string) (model.Assertion, error) {
	args := m.Called(ctx, className, email)
	return args.Get(0).(model.Assertion), args.Error(1)
}

func (m *MockService) Classes() []badges.ClassRecord {
	args := m.Called()
	records, _ := args.Get(0).([]badges.ClassRecord)
	return records
}
