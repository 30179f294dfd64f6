// SPDX-FileCopyrightText: 2025 badgesmith contributors
// SPDX-License-Identifier: Apache-2.0

package badges

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/badgesmith/badgesmith/remote"
)

type MockStore struct {
	mock.Mock
}

func (m *MockStore) ListTree(ctx context.Context, path string) ([]remote.TreeEntry, error) {
	args := m.Called(ctx, path)
	entries, _ := args.Get(0).([]remote.TreeEntry)
	return entries, args.Error(1)
}

func (m *MockStore) ListCommits(ctx context.Context, page int) ([]remote.Commit, error) {
	args := m.Called(ctx, page)
	commits, _ := args.Get(0).([]remote.Commit)
	return commits, args.Error(1)
}

func (m *MockStore) WriteFile(ctx context.Context, path, message string, content []byte) error {
	args := m.Called(ctx, path, message, content)
	return args.Error(0)
}
