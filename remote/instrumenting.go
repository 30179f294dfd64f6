// SPDX-FileCopyrightText: 2025 badgesmith contributors
// SPDX-License-Identifier: Apache-2.0

package remote

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
)

// instrumentingStore decorates a Store, counting every call by operation and
// outcome. Business behavior is untouched.
type instrumentingStore struct {
	store    Store
	measures Measures
}

// NewInstrumentingStore wraps s so every remote call is reflected in the
// package measures.
func NewInstrumentingStore(s Store, measures Measures) Store {
	return &instrumentingStore{store: s, measures: measures}
}

func (i *instrumentingStore) ListTree(ctx context.Context, path string) ([]TreeEntry, error) {
	entries, err := i.store.ListTree(ctx, path)
	i.count(ListTreeOperation, err)
	return entries, err
}

func (i *instrumentingStore) ListCommits(ctx context.Context, page int) ([]Commit, error) {
	commits, err := i.store.ListCommits(ctx, page)
	i.count(ListCommitsOperation, err)
	return commits, err
}

func (i *instrumentingStore) WriteFile(ctx context.Context, path, message string, content []byte) error {
	err := i.store.WriteFile(ctx, path, message, content)
	i.count(WriteFileOperation, err)
	return err
}

func (i *instrumentingStore) count(operation string, err error) {
	outcome := SuccessOutcome
	if err != nil {
		outcome = FailureOutcome
	}
	i.measures.Operations.With(prometheus.Labels{
		OperationLabel: operation,
		OutcomeLabel:   outcome,
	}).Inc()
}
