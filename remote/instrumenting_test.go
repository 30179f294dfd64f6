// SPDX-FileCopyrightText: 2025 badgesmith contributors
// SPDX-License-Identifier: Apache-2.0

package remote

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

type stubStore struct {
	err error
}

func (s *stubStore) ListTree(ctx context.Context, path string) ([]TreeEntry, error) {
	return nil, s.err
}

func (s *stubStore) ListCommits(ctx context.Context, page int) ([]Commit, error) {
	return nil, s.err
}

func (s *stubStore) WriteFile(ctx context.Context, path, message string, content []byte) error {
	return s.err
}

func TestInstrumentingStoreCounts(t *testing.T) {
	assert := assert.New(t)

	counter := prometheus.NewCounterVec(prometheus.CounterOpts{Name: OperationCounter}, []string{OperationLabel, OutcomeLabel})
	measures := Measures{Operations: counter}

	healthy := NewInstrumentingStore(&stubStore{}, measures)
	broken := NewInstrumentingStore(&stubStore{err: errors.New("boom")}, measures)

	ctx := context.Background()
	healthy.ListTree(ctx, "")
	healthy.WriteFile(ctx, "f", "m", nil)
	broken.ListCommits(ctx, 1)
	broken.WriteFile(ctx, "f", "m", nil)

	assert.Equal(float64(1), testutil.ToFloat64(counter.WithLabelValues(ListTreeOperation, SuccessOutcome)))
	assert.Equal(float64(1), testutil.ToFloat64(counter.WithLabelValues(WriteFileOperation, SuccessOutcome)))
	assert.Equal(float64(1), testutil.ToFloat64(counter.WithLabelValues(ListCommitsOperation, FailureOutcome)))
	assert.Equal(float64(1), testutil.ToFloat64(counter.WithLabelValues(WriteFileOperation, FailureOutcome)))
}
