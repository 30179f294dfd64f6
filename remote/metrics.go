// SPDX-FileCopyrightText: 2025 badgesmith contributors
// SPDX-License-Identifier: Apache-2.0

package remote

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/xmidt-org/touchstone"
	"go.uber.org/fx"
)

// Names
const (
	OperationCounter = "remote_operations_total"
)

// Labels
const (
	OperationLabel = "operation"
	OutcomeLabel   = "outcome"
)

// Label Values
const (
	ListTreeOperation    = "list_tree"
	ListCommitsOperation = "list_commits"
	WriteFileOperation   = "write_file"

	SuccessOutcome = "success"
	FailureOutcome = "failure"
)

// ProvideMetrics returns the Metrics relevant to this package.
func ProvideMetrics() fx.Option {
	return fx.Options(
		touchstone.CounterVec(
			prometheus.CounterOpts{
				Name: OperationCounter,
				Help: "Counter for calls against the remote content store, labeled by operation and outcome.",
			},
			OperationLabel,
			OutcomeLabel,
		),
	)
}

type Measures struct {
	fx.In
	Operations *prometheus.CounterVec `name:"remote_operations_total"`
}
