// SPDX-FileCopyrightText: 2025 badgesmith contributors
// SPDX-License-Identifier: Apache-2.0

package badges

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/badgesmith/badgesmith/remote"
)

func commitLog(messages ...string) []remote.Commit {
	commits := make([]remote.Commit, 0, len(messages))
	for _, m := range messages {
		commits = append(commits, remote.Commit{Message: m})
	}
	return commits
}

func classNames(records []ClassRecord) []string {
	names := make([]string, 0, len(records))
	for _, r := range records {
		names = append(names, r.Name)
	}
	return names
}

// Math was created second, Art first; the log is newest first.
func TestReconcileCreationOrder(t *testing.T) {
	assert := assert.New(t)

	snapshot := Snapshot{Classes: map[string][]string{
		"Math": nil,
		"Art":  nil,
	}}
	commits := commitLog(
		"Add metadata for class 'Math'",
		"Add metadata for class 'Art'",
	)

	records := Reconcile(commits, snapshot)
	assert.Equal([]string{"Art", "Math"}, classNames(records))
}

// A metadata update repeats the creation message. The class must appear once,
// at the position of its creation commit, not its newest update.
func TestReconcileUpdateDoesNotReorder(t *testing.T) {
	assert := assert.New(t)

	snapshot := Snapshot{Classes: map[string][]string{
		"X": nil,
		"Y": nil,
	}}
	// newest first: update to X, creation of Y, creation of X
	commits := commitLog(
		"Add metadata for class 'X'",
		"Add metadata for class 'Y'",
		"Add metadata for class 'X'",
	)

	records := Reconcile(commits, snapshot)
	assert.Equal([]string{"X", "Y"}, classNames(records))
}

// A class referenced in history but gone from the tree is not materialized.
func TestReconcileSkipsDeletedClasses(t *testing.T) {
	assert := assert.New(t)

	snapshot := Snapshot{Classes: map[string][]string{"Math": nil}}
	commits := commitLog(
		"Add metadata for class 'Math'",
		"Add metadata for class 'Deleted'",
	)

	records := Reconcile(commits, snapshot)
	assert.Equal([]string{"Math"}, classNames(records))
}

// A class present structurally but missing from history is appended after the
// ordered ones, exactly once.
func TestReconcileGapClasses(t *testing.T) {
	assert := assert.New(t)

	snapshot := Snapshot{Classes: map[string][]string{
		"Math":   nil,
		"Orphan": nil,
		"Art":    nil,
	}}
	commits := commitLog(
		"Add metadata for class 'Math'",
		"Add metadata for class 'Art'",
	)

	records := Reconcile(commits, snapshot)
	assert.Equal([]string{"Art", "Math", "Orphan"}, classNames(records))
}

// Output depends only on the snapshot contents and the log, never on map
// iteration order.
func TestReconcileDeterminism(t *testing.T) {
	assert := assert.New(t)

	snapshot := Snapshot{Classes: map[string][]string{
		"A": nil, "B": nil, "C": nil, "D": nil, "E": nil,
	}}
	commits := commitLog(
		"Add metadata for class 'C'",
		"Add metadata for class 'A'",
	)

	first := classNames(Reconcile(commits, snapshot))
	for i := 0; i < 20; i++ {
		assert.Equal(first, classNames(Reconcile(commits, snapshot)))
	}
	assert.Equal([]string{"A", "C", "B", "D", "E"}, first)
}

// Non-creation commits never influence ordering.
func TestReconcileIgnoresOtherMessages(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	snapshot := Snapshot{Classes: map[string][]string{
		"Math": {"b2", "b1"},
	}}
	commits := commitLog(
		"Add badge 'b2' in class 'Math'",
		"Add image for class 'Math'",
		"Add metadata for class 'Math'",
		"Add metadata for an issuer 'ACME'",
		"Initial commit",
	)

	records := Reconcile(commits, snapshot)
	require.Len(records, 1)
	assert.Equal("Math", records[0].Name)
	assert.Equal([]string{"b1", "b2"}, records[0].BadgeIDs)
}
