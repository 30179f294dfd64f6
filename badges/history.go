// SPDX-FileCopyrightText: 2025 badgesmith contributors
// SPDX-License-Identifier: Apache-2.0

package badges

import (
	"sort"

	"github.com/badgesmith/badgesmith/remote"
)

// Reconcile merges the unordered structural snapshot with the commit history
// into the creation-ordered class sequence, oldest created first.
//
// The tree listing carries no ordering at all; the commit log does, newest
// first. Class creation is marked by the class metadata commit message. The
// log is walked oldest-first (back to front), keeping the first occurrence
// of each name: that first occurrence is the creation commit, so the result
// comes out oldest-created-first directly. Later commits repeating the same
// name (metadata updates) must neither duplicate nor reorder the class, and
// skipping everything after the first occurrence guarantees that.
//
// Two kinds of mismatch between the sources are tolerated:
//   - a name in history but not in the snapshot belongs to a class deleted
//     from the tree; it is not materialized.
//   - a class in the snapshot with no creation commit (truncated history, or
//     a store predating the message convention) is appended after the
//     ordered ones rather than dropped. Gap classes sort by name so the
//     result stays deterministic.
//
// Badge ids within each class come from the snapshot and are sorted, since
// the tree gives no issuance order to preserve.
func Reconcile(commits []remote.Commit, snapshot Snapshot) []ClassRecord {
	seen := map[string]bool{}
	ordered := make([]string, 0, len(snapshot.Classes))
	for i := len(commits) - 1; i >= 0; i-- {
		name, ok := parseClassCreation(commits[i].Message)
		if !ok || seen[name] {
			continue
		}
		seen[name] = true
		if _, exists := snapshot.Classes[name]; !exists {
			continue
		}
		ordered = append(ordered, name)
	}

	var gaps []string
	for name := range snapshot.Classes {
		if !seen[name] {
			gaps = append(gaps, name)
		}
	}
	sort.Strings(gaps)
	ordered = append(ordered, gaps...)

	records := make([]ClassRecord, 0, len(ordered))
	for _, name := range ordered {
		ids := append([]string{}, snapshot.Classes[name]...)
		sort.Strings(ids)
		records = append(records, ClassRecord{Name: name, BadgeIDs: ids})
	}
	return records
}
