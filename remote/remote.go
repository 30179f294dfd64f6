// SPDX-FileCopyrightText: 2025 badgesmith contributors
// SPDX-License-Identifier: Apache-2.0

package remote

import "context"

// CommitPageSize is the number of commits returned per history page. A page
// shorter than this signals that history is exhausted.
const CommitPageSize = 100

// EntryKind classifies one tree entry.
type EntryKind string

const (
	KindFile EntryKind = "file"
	KindDir  EntryKind = "dir"
)

// TreeEntry is a single name inside one directory level of the remote tree.
type TreeEntry struct {
	Name string
	Kind EntryKind
}

// Commit carries the parts of a remote commit this system cares about. Commit
// messages double as a parseable audit log, so Message is never empty for
// commits produced by this system.
type Commit struct {
	Message string
}

// TreeLister lists the remote content tree one directory level at a time.
type TreeLister interface {
	// ListTree returns the entries directly under path. The root of the
	// store is addressed by the empty path. Ordering is not guaranteed.
	ListTree(ctx context.Context, path string) ([]TreeEntry, error)
}

// HistoryLister pages through the remote commit history.
type HistoryLister interface {
	// ListCommits returns one page of commits, newest first. Pages are
	// 1-indexed. A page with fewer than CommitPageSize entries is the last.
	ListCommits(ctx context.Context, page int) ([]Commit, error)
}

// FileWriter creates or overwrites a single remote file. Each successful
// write produces exactly one commit carrying the given message.
type FileWriter interface {
	WriteFile(ctx context.Context, path, message string, content []byte) error
}

// Store is the full capability surface the badge engine needs from the
// remote content repository.
type Store interface {
	TreeLister
	HistoryLister
	FileWriter
}

// AllCommits drains the commit history, newest first, by paging until a
// short page is returned.
func AllCommits(ctx context.Context, h HistoryLister) ([]Commit, error) {
	var all []Commit
	for page := 1; ; page++ {
		commits, err := h.ListCommits(ctx, page)
		if err != nil {
			return nil, err
		}
		all = append(all, commits...)
		if len(commits) < CommitPageSize {
			return all, nil
		}
	}
}
