// SPDX-FileCopyrightText: 2025 badgesmith contributors
// SPDX-License-Identifier: Apache-2.0

package inmem

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/badgesmith/badgesmith/remote"
)

// InMem is a remote.Store held entirely in memory: a flat map of file paths
// plus an append-only commit log. Directories exist implicitly through the
// paths of the files they contain, which matches how a git tree behaves.
type InMem struct {
	lock  sync.Mutex
	files map[string][]byte
	// log holds commit messages oldest first; ListCommits serves them
	// newest first the way a real history API does.
	log []string
}

func New() *InMem {
	return &InMem{
		files: map[string][]byte{},
	}
}

var _ remote.Store = (*InMem)(nil)

func (i *InMem) ListTree(ctx context.Context, path string) ([]remote.TreeEntry, error) {
	i.lock.Lock()
	defer i.lock.Unlock()

	prefix := ""
	if path != "" {
		prefix = strings.TrimSuffix(path, "/") + "/"
	}

	found := false
	seen := map[string]remote.EntryKind{}
	for file := range i.files {
		if !strings.HasPrefix(file, prefix) {
			continue
		}
		found = true
		rest := strings.TrimPrefix(file, prefix)
		if name, _, nested := strings.Cut(rest, "/"); nested {
			seen[name] = remote.KindDir
		} else {
			seen[name] = remote.KindFile
		}
	}
	if !found {
		return nil, remote.ReadError{Operation: remote.ListTreeOperation, Path: path, Err: remote.ErrNotFound}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	// Sorted for reproducibility; callers must not rely on this.
	sort.Strings(names)

	entries := make([]remote.TreeEntry, 0, len(names))
	for _, name := range names {
		entries = append(entries, remote.TreeEntry{Name: name, Kind: seen[name]})
	}
	return entries, nil
}

func (i *InMem) ListCommits(ctx context.Context, page int) ([]remote.Commit, error) {
	if page < 1 {
		return nil, remote.ReadError{Operation: remote.ListCommitsOperation, Err: remote.ErrNonSuccessResponse}
	}

	i.lock.Lock()
	defer i.lock.Unlock()

	newestFirst := make([]string, 0, len(i.log))
	for idx := len(i.log) - 1; idx >= 0; idx-- {
		newestFirst = append(newestFirst, i.log[idx])
	}

	start := (page - 1) * remote.CommitPageSize
	if start >= len(newestFirst) {
		return nil, nil
	}
	end := start + remote.CommitPageSize
	if end > len(newestFirst) {
		end = len(newestFirst)
	}

	commits := make([]remote.Commit, 0, end-start)
	for _, message := range newestFirst[start:end] {
		commits = append(commits, remote.Commit{Message: message})
	}
	return commits, nil
}

func (i *InMem) WriteFile(ctx context.Context, path, message string, content []byte) error {
	i.lock.Lock()
	defer i.lock.Unlock()

	data := make([]byte, len(content))
	copy(data, content)
	i.files[path] = data
	i.log = append(i.log, message)
	return nil
}

// Content returns the current bytes of one file, for assertions in tests.
func (i *InMem) Content(path string) ([]byte, bool) {
	i.lock.Lock()
	defer i.lock.Unlock()
	data, ok := i.files[path]
	return data, ok
}

// CommitCount reports how many commits the log holds.
func (i *InMem) CommitCount() int {
	i.lock.Lock()
	defer i.lock.Unlock()
	return len(i.log)
}
