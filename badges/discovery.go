// SPDX-FileCopyrightText: 2025 badgesmith contributors
// SPDX-License-Identifier: Apache-2.0

package badges

import (
	"context"
	"errors"
	"strings"

	"github.com/badgesmith/badgesmith/remote"
)

// Snapshot is the unordered structural view of the remote store: which
// classes exist and which badge ids each one holds. Ordering is imposed
// later by history reconciliation.
type Snapshot struct {
	IssuerPresent bool
	Classes       map[string][]string
}

// requiredIssuerFiles must all exist at the root once the store holds at
// least one class.
var requiredIssuerFiles = []string{IssuerFile, ImageFile, AwardPageFile}

// Discover walks the remote tree and classifies what it finds. The walk is
// exactly two levels deep: root entries are issuer files or class
// directories, class entries are the class files or badge assertions.
//
// A store that has classes but lacks any issuer file, or a class directory
// missing class.json or img.png, is corrupt relative to its own invariants
// and yields a StructuralError. Read failures from individual class listings
// are aggregated rather than reported one at a time.
func Discover(ctx context.Context, lister remote.TreeLister) (Snapshot, error) {
	snapshot := Snapshot{Classes: map[string][]string{}}

	rootEntries, err := lister.ListTree(ctx, "")
	if err != nil {
		if errors.Is(err, remote.ErrNotFound) {
			// Empty repository: a brand new store with nothing in it yet.
			return snapshot, nil
		}
		return Snapshot{}, err
	}

	rootFiles := map[string]bool{}
	var classDirs []string
	for _, entry := range rootEntries {
		if entry.Kind == remote.KindDir {
			classDirs = append(classDirs, entry.Name)
		} else {
			rootFiles[entry.Name] = true
		}
	}

	snapshot.IssuerPresent = rootFiles[IssuerFile]

	if len(classDirs) > 0 {
		for _, f := range requiredIssuerFiles {
			if !rootFiles[f] {
				return Snapshot{}, StructuralError{Subject: "issuer", Missing: f}
			}
		}
	}

	var readErrs []error
	for _, dir := range classDirs {
		badgeIDs, err := discoverClass(ctx, lister, dir)
		if err != nil {
			var structural StructuralError
			if errors.As(err, &structural) {
				return Snapshot{}, err
			}
			readErrs = append(readErrs, err)
			continue
		}
		snapshot.Classes[dir] = badgeIDs
	}
	if len(readErrs) > 0 {
		return Snapshot{}, errors.Join(readErrs...)
	}

	return snapshot, nil
}

// discoverClass validates one class directory and collects its badge ids.
func discoverClass(ctx context.Context, lister remote.TreeLister, dir string) ([]string, error) {
	entries, err := lister.ListTree(ctx, dir)
	if err != nil {
		return nil, err
	}

	files := map[string]bool{}
	var badgeIDs []string
	for _, entry := range entries {
		if entry.Kind != remote.KindFile {
			continue
		}
		files[entry.Name] = true
		if entry.Name == ClassFile || !strings.HasSuffix(entry.Name, jsonSuffix) {
			continue
		}
		badgeIDs = append(badgeIDs, strings.TrimSuffix(entry.Name, jsonSuffix))
	}

	if !files[ClassFile] {
		return nil, StructuralError{Subject: dir, Missing: ClassFile}
	}
	if !files[ImageFile] {
		return nil, StructuralError{Subject: dir, Missing: ImageFile}
	}
	return badgeIDs, nil
}
