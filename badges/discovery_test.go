// SPDX-FileCopyrightText: 2025 badgesmith contributors
// SPDX-License-Identifier: Apache-2.0

package badges

import (
	"context"
	"errors"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/badgesmith/badgesmith/remote"
	"github.com/badgesmith/badgesmith/remote/inmem"
)

// seed builds an in-memory remote with the given files present.
func seed(t *testing.T, paths ...string) *inmem.InMem {
	t.Helper()
	store := inmem.New()
	for _, p := range paths {
		require.NoError(t, store.WriteFile(context.Background(), p, "seed", []byte("x")))
	}
	return store
}

func TestDiscoverEmptyStore(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	snapshot, err := Discover(context.Background(), inmem.New())
	require.NoError(err)
	assert.False(snapshot.IssuerPresent)
	assert.Empty(snapshot.Classes)
}

func TestDiscoverFullStore(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	store := seed(t,
		"issuer.json", "img.png", "award.html",
		"Math/class.json", "Math/img.png", "Math/aaa.json", "Math/bbb.json",
		"Art/class.json", "Art/img.png",
	)

	snapshot, err := Discover(context.Background(), store)
	require.NoError(err)
	assert.True(snapshot.IssuerPresent)
	require.Len(snapshot.Classes, 2)

	mathIDs := snapshot.Classes["Math"]
	sort.Strings(mathIDs)
	assert.Equal([]string{"aaa", "bbb"}, mathIDs)
	assert.Empty(snapshot.Classes["Art"])
}

func TestDiscoverIssuerWithoutClasses(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	// No class yet, so a partially published issuer is not fatal.
	snapshot, err := Discover(context.Background(), seed(t, "issuer.json"))
	require.NoError(err)
	assert.True(snapshot.IssuerPresent)
	assert.Empty(snapshot.Classes)
}

func TestDiscoverStructuralErrors(t *testing.T) {
	tcs := []struct {
		Description     string
		Paths           []string
		ExpectedSubject string
		ExpectedMissing string
	}{
		{
			Description:     "Classes without issuer files",
			Paths:           []string{"Math/class.json", "Math/img.png"},
			ExpectedSubject: "issuer",
			ExpectedMissing: "issuer.json",
		},
		{
			Description: "Missing award page",
			Paths: []string{
				"issuer.json", "img.png",
				"Math/class.json", "Math/img.png",
			},
			ExpectedSubject: "issuer",
			ExpectedMissing: "award.html",
		},
		{
			Description: "Class missing metadata",
			Paths: []string{
				"issuer.json", "img.png", "award.html",
				"Math/img.png",
			},
			ExpectedSubject: "Math",
			ExpectedMissing: "class.json",
		},
		{
			Description: "Class missing image",
			Paths: []string{
				"issuer.json", "img.png", "award.html",
				"Math/class.json", "Math/aaa.json",
			},
			ExpectedSubject: "Math",
			ExpectedMissing: "img.png",
		},
	}

	for _, tc := range tcs {
		t.Run(tc.Description, func(t *testing.T) {
			assert := assert.New(t)
			require := require.New(t)

			_, err := Discover(context.Background(), seed(t, tc.Paths...))

			var structural StructuralError
			require.ErrorAs(err, &structural)
			assert.Equal(tc.ExpectedSubject, structural.Subject)
			assert.Equal(tc.ExpectedMissing, structural.Missing)
		})
	}
}

// Read failures on class listings surface as one aggregated error instead of
// being swallowed per subtree.
func TestDiscoverAggregatesReadFailures(t *testing.T) {
	assert := assert.New(t)

	boom := errors.New("boom")
	store := new(MockStore)
	store.On("ListTree", mock.Anything, "").Return([]remote.TreeEntry{
		{Name: "issuer.json", Kind: remote.KindFile},
		{Name: "img.png", Kind: remote.KindFile},
		{Name: "award.html", Kind: remote.KindFile},
		{Name: "Math", Kind: remote.KindDir},
		{Name: "Art", Kind: remote.KindDir},
	}, nil)
	store.On("ListTree", mock.Anything, "Math").Return(nil, remote.ReadError{Operation: remote.ListTreeOperation, Path: "Math", Err: boom})
	store.On("ListTree", mock.Anything, "Art").Return(nil, remote.ReadError{Operation: remote.ListTreeOperation, Path: "Art", Err: boom})

	_, err := Discover(context.Background(), store)
	assert.Error(err)
	assert.Contains(err.Error(), "Math")
	assert.Contains(err.Error(), "Art")
	store.AssertExpectations(t)
}
