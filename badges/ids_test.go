// SPDX-FileCopyrightText: 2025 badgesmith contributors
// SPDX-License-Identifier: Apache-2.0

package badges

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomIDShape(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	hexes := regexp.MustCompile("^[0-9a-f]{24}$")
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		id, err := randomID()
		require.NoError(err)
		assert.Regexp(hexes, id)
		assert.False(seen[id], "generator repeated an id")
		seen[id] = true
	}
}

func TestUniqueIDRejectsCollisions(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	// Deterministic generator that collides twice before succeeding.
	sequence := []string{"taken1", "taken2", "fresh"}
	i := 0
	generate := func() (string, error) {
		id := sequence[i]
		i++
		return id, nil
	}
	used := func(id string) bool { return id == "taken1" || id == "taken2" }

	id, err := uniqueID(generate, used)
	require.NoError(err)
	assert.Equal("fresh", id)
	assert.Equal(3, i)
}

func TestUniqueIDRetryCap(t *testing.T) {
	assert := assert.New(t)

	calls := 0
	generate := func() (string, error) {
		calls++
		return "stuck", nil
	}
	used := func(string) bool { return true }

	_, err := uniqueID(generate, used)
	assert.ErrorIs(err, ErrTooManyIDCollisions)
	assert.Equal(maxIDAttempts, calls)
}
