// SPDX-FileCopyrightText: 2025 badgesmith contributors
// SPDX-License-Identifier: Apache-2.0

package badges

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStateIssuerFlag(t *testing.T) {
	assert := assert.New(t)

	s := NewState(false, nil)
	assert.False(s.HasIssuer())
	s.MarkIssuer()
	assert.True(s.HasIssuer())
}

func TestStateAppendClass(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	s := NewState(true, []ClassRecord{{Name: "Art"}})

	require.NoError(s.AppendClass("Math"))
	assert.True(s.HasClass("Math"))
	assert.ErrorIs(s.AppendClass("Math"), ErrClassExists)
	assert.ErrorIs(s.AppendClass("Art"), ErrClassExists)

	classes := s.Classes()
	require.Len(classes, 2)
	assert.Equal("Art", classes[0].Name)
	assert.Equal("Math", classes[1].Name)
}

func TestStateAppendBadge(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	s := NewState(true, []ClassRecord{{Name: "Art"}, {Name: "Math"}})

	require.NoError(s.AppendBadge("Math", "id1"))
	require.NoError(s.AppendBadge("Math", "id2"))
	assert.ErrorIs(s.AppendBadge("Chemistry", "id3"), ErrNoSuchClass)

	classes := s.Classes()
	assert.Equal([]string{"id1", "id2"}, classes[1].BadgeIDs)
}

// Badge id membership spans every class, not just the badge's own.
func TestStateContainsBadgeIDIsGlobal(t *testing.T) {
	assert := assert.New(t)

	s := NewState(true, []ClassRecord{
		{Name: "Art", BadgeIDs: []string{"aaa"}},
		{Name: "Math", BadgeIDs: []string{"bbb", "ccc"}},
	})

	assert.True(s.ContainsBadgeID("aaa"))
	assert.True(s.ContainsBadgeID("ccc"))
	assert.False(s.ContainsBadgeID("zzz"))
}

func TestStateClassesReturnsCopy(t *testing.T) {
	assert := assert.New(t)

	s := NewState(true, []ClassRecord{{Name: "Art", BadgeIDs: []string{"aaa"}}})

	classes := s.Classes()
	classes[0].Name = "Tampered"
	classes[0].BadgeIDs[0] = "tampered"

	fresh := s.Classes()
	assert.Equal("Art", fresh[0].Name)
	assert.Equal([]string{"aaa"}, fresh[0].BadgeIDs)
}
