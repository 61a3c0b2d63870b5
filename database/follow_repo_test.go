package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFollowIsIdempotent(t *testing.T) {
	d := testDB(t)
	follower := mustUser(t, d, "jake@jake.jake", "jake")
	followee := mustUser(t, d, "anne@jake.jake", "anne")

	require.NoError(t, d.FollowRepo().Follow(follower.ID, followee.ID))
	require.NoError(t, d.FollowRepo().Follow(follower.ID, followee.ID))

	following, err := d.FollowRepo().IsFollowing(follower.ID, followee.ID)
	require.NoError(t, err)
	assert.True(t, following)

	// Directional relation
	reverse, err := d.FollowRepo().IsFollowing(followee.ID, follower.ID)
	require.NoError(t, err)
	assert.False(t, reverse)
}

func TestUnfollowWithoutFollowIsNoOp(t *testing.T) {
	d := testDB(t)
	follower := mustUser(t, d, "jake@jake.jake", "jake")
	followee := mustUser(t, d, "anne@jake.jake", "anne")

	require.NoError(t, d.FollowRepo().Unfollow(follower.ID, followee.ID))

	following, err := d.FollowRepo().IsFollowing(follower.ID, followee.ID)
	require.NoError(t, err)
	assert.False(t, following)
}
