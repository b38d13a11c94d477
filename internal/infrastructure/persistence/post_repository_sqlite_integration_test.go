//go:build integration
// +build integration

package persistence

import (
	"context"
	"testing"

	"github.com/mahamudh472/GlobalCreoleSociety/internal/domain/social"
	"github.com/mahamudh472/GlobalCreoleSociety/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostRepository_FeedVisibility(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)
	ctx := context.Background()

	viewer := SeedTestUser(t, tc, "viewer")
	friend := SeedTestUser(t, tc, "friend")
	stranger := SeedTestUser(t, tc, "stranger")

	seed := []*social.Post{
		{AuthorID: viewer.ID, Content: "own private", Privacy: social.PrivacyPrivate, Status: social.PostStatusApproved},
		{AuthorID: friend.ID, Content: "friends only", Privacy: social.PrivacyFriends, Status: social.PostStatusApproved},
		{AuthorID: stranger.ID, Content: "public", Privacy: social.PrivacyPublic, Status: social.PostStatusApproved},
		{AuthorID: stranger.ID, Content: "hidden friends-only", Privacy: social.PrivacyFriends, Status: social.PostStatusApproved},
		{AuthorID: stranger.ID, Content: "pending", Privacy: social.PrivacyPublic, Status: social.PostStatusPending},
	}
	for _, p := range seed {
		require.NoError(t, tc.PostRepo.Create(ctx, p))
	}

	posts, total, err := tc.PostRepo.ListFeed(ctx, social.FeedFilter{
		ViewerID:  viewer.ID,
		FriendIDs: []string{friend.ID},
		Page:      1,
		PageSize:  20,
	})
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)

	contents := make([]string, 0, len(posts))
	for _, p := range posts {
		contents = append(contents, p.Content)
	}
	assert.ElementsMatch(t, []string{"own private", "friends only", "public"}, contents)
}

func TestPostRepository_FeedExcludesBlockedAuthors(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)
	ctx := context.Background()

	viewer := SeedTestUser(t, tc, "viewer-b")
	blocked := SeedTestUser(t, tc, "blocked-b")

	post := &social.Post{AuthorID: blocked.ID, Content: "public", Privacy: social.PrivacyPublic, Status: social.PostStatusApproved}
	require.NoError(t, tc.PostRepo.Create(ctx, post))

	_, total, err := tc.PostRepo.ListFeed(ctx, social.FeedFilter{
		ViewerID:        viewer.ID,
		ExcludedUserIDs: []string{blocked.ID},
		Page:            1,
		PageSize:        20,
	})
	require.NoError(t, err)
	assert.EqualValues(t, 0, total)
}

func TestPostRepository_LikesAndShares(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)
	ctx := context.Background()

	author := SeedTestUser(t, tc, "author-l")
	liker := SeedTestUser(t, tc, "liker-l")

	post := &social.Post{AuthorID: author.ID, Content: "likeable", Privacy: social.PrivacyPublic, Status: social.PostStatusApproved}
	require.NoError(t, tc.PostRepo.Create(ctx, post))

	require.NoError(t, tc.PostRepo.CreateLike(ctx, &social.PostLike{PostID: post.ID, UserID: liker.ID}))

	has, err := tc.PostRepo.HasLike(ctx, post.ID, liker.ID)
	require.NoError(t, err)
	assert.True(t, has)

	count, err := tc.PostRepo.CountLikes(ctx, post.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)

	received, err := tc.PostRepo.CountLikesReceived(ctx, author.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, received)

	share := &social.Post{AuthorID: liker.ID, Content: "sharing", Privacy: social.PrivacyPublic, Status: social.PostStatusApproved, SharedPostID: &post.ID}
	require.NoError(t, tc.PostRepo.Create(ctx, share))

	shares, err := tc.PostRepo.CountShares(ctx, post.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, shares)

	require.NoError(t, tc.PostRepo.DeleteLike(ctx, post.ID, liker.ID))
	has, err = tc.PostRepo.HasLike(ctx, post.ID, liker.ID)
	require.NoError(t, err)
	assert.False(t, has)
}

func TestCommentRepository_NestedReplies(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)
	ctx := context.Background()

	author := SeedTestUser(t, tc, "author-c")

	post := &social.Post{AuthorID: author.ID, Content: "post", Privacy: social.PrivacyPublic, Status: social.PostStatusApproved}
	require.NoError(t, tc.PostRepo.Create(ctx, post))

	top := &social.Comment{PostID: post.ID, AuthorID: author.ID, Content: "top"}
	require.NoError(t, tc.CommentRepo.Create(ctx, top))

	reply := &social.Comment{PostID: post.ID, AuthorID: author.ID, ParentID: &top.ID, Content: "reply"}
	require.NoError(t, tc.CommentRepo.Create(ctx, reply))

	topLevel, total, err := tc.CommentRepo.ListTopLevel(ctx, post.ID, 1, 20)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, topLevel, 1)
	assert.Equal(t, "top", topLevel[0].Content)

	replies, err := tc.CommentRepo.ListReplies(ctx, top.ID)
	require.NoError(t, err)
	require.Len(t, replies, 1)
	assert.Equal(t, "reply", replies[0].Content)

	// Deleting the parent removes its replies too.
	require.NoError(t, tc.CommentRepo.DeleteByID(ctx, top.ID))
	_, err = tc.CommentRepo.GetByID(ctx, reply.ID)
	assert.ErrorIs(t, err, social.ErrNotFound)
}
