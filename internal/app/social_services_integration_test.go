//go:build integration
// +build integration

package app

import (
	"context"
	"testing"

	"github.com/mahamudh472/GlobalCreoleSociety/internal/domain/accounts"
	"github.com/mahamudh472/GlobalCreoleSociety/internal/domain/chat"
	"github.com/mahamudh472/GlobalCreoleSociety/internal/domain/social"
	"github.com/mahamudh472/GlobalCreoleSociety/internal/pkg/config"

	"github.com/stretchr/testify/require"
)

// makeFriends sends a request from a to b and accepts it.
func makeFriends(t *testing.T, services *TestServices, a, b *accounts.User) {
	t.Helper()
	ctx := context.Background()

	_, err := services.FriendService.SendRequest(ctx, a.ID, b.ID)
	require.NoError(t, err)
	_, err = services.FriendService.Respond(ctx, b.ID, a.ID, FriendActionAccept)
	require.NoError(t, err)
}

func TestFriendService_Lifecycle(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	amelie := registerTestUser(t, services, "amelie")
	bruno := registerTestUser(t, services, "bruno")

	_, err := services.FriendService.SendRequest(ctx, amelie.ID, bruno.ID)
	require.NoError(t, err)

	status, err := services.FriendService.Status(ctx, amelie.ID, bruno.ID)
	require.NoError(t, err)
	require.Equal(t, accounts.FriendshipPendingSent, status)

	incoming, err := services.FriendService.ListIncoming(ctx, bruno.ID)
	require.NoError(t, err)
	require.Len(t, incoming, 1)
	require.Equal(t, amelie.ID, incoming[0].RequesterID)

	_, err = services.FriendService.Respond(ctx, bruno.ID, amelie.ID, FriendActionAccept)
	require.NoError(t, err)

	status, err = services.FriendService.Status(ctx, amelie.ID, bruno.ID)
	require.NoError(t, err)
	require.Equal(t, accounts.FriendshipFriends, status)

	// Accepting a request opens a conversation between the pair.
	_, err = services.DBContext.ChatRepo.GetConversationByPair(ctx, amelie.ID, bruno.ID)
	require.NoError(t, err)

	require.NoError(t, services.FriendService.Unfriend(ctx, amelie.ID, bruno.ID))

	status, err = services.FriendService.Status(ctx, amelie.ID, bruno.ID)
	require.NoError(t, err)
	require.Equal(t, accounts.FriendshipNone, status)
}

func TestFriendService_Respond_Reject_DeletesRequest(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	amelie := registerTestUser(t, services, "amelie")
	bruno := registerTestUser(t, services, "bruno")

	_, err := services.FriendService.SendRequest(ctx, amelie.ID, bruno.ID)
	require.NoError(t, err)

	_, err = services.FriendService.Respond(ctx, bruno.ID, amelie.ID, FriendActionReject)
	require.NoError(t, err)

	status, err := services.FriendService.Status(ctx, amelie.ID, bruno.ID)
	require.NoError(t, err)
	require.Equal(t, accounts.FriendshipNone, status)
}

func TestFriendService_SendRequest_Fail_Blocked(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	amelie := registerTestUser(t, services, "amelie")
	bruno := registerTestUser(t, services, "bruno")

	require.NoError(t, services.BlockService.Block(ctx, bruno.ID, amelie.ID))

	_, err := services.FriendService.SendRequest(ctx, amelie.ID, bruno.ID)
	require.ErrorIs(t, err, accounts.ErrNotFound)
}

func TestFriendService_Suggestions_ExcludesLinkedUsers(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	amelie := registerTestUser(t, services, "amelie")
	bruno := registerTestUser(t, services, "bruno")
	chantal := registerTestUser(t, services, "chantal")

	makeFriends(t, services, amelie, bruno)

	suggestions, err := services.FriendService.Suggestions(ctx, amelie.ID, 10)
	require.NoError(t, err)
	require.Len(t, suggestions, 1)
	require.Equal(t, chantal.ID, suggestions[0].ID)
}

func TestPostService_Feed_Visibility(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	amelie := registerTestUser(t, services, "amelie")
	bruno := registerTestUser(t, services, "bruno")
	chantal := registerTestUser(t, services, "chantal")

	makeFriends(t, services, amelie, bruno)

	// Friends-only post by a friend is visible; by a stranger it is not.
	_, err := services.PostService.Create(ctx, bruno.ID, social.CreatePostInput{
		Content: "from a friend",
		Privacy: social.PrivacyFriends,
	})
	require.NoError(t, err)

	_, err = services.PostService.Create(ctx, chantal.ID, social.CreatePostInput{
		Content: "from a stranger",
		Privacy: social.PrivacyFriends,
	})
	require.NoError(t, err)

	_, err = services.PostService.Create(ctx, chantal.ID, social.CreatePostInput{
		Content: "public by a stranger",
		Privacy: social.PrivacyPublic,
	})
	require.NoError(t, err)

	feed, err := services.PostService.Feed(ctx, amelie.ID, 1, 20)
	require.NoError(t, err)
	require.Len(t, feed.Posts, 2)

	contents := []string{feed.Posts[0].Content, feed.Posts[1].Content}
	require.Contains(t, contents, "from a friend")
	require.Contains(t, contents, "public by a stranger")
}

func TestPostService_Feed_PublicSocietyAndOwnPending(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	admin := registerTestUser(t, services, "amelie")
	member := registerTestUser(t, services, "bruno")
	outsider := registerTestUser(t, services, "chantal")

	society, err := services.SocietyService.Create(ctx, admin.ID, social.CreateSocietyInput{
		Name:    "Creole Cooks",
		Privacy: social.SocietyPublic,
	})
	require.NoError(t, err)

	// Admin posts are approved immediately.
	_, err = services.PostService.Create(ctx, admin.ID, social.CreatePostInput{
		Content:   "open kitchen",
		Privacy:   social.PrivacyPublic,
		SocietyID: &society.ID,
	})
	require.NoError(t, err)

	_, err = services.SocietyService.Join(ctx, member.ID, society.ID)
	require.NoError(t, err)
	pending, err := services.PostService.Create(ctx, member.ID, social.CreatePostInput{
		Content:   "awaiting review",
		Privacy:   social.PrivacyPublic,
		SocietyID: &society.ID,
	})
	require.NoError(t, err)
	require.Equal(t, social.PostStatusPending, pending.Status)

	// Public-society posts reach users who never joined, pending ones
	// do not.
	feed, err := services.PostService.Feed(ctx, outsider.ID, 0, 0)
	require.NoError(t, err)
	require.Equal(t, 10, feed.PageSize)
	require.Len(t, feed.Posts, 1)
	require.Equal(t, "open kitchen", feed.Posts[0].Content)

	// The author still sees their own pending post.
	feed, err = services.PostService.Feed(ctx, member.ID, 1, 20)
	require.NoError(t, err)
	require.Len(t, feed.Posts, 2)
}

func TestPostService_ToggleLike_NotifiesAuthor(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	amelie := registerTestUser(t, services, "amelie")
	bruno := registerTestUser(t, services, "bruno")

	post, err := services.PostService.Create(ctx, amelie.ID, social.CreatePostInput{
		Content: "hello",
		Privacy: social.PrivacyPublic,
	})
	require.NoError(t, err)

	liked, err := services.PostService.ToggleLike(ctx, bruno.ID, post.ID)
	require.NoError(t, err)
	require.True(t, liked)

	count, err := services.NotificationService.UnreadCount(ctx, amelie.ID)
	require.NoError(t, err)
	require.Equal(t, int64(1), count)

	liked, err = services.PostService.ToggleLike(ctx, bruno.ID, post.ID)
	require.NoError(t, err)
	require.False(t, liked)
}

func TestPostService_Share_PointsAtOriginal(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	amelie := registerTestUser(t, services, "amelie")
	bruno := registerTestUser(t, services, "bruno")

	post, err := services.PostService.Create(ctx, amelie.ID, social.CreatePostInput{
		Content: "original",
		Privacy: social.PrivacyPublic,
	})
	require.NoError(t, err)

	share, err := services.PostService.Share(ctx, bruno.ID, post.ID, "look at this", social.PrivacyPublic)
	require.NoError(t, err)
	require.NotNil(t, share.SharedPostID)
	require.Equal(t, post.ID, *share.SharedPostID)

	got, err := services.PostService.Get(ctx, amelie.ID, post.ID)
	require.NoError(t, err)
	require.Equal(t, int64(1), got.ShareCount)
}

func TestCommentService_ReplyNesting_SingleLevel(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	amelie := registerTestUser(t, services, "amelie")

	post, err := services.PostService.Create(ctx, amelie.ID, social.CreatePostInput{
		Content: "hello",
		Privacy: social.PrivacyPublic,
	})
	require.NoError(t, err)

	top, err := services.CommentService.Create(ctx, amelie.ID, post.ID, nil, "top level")
	require.NoError(t, err)

	reply, err := services.CommentService.Create(ctx, amelie.ID, post.ID, &top.ID, "a reply")
	require.NoError(t, err)
	require.Equal(t, top.ID, *reply.ParentID)

	// Replying to a reply attaches to the top-level comment.
	deep, err := services.CommentService.Create(ctx, amelie.ID, post.ID, &reply.ID, "reply to a reply")
	require.NoError(t, err)
	require.Equal(t, top.ID, *deep.ParentID)

	replies, err := services.CommentService.ListReplies(ctx, amelie.ID, top.ID)
	require.NoError(t, err)
	require.Len(t, replies, 2)
}

func TestSocietyService_MemberPost_RequiresModeration(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	admin := registerTestUser(t, services, "amelie")
	member := registerTestUser(t, services, "bruno")

	society, err := services.SocietyService.Create(ctx, admin.ID, social.CreateSocietyInput{
		Name:    "Creole Cooks",
		Privacy: social.PrivacyPublic,
	})
	require.NoError(t, err)

	_, err = services.SocietyService.Join(ctx, member.ID, society.ID)
	require.NoError(t, err)

	post, err := services.PostService.Create(ctx, member.ID, social.CreatePostInput{
		Content:   "my first recipe",
		Privacy:   social.PrivacyPublic,
		SocietyID: &society.ID,
	})
	require.NoError(t, err)
	require.Equal(t, social.PostStatusPending, post.Status)

	// Not in the society page until approved.
	page, err := services.SocietyService.Posts(ctx, member.ID, society.ID, 1, 20)
	require.NoError(t, err)
	require.Empty(t, page.Posts)

	pending, err := services.SocietyService.PendingPosts(ctx, admin.ID, society.ID)
	require.NoError(t, err)
	require.Len(t, pending, 1)

	approved, err := services.SocietyService.ModeratePost(ctx, admin.ID, society.ID, post.ID, ModerationApprove)
	require.NoError(t, err)
	require.Equal(t, social.PostStatusApproved, approved.Status)

	page, err = services.SocietyService.Posts(ctx, member.ID, society.ID, 1, 20)
	require.NoError(t, err)
	require.Len(t, page.Posts, 1)
}

func TestSocietyService_PendingPosts_Fail_NotModerator(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	admin := registerTestUser(t, services, "amelie")
	member := registerTestUser(t, services, "bruno")

	society, err := services.SocietyService.Create(ctx, admin.ID, social.CreateSocietyInput{
		Name:    "Creole Cooks",
		Privacy: social.PrivacyPublic,
	})
	require.NoError(t, err)

	_, err = services.SocietyService.Join(ctx, member.ID, society.ID)
	require.NoError(t, err)

	_, err = services.SocietyService.PendingPosts(ctx, member.ID, society.ID)
	require.ErrorIs(t, err, social.ErrForbidden)
}

func TestSocietyService_Leave_Fail_LastAdmin(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	admin := registerTestUser(t, services, "amelie")

	society, err := services.SocietyService.Create(ctx, admin.ID, social.CreateSocietyInput{
		Name:    "Creole Cooks",
		Privacy: social.PrivacyPublic,
	})
	require.NoError(t, err)

	err = services.SocietyService.Leave(ctx, admin.ID, society.ID)
	require.ErrorIs(t, err, social.ErrForbidden)
}

func TestBlockService_Block_SeversFriendship(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	amelie := registerTestUser(t, services, "amelie")
	bruno := registerTestUser(t, services, "bruno")

	makeFriends(t, services, amelie, bruno)

	require.NoError(t, services.BlockService.Block(ctx, amelie.ID, bruno.ID))

	status, err := services.FriendService.Status(ctx, amelie.ID, bruno.ID)
	require.NoError(t, err)
	require.Equal(t, accounts.FriendshipNone, status)

	blocked, err := services.BlockService.IsBlockedEither(ctx, bruno.ID, amelie.ID)
	require.NoError(t, err)
	require.True(t, blocked)
}

func TestBlockService_Block_Idempotent(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	amelie := registerTestUser(t, services, "amelie")
	bruno := registerTestUser(t, services, "bruno")

	require.NoError(t, services.BlockService.Block(ctx, amelie.ID, bruno.ID))
	require.NoError(t, services.BlockService.Block(ctx, amelie.ID, bruno.ID))

	users, err := services.BlockService.ListBlocked(ctx, amelie.ID)
	require.NoError(t, err)
	require.Len(t, users, 1)
}

func TestStoryService_Feed_ViewerGroupFirst(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	amelie := registerTestUser(t, services, "amelie")
	bruno := registerTestUser(t, services, "bruno")

	makeFriends(t, services, amelie, bruno)

	_, err := services.StoryService.Create(ctx, bruno.ID, "from bruno", social.PrivacyFriends, nil)
	require.NoError(t, err)
	_, err = services.StoryService.Create(ctx, amelie.ID, "my own", social.PrivacyFriends, nil)
	require.NoError(t, err)

	groups, err := services.StoryService.Feed(ctx, amelie.ID)
	require.NoError(t, err)
	require.Len(t, groups, 2)
	require.Equal(t, amelie.ID, groups[0].Author.ID)
}

func TestStoryService_Feed_PrivacyAndBlocks(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	amelie := registerTestUser(t, services, "amelie")
	bruno := registerTestUser(t, services, "bruno")
	chantal := registerTestUser(t, services, "chantal")

	makeFriends(t, services, amelie, bruno)

	// A friend's private story stays private; a stranger's public story
	// is part of the feed, their friends-only one is not.
	_, err := services.StoryService.Create(ctx, bruno.ID, "just for me", social.PrivacyPrivate, nil)
	require.NoError(t, err)
	_, err = services.StoryService.Create(ctx, bruno.ID, "for my friends", social.PrivacyFriends, nil)
	require.NoError(t, err)
	_, err = services.StoryService.Create(ctx, chantal.ID, "for everyone", social.PrivacyPublic, nil)
	require.NoError(t, err)
	_, err = services.StoryService.Create(ctx, chantal.ID, "for her friends", social.PrivacyFriends, nil)
	require.NoError(t, err)

	groups, err := services.StoryService.Feed(ctx, amelie.ID)
	require.NoError(t, err)
	require.Len(t, groups, 2)

	contents := make([]string, 0, 2)
	for _, group := range groups {
		require.Len(t, group.Stories, 1)
		contents = append(contents, group.Stories[0].Content)
	}
	require.Contains(t, contents, "for my friends")
	require.Contains(t, contents, "for everyone")

	// Blocking an author drops their stories from the feed.
	require.NoError(t, services.BlockService.Block(ctx, amelie.ID, chantal.ID))

	groups, err = services.StoryService.Feed(ctx, amelie.ID)
	require.NoError(t, err)
	require.Len(t, groups, 1)
	require.Equal(t, bruno.ID, groups[0].Author.ID)
}

func TestStoryService_MarkViewed_AuthorViewsNotRecorded(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	amelie := registerTestUser(t, services, "amelie")
	bruno := registerTestUser(t, services, "bruno")

	makeFriends(t, services, amelie, bruno)

	story, err := services.StoryService.Create(ctx, amelie.ID, "hello", social.PrivacyFriends, nil)
	require.NoError(t, err)

	require.NoError(t, services.StoryService.MarkViewed(ctx, amelie.ID, story.ID))
	require.NoError(t, services.StoryService.MarkViewed(ctx, bruno.ID, story.ID))
	require.NoError(t, services.StoryService.MarkViewed(ctx, bruno.ID, story.ID))

	viewers, err := services.StoryService.ListViewers(ctx, amelie.ID, story.ID)
	require.NoError(t, err)
	require.Len(t, viewers, 1)
	require.Equal(t, bruno.ID, viewers[0].ViewerID)
}

func TestChatService_SendMessage_And_MarkRead(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	amelie := registerTestUser(t, services, "amelie")
	bruno := registerTestUser(t, services, "bruno")

	makeFriends(t, services, amelie, bruno)

	conversation, err := services.ChatService.EnsureConversation(ctx, amelie.ID, bruno.ID)
	require.NoError(t, err)

	_, err = services.ChatService.SendMessage(ctx, amelie.ID, conversation.ID, chat.MessageInput{Content: "bonjou"})
	require.NoError(t, err)
	_, err = services.ChatService.SendMessage(ctx, amelie.ID, conversation.ID, chat.MessageInput{Content: "kijan ou ye?"})
	require.NoError(t, err)

	unread, err := services.ChatService.UnreadTotal(ctx, bruno.ID)
	require.NoError(t, err)
	require.Equal(t, int64(2), unread)

	readIDs, err := services.ChatService.MarkRead(ctx, bruno.ID, conversation.ID)
	require.NoError(t, err)
	require.Len(t, readIDs, 2)

	unread, err = services.ChatService.UnreadTotal(ctx, bruno.ID)
	require.NoError(t, err)
	require.Zero(t, unread)
}

func TestChatService_SendMessage_FileAttachment(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	amelie := registerTestUser(t, services, "amelie")
	bruno := registerTestUser(t, services, "bruno")

	makeFriends(t, services, amelie, bruno)

	conversation, err := services.ChatService.EnsureConversation(ctx, amelie.ID, bruno.ID)
	require.NoError(t, err)

	// A file alone carries the message.
	message, err := services.ChatService.SendMessage(ctx, amelie.ID, conversation.ID, chat.MessageInput{
		FileURL:  "https://files.test/recipe.pdf",
		FileType: "application/pdf",
	})
	require.NoError(t, err)
	require.Empty(t, message.Content)
	require.Equal(t, "https://files.test/recipe.pdf", message.FileURL)

	// Neither content nor a file is an empty message.
	_, err = services.ChatService.SendMessage(ctx, amelie.ID, conversation.ID, chat.MessageInput{Content: "   "})
	require.ErrorIs(t, err, chat.ErrEmptyMessage)
}

func TestChatService_EnsureConversation_Fail_NotFriends(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	amelie := registerTestUser(t, services, "amelie")
	bruno := registerTestUser(t, services, "bruno")

	_, err := services.ChatService.EnsureConversation(ctx, amelie.ID, bruno.ID)
	require.ErrorIs(t, err, chat.ErrNotFriends)
}

func TestSocietyService_PrivateJoin_RequiresApproval(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	admin := registerTestUser(t, services, "amelie")
	member := registerTestUser(t, services, "bruno")

	society, err := services.SocietyService.Create(ctx, admin.ID, social.CreateSocietyInput{
		Name:    "Creole Cooks",
		Privacy: social.PrivacyPrivate,
	})
	require.NoError(t, err)

	membership, err := services.SocietyService.Join(ctx, member.ID, society.ID)
	require.NoError(t, err)
	require.Equal(t, social.MembershipPending, membership.Status)

	// A pending member is not listed among the society's members.
	members, err := services.SocietyService.ListMembers(ctx, admin.ID, society.ID)
	require.NoError(t, err)
	require.Len(t, members, 1)

	pending, err := services.SocietyService.PendingMembers(ctx, admin.ID, society.ID)
	require.NoError(t, err)
	require.Len(t, pending, 1)

	// Only moderators review join requests.
	_, err = services.SocietyService.PendingMembers(ctx, member.ID, society.ID)
	require.ErrorIs(t, err, social.ErrForbidden)

	approved, err := services.SocietyService.RespondMembership(ctx, admin.ID, society.ID, member.ID, ModerationApprove)
	require.NoError(t, err)
	require.Equal(t, social.MembershipAccepted, approved.Status)

	members, err = services.SocietyService.ListMembers(ctx, admin.ID, society.ID)
	require.NoError(t, err)
	require.Len(t, members, 2)

	// The applicant was told.
	count, err := services.NotificationService.UnreadCount(ctx, member.ID)
	require.NoError(t, err)
	require.Equal(t, int64(1), count)
}

func TestSocietyService_RespondMembership_Reject_DeletesRequest(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	admin := registerTestUser(t, services, "amelie")
	member := registerTestUser(t, services, "bruno")

	society, err := services.SocietyService.Create(ctx, admin.ID, social.CreateSocietyInput{
		Name:    "Creole Cooks",
		Privacy: social.PrivacyPrivate,
	})
	require.NoError(t, err)

	_, err = services.SocietyService.Join(ctx, member.ID, society.ID)
	require.NoError(t, err)

	rejected, err := services.SocietyService.RespondMembership(ctx, admin.ID, society.ID, member.ID, ModerationReject)
	require.NoError(t, err)
	require.Nil(t, rejected)

	pending, err := services.SocietyService.PendingMembers(ctx, admin.ID, society.ID)
	require.NoError(t, err)
	require.Empty(t, pending)

	// Rejection leaves no trace, so the user may apply again.
	membership, err := services.SocietyService.Join(ctx, member.ID, society.ID)
	require.NoError(t, err)
	require.Equal(t, social.MembershipPending, membership.Status)
}

func TestPostService_ShareBulk_FeedAndSociety(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	amelie := registerTestUser(t, services, "amelie")
	bruno := registerTestUser(t, services, "bruno")

	original, err := services.PostService.Create(ctx, amelie.ID, social.CreatePostInput{
		Content: "accras recipe",
		Privacy: social.PrivacyPublic,
	})
	require.NoError(t, err)

	society, err := services.SocietyService.Create(ctx, bruno.ID, social.CreateSocietyInput{
		Name:    "Creole Cooks",
		Privacy: social.PrivacyPublic,
	})
	require.NoError(t, err)

	shares, err := services.PostService.ShareBulk(ctx, bruno.ID, original.ID, "must try", social.PrivacyFriends, []uint{society.ID})
	require.NoError(t, err)
	require.Len(t, shares, 2)

	require.Nil(t, shares[0].SocietyID)
	require.Equal(t, original.ID, *shares[0].SharedPostID)
	require.NotNil(t, shares[1].SocietyID)
	require.Equal(t, society.ID, *shares[1].SocietyID)
	require.Equal(t, original.ID, *shares[1].SharedPostID)

	// One notification for the whole batch.
	count, err := services.NotificationService.UnreadCount(ctx, amelie.ID)
	require.NoError(t, err)
	require.Equal(t, int64(1), count)
}

func TestChatService_MarkMessageRead_SingleMessage(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	amelie := registerTestUser(t, services, "amelie")
	bruno := registerTestUser(t, services, "bruno")

	makeFriends(t, services, amelie, bruno)

	conversation, err := services.ChatService.EnsureConversation(ctx, amelie.ID, bruno.ID)
	require.NoError(t, err)

	first, err := services.ChatService.SendMessage(ctx, amelie.ID, conversation.ID, chat.MessageInput{Content: "bonjou"})
	require.NoError(t, err)
	_, err = services.ChatService.SendMessage(ctx, amelie.ID, conversation.ID, chat.MessageInput{Content: "kijan ou ye?"})
	require.NoError(t, err)

	// Senders do not acknowledge their own messages.
	_, err = services.ChatService.MarkMessageRead(ctx, amelie.ID, first.ID)
	require.ErrorIs(t, err, chat.ErrForbidden)

	read, err := services.ChatService.MarkMessageRead(ctx, bruno.ID, first.ID)
	require.NoError(t, err)
	require.True(t, read.IsRead)
	require.NotNil(t, read.ReadAt)

	unread, err := services.ChatService.UnreadTotal(ctx, bruno.ID)
	require.NoError(t, err)
	require.Equal(t, int64(1), unread)
}

func TestChatService_DeleteConversation(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	amelie := registerTestUser(t, services, "amelie")
	bruno := registerTestUser(t, services, "bruno")
	claire := registerTestUser(t, services, "claire")

	makeFriends(t, services, amelie, bruno)

	conversation, err := services.ChatService.EnsureConversation(ctx, amelie.ID, bruno.ID)
	require.NoError(t, err)

	_, err = services.ChatService.SendMessage(ctx, amelie.ID, conversation.ID, chat.MessageInput{Content: "bonjou"})
	require.NoError(t, err)

	err = services.ChatService.DeleteConversation(ctx, claire.ID, conversation.ID)
	require.ErrorIs(t, err, chat.ErrNotParticipant)

	require.NoError(t, services.ChatService.DeleteConversation(ctx, bruno.ID, conversation.ID))

	// Gone for both sides, messages included.
	_, err = services.ChatService.GetConversation(ctx, amelie.ID, conversation.ID)
	require.ErrorIs(t, err, chat.ErrNotFound)

	unread, err := services.ChatService.UnreadTotal(ctx, bruno.ID)
	require.NoError(t, err)
	require.Zero(t, unread)
}

func TestNotificationService_MarkAllRead(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	amelie := registerTestUser(t, services, "amelie")
	bruno := registerTestUser(t, services, "bruno")

	post, err := services.PostService.Create(ctx, amelie.ID, social.CreatePostInput{
		Content: "hello",
		Privacy: social.PrivacyPublic,
	})
	require.NoError(t, err)

	_, err = services.PostService.ToggleLike(ctx, bruno.ID, post.ID)
	require.NoError(t, err)
	_, err = services.CommentService.Create(ctx, bruno.ID, post.ID, nil, "nice")
	require.NoError(t, err)

	notifications, total, err := services.NotificationService.List(ctx, amelie.ID, 1, 20)
	require.NoError(t, err)
	require.Equal(t, int64(2), total)
	require.Len(t, notifications, 2)

	require.NoError(t, services.NotificationService.MarkAllRead(ctx, amelie.ID))

	count, err := services.NotificationService.UnreadCount(ctx, amelie.ID)
	require.NoError(t, err)
	require.Zero(t, count)
}
