//go:build integration
// +build integration

package app

import (
	"context"
	"testing"

	"github.com/mahamudh472/GlobalCreoleSociety/internal/domain/livestream"
	"github.com/mahamudh472/GlobalCreoleSociety/internal/pkg/config"

	"github.com/stretchr/testify/require"
)

func TestStreamService_Create_ProvisionsChannel(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	owner := registerTestUser(t, services, "amelie")

	stream, err := services.StreamService.Create(ctx, owner.ID, "Cooking live", "making accras")
	require.NoError(t, err)
	require.Equal(t, livestream.StreamStatusPreparing, stream.Status)
	require.NotEmpty(t, stream.IngestURL)
	require.NotEmpty(t, stream.PlaybackURL)
	require.NotEmpty(t, stream.StreamKey)
}

func TestStreamService_Get_HidesKeyFromViewers(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	owner := registerTestUser(t, services, "amelie")
	viewer := registerTestUser(t, services, "bruno")

	stream, err := services.StreamService.Create(ctx, owner.ID, "Cooking live", "")
	require.NoError(t, err)

	own, err := services.StreamService.Get(ctx, owner.ID, stream.ID)
	require.NoError(t, err)
	require.NotEmpty(t, own.StreamKey)

	other, err := services.StreamService.Get(ctx, viewer.ID, stream.ID)
	require.NoError(t, err)
	require.Empty(t, other.StreamKey)
	require.Empty(t, other.IngestURL)
	require.NotEmpty(t, other.PlaybackURL)
}

func TestStreamService_Start_Fail_NotOwner(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	owner := registerTestUser(t, services, "amelie")
	viewer := registerTestUser(t, services, "bruno")

	stream, err := services.StreamService.Create(ctx, owner.ID, "Cooking live", "")
	require.NoError(t, err)

	_, err = services.StreamService.Start(ctx, viewer.ID, stream.ID)
	require.ErrorIs(t, err, livestream.ErrForbidden)
}

func TestStreamService_Lifecycle_And_Viewers(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	owner := registerTestUser(t, services, "amelie")
	viewer := registerTestUser(t, services, "bruno")

	stream, err := services.StreamService.Create(ctx, owner.ID, "Cooking live", "")
	require.NoError(t, err)

	// Joining before the stream is live is rejected.
	_, err = services.StreamService.Join(ctx, viewer.ID, stream.ID)
	require.ErrorIs(t, err, livestream.ErrNotLive)

	started, err := services.StreamService.Start(ctx, owner.ID, stream.ID)
	require.NoError(t, err)
	require.Equal(t, livestream.StreamStatusLive, started.Status)
	require.NotNil(t, started.StartedAt)

	count, err := services.StreamService.Join(ctx, viewer.ID, stream.ID)
	require.NoError(t, err)
	require.Equal(t, int64(1), count)

	// Rejoining does not double count.
	count, err = services.StreamService.Join(ctx, viewer.ID, stream.ID)
	require.NoError(t, err)
	require.Equal(t, int64(1), count)

	comment, err := services.StreamService.AddComment(ctx, viewer.ID, stream.ID, "smells great")
	require.NoError(t, err)
	require.NotZero(t, comment.ID)

	comments, err := services.StreamService.ListComments(ctx, stream.ID, 50)
	require.NoError(t, err)
	require.Len(t, comments, 1)

	ended, err := services.StreamService.End(ctx, owner.ID, stream.ID)
	require.NoError(t, err)
	require.Equal(t, livestream.StreamStatusEnded, ended.Status)
	require.NotNil(t, ended.EndedAt)

	// No comments once the stream has ended.
	_, err = services.StreamService.AddComment(ctx, viewer.ID, stream.ID, "too late")
	require.ErrorIs(t, err, livestream.ErrNotLive)
}

func TestStreamService_Leave_And_PeakViewers(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	owner := registerTestUser(t, services, "amelie")
	bruno := registerTestUser(t, services, "bruno")
	claire := registerTestUser(t, services, "claire")

	stream, err := services.StreamService.Create(ctx, owner.ID, "Cooking live", "")
	require.NoError(t, err)
	_, err = services.StreamService.Start(ctx, owner.ID, stream.ID)
	require.NoError(t, err)

	_, err = services.StreamService.Join(ctx, bruno.ID, stream.ID)
	require.NoError(t, err)
	count, err := services.StreamService.Join(ctx, claire.ID, stream.ID)
	require.NoError(t, err)
	require.Equal(t, int64(2), count)

	count, err = services.StreamService.Leave(ctx, bruno.ID, stream.ID)
	require.NoError(t, err)
	require.Equal(t, int64(1), count)

	// Coming back counts again.
	count, err = services.StreamService.Join(ctx, bruno.ID, stream.ID)
	require.NoError(t, err)
	require.Equal(t, int64(2), count)

	// The peak sticks even after everyone leaves.
	_, err = services.StreamService.Leave(ctx, bruno.ID, stream.ID)
	require.NoError(t, err)
	_, err = services.StreamService.Leave(ctx, claire.ID, stream.ID)
	require.NoError(t, err)

	fetched, err := services.StreamService.Get(ctx, owner.ID, stream.ID)
	require.NoError(t, err)
	require.Zero(t, fetched.ViewerCount)
	require.Equal(t, int64(2), fetched.PeakViewers)

	// Once ended, the stream reports its audience total instead.
	_, err = services.StreamService.End(ctx, owner.ID, stream.ID)
	require.NoError(t, err)
	fetched, err = services.StreamService.Get(ctx, owner.ID, stream.ID)
	require.NoError(t, err)
	require.Equal(t, int64(2), fetched.ViewerCount)
}

func TestStreamService_Delete(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	owner := registerTestUser(t, services, "amelie")
	viewer := registerTestUser(t, services, "bruno")

	stream, err := services.StreamService.Create(ctx, owner.ID, "Cooking live", "")
	require.NoError(t, err)
	_, err = services.StreamService.Start(ctx, owner.ID, stream.ID)
	require.NoError(t, err)

	// A live stream cannot be deleted.
	err = services.StreamService.Delete(ctx, owner.ID, stream.ID)
	require.ErrorIs(t, err, livestream.ErrForbidden)

	_, err = services.StreamService.End(ctx, owner.ID, stream.ID)
	require.NoError(t, err)

	err = services.StreamService.Delete(ctx, viewer.ID, stream.ID)
	require.ErrorIs(t, err, livestream.ErrForbidden)

	require.NoError(t, services.StreamService.Delete(ctx, owner.ID, stream.ID))

	_, err = services.StreamService.Get(ctx, owner.ID, stream.ID)
	require.ErrorIs(t, err, livestream.ErrNotFound)
}

func TestStreamService_ListMine(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	owner := registerTestUser(t, services, "amelie")
	other := registerTestUser(t, services, "bruno")

	first, err := services.StreamService.Create(ctx, owner.ID, "Cooking live", "")
	require.NoError(t, err)
	second, err := services.StreamService.Create(ctx, owner.ID, "Market tour", "")
	require.NoError(t, err)
	_, err = services.StreamService.Start(ctx, owner.ID, second.ID)
	require.NoError(t, err)

	_, err = services.StreamService.Create(ctx, other.ID, "Someone else", "")
	require.NoError(t, err)

	mine, total, err := services.StreamService.ListMine(ctx, owner.ID, 1, 20)
	require.NoError(t, err)
	require.Equal(t, int64(2), total)
	require.Len(t, mine, 2)

	// Newest first, in any status, with the owner's keys intact.
	require.Equal(t, second.ID, mine[0].ID)
	require.Equal(t, livestream.StreamStatusLive, mine[0].Status)
	require.Equal(t, first.ID, mine[1].ID)
	require.Equal(t, livestream.StreamStatusPreparing, mine[1].Status)
	require.NotEmpty(t, mine[0].StreamKey)

	theirs, total, err := services.StreamService.ListMine(ctx, other.ID, 1, 20)
	require.NoError(t, err)
	require.Equal(t, int64(1), total)
	require.Len(t, theirs, 1)
	require.Equal(t, "Someone else", theirs[0].Title)
}

func TestStreamService_ListLive(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	owner := registerTestUser(t, services, "amelie")

	stream, err := services.StreamService.Create(ctx, owner.ID, "Cooking live", "")
	require.NoError(t, err)

	live, total, err := services.StreamService.ListLive(ctx, 1, 20)
	require.NoError(t, err)
	require.Zero(t, total)
	require.Empty(t, live)

	_, err = services.StreamService.Start(ctx, owner.ID, stream.ID)
	require.NoError(t, err)

	live, total, err = services.StreamService.ListLive(ctx, 1, 20)
	require.NoError(t, err)
	require.Equal(t, int64(1), total)
	require.Len(t, live, 1)
	require.Empty(t, live[0].StreamKey)
}
