package livestream

import (
	"context"
	"errors"
)

// Sentinel errors shared across the stream service.
var (
	ErrNotFound  = errors.New("not found")
	ErrForbidden = errors.New("forbidden")
	ErrNotLive   = errors.New("stream is not live")
	ErrEnded     = errors.New("stream has ended")
)

// Channel describes an ingest channel handed out by a provider.
type Channel struct {
	ARN         string
	IngestURL   string
	PlaybackURL string
	StreamKey   string
}

// ChannelProvider provisions ingest channels. Owners reuse their
// channel across streams.
type ChannelProvider interface {
	// EnsureChannel returns the owner's channel, creating one on
	// first use.
	EnsureChannel(ctx context.Context, ownerID string) (*Channel, error)
}

// StreamService defines live broadcast operations.
type StreamService interface {
	// Create provisions a channel for the owner and stores the stream
	// in preparing status.
	Create(ctx context.Context, ownerID, title, description string) (*Stream, error)

	// Get returns the stream. The stream key is cleared unless the
	// caller owns the stream.
	Get(ctx context.Context, viewerID string, streamID uint) (*Stream, error)

	// ListLive returns currently live streams, most viewers first.
	ListLive(ctx context.Context, page, pageSize int) ([]*Stream, int64, error)

	// ListMine returns the owner's streams in any status, newest first.
	ListMine(ctx context.Context, ownerID string, page, pageSize int) ([]*Stream, int64, error)

	// Start marks a preparing stream live. Owner only.
	Start(ctx context.Context, ownerID string, streamID uint) (*Stream, error)

	// End marks a live stream ended. Owner only.
	End(ctx context.Context, ownerID string, streamID uint) (*Stream, error)

	// Join records the viewer on a live stream and returns the
	// current viewer count. Rejoining reopens the viewer's record.
	Join(ctx context.Context, viewerID string, streamID uint) (int64, error)

	// Leave marks the viewer as gone and returns the current viewer
	// count.
	Leave(ctx context.Context, viewerID string, streamID uint) (int64, error)

	// Delete removes a stream with its comments and view records.
	// Owner only; a live stream must be ended first.
	Delete(ctx context.Context, ownerID string, streamID uint) error

	AddComment(ctx context.Context, authorID string, streamID uint, content string) (*StreamComment, error)
	ListComments(ctx context.Context, streamID uint, limit int) ([]*StreamComment, error)
}

// StreamRepository defines persistence for streams.
type StreamRepository interface {
	Create(ctx context.Context, stream *Stream) error
	GetByID(ctx context.Context, streamID uint) (*Stream, error)
	UpdateByID(ctx context.Context, stream *Stream) error
	DeleteByID(ctx context.Context, streamID uint) error
	ListByStatus(ctx context.Context, status string, page, pageSize int) ([]*Stream, int64, error)
	ListByOwner(ctx context.Context, ownerID string, page, pageSize int) ([]*Stream, int64, error)

	CreateComment(ctx context.Context, comment *StreamComment) error
	ListComments(ctx context.Context, streamID uint, limit int) ([]*StreamComment, error)

	CreateView(ctx context.Context, view *StreamView) error
	HasView(ctx context.Context, streamID uint, viewerID string) (bool, error)
	CountViews(ctx context.Context, streamID uint) (int64, error)

	// CountActiveViews counts viewers currently watching.
	CountActiveViews(ctx context.Context, streamID uint) (int64, error)

	// ReopenView clears the viewer's left timestamp on rejoin.
	ReopenView(ctx context.Context, streamID uint, viewerID string) error

	// CloseView stamps the viewer's left timestamp.
	CloseView(ctx context.Context, streamID uint, viewerID string) error
}
