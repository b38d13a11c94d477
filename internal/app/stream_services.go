package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mahamudh472/GlobalCreoleSociety/internal/domain/livestream"
	"github.com/mahamudh472/GlobalCreoleSociety/internal/pkg/logger"
)

// streamService implements the StreamService interface
type streamService struct {
	streamRepo livestream.StreamRepository
	provider   livestream.ChannelProvider
	logger     logger.Logger
}

// NewStreamService creates a new instance of StreamService
func NewStreamService(
	streamRepo livestream.StreamRepository,
	provider livestream.ChannelProvider,
	logger logger.Logger,
) (livestream.StreamService, error) {
	return &streamService{
		streamRepo: streamRepo,
		provider:   provider,
		logger:     logger,
	}, nil
}

func (s *streamService) Create(ctx context.Context, ownerID, title, description string) (*livestream.Stream, error) {
	if strings.TrimSpace(title) == "" {
		return nil, fmt.Errorf("stream title is required")
	}

	channel, err := s.provider.EnsureChannel(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to provision channel: %w", err)
	}

	stream := &livestream.Stream{
		OwnerID:     ownerID,
		Title:       title,
		Description: description,
		Status:      livestream.StreamStatusPreparing,
		ChannelARN:  channel.ARN,
		IngestURL:   channel.IngestURL,
		PlaybackURL: channel.PlaybackURL,
		StreamKey:   channel.StreamKey,
	}
	if err := s.streamRepo.Create(ctx, stream); err != nil {
		return nil, err
	}
	return stream, nil
}

func (s *streamService) Get(ctx context.Context, viewerID string, streamID uint) (*livestream.Stream, error) {
	stream, err := s.streamRepo.GetByID(ctx, streamID)
	if err != nil {
		return nil, err
	}
	if stream.OwnerID != viewerID {
		stream.StreamKey = ""
		stream.IngestURL = ""
	}

	// Live streams report who is watching now, finished ones the
	// audience total.
	if stream.Status == livestream.StreamStatusLive {
		stream.ViewerCount, err = s.streamRepo.CountActiveViews(ctx, streamID)
	} else {
		stream.ViewerCount, err = s.streamRepo.CountViews(ctx, streamID)
	}
	if err != nil {
		return nil, err
	}
	return stream, nil
}

func (s *streamService) ListLive(ctx context.Context, page, pageSize int) ([]*livestream.Stream, int64, error) {
	page, pageSize = normalizePage(page, pageSize)
	streams, total, err := s.streamRepo.ListByStatus(ctx, livestream.StreamStatusLive, page, pageSize)
	if err != nil {
		return nil, 0, err
	}
	for _, stream := range streams {
		stream.StreamKey = ""
		stream.IngestURL = ""
		if stream.ViewerCount, err = s.streamRepo.CountActiveViews(ctx, stream.ID); err != nil {
			return nil, 0, err
		}
	}
	return streams, total, nil
}

func (s *streamService) ListMine(ctx context.Context, ownerID string, page, pageSize int) ([]*livestream.Stream, int64, error) {
	page, pageSize = normalizePage(page, pageSize)
	streams, total, err := s.streamRepo.ListByOwner(ctx, ownerID, page, pageSize)
	if err != nil {
		return nil, 0, err
	}
	for _, stream := range streams {
		if stream.Status == livestream.StreamStatusLive {
			stream.ViewerCount, err = s.streamRepo.CountActiveViews(ctx, stream.ID)
		} else {
			stream.ViewerCount, err = s.streamRepo.CountViews(ctx, stream.ID)
		}
		if err != nil {
			return nil, 0, err
		}
	}
	return streams, total, nil
}

func (s *streamService) Start(ctx context.Context, ownerID string, streamID uint) (*livestream.Stream, error) {
	stream, err := s.streamRepo.GetByID(ctx, streamID)
	if err != nil {
		return nil, err
	}
	if stream.OwnerID != ownerID {
		return nil, livestream.ErrForbidden
	}
	if stream.Status == livestream.StreamStatusEnded {
		return nil, livestream.ErrEnded
	}
	if stream.Status == livestream.StreamStatusLive {
		return stream, nil
	}

	now := time.Now()
	stream.Status = livestream.StreamStatusLive
	stream.StartedAt = &now
	if err := s.streamRepo.UpdateByID(ctx, stream); err != nil {
		return nil, err
	}
	return stream, nil
}

func (s *streamService) End(ctx context.Context, ownerID string, streamID uint) (*livestream.Stream, error) {
	stream, err := s.streamRepo.GetByID(ctx, streamID)
	if err != nil {
		return nil, err
	}
	if stream.OwnerID != ownerID {
		return nil, livestream.ErrForbidden
	}
	if stream.Status == livestream.StreamStatusEnded {
		return stream, nil
	}
	if stream.Status != livestream.StreamStatusLive {
		return nil, livestream.ErrNotLive
	}

	now := time.Now()
	stream.Status = livestream.StreamStatusEnded
	stream.EndedAt = &now
	if err := s.streamRepo.UpdateByID(ctx, stream); err != nil {
		return nil, err
	}
	return stream, nil
}

func (s *streamService) Join(ctx context.Context, viewerID string, streamID uint) (int64, error) {
	stream, err := s.streamRepo.GetByID(ctx, streamID)
	if err != nil {
		return 0, err
	}
	if stream.Status != livestream.StreamStatusLive {
		return 0, livestream.ErrNotLive
	}

	if stream.OwnerID != viewerID {
		viewed, err := s.streamRepo.HasView(ctx, streamID, viewerID)
		if err != nil {
			return 0, err
		}
		if viewed {
			if err := s.streamRepo.ReopenView(ctx, streamID, viewerID); err != nil {
				return 0, err
			}
		} else {
			view := &livestream.StreamView{StreamID: streamID, ViewerID: viewerID, JoinedAt: time.Now()}
			if err := s.streamRepo.CreateView(ctx, view); err != nil {
				return 0, err
			}
		}
	}

	active, err := s.streamRepo.CountActiveViews(ctx, streamID)
	if err != nil {
		return 0, err
	}
	if active > stream.PeakViewers {
		stream.PeakViewers = active
		if err := s.streamRepo.UpdateByID(ctx, stream); err != nil {
			return 0, err
		}
	}
	return active, nil
}

func (s *streamService) Leave(ctx context.Context, viewerID string, streamID uint) (int64, error) {
	if _, err := s.streamRepo.GetByID(ctx, streamID); err != nil {
		return 0, err
	}
	if err := s.streamRepo.CloseView(ctx, streamID, viewerID); err != nil {
		return 0, err
	}
	return s.streamRepo.CountActiveViews(ctx, streamID)
}

func (s *streamService) Delete(ctx context.Context, ownerID string, streamID uint) error {
	stream, err := s.streamRepo.GetByID(ctx, streamID)
	if err != nil {
		return err
	}
	if stream.OwnerID != ownerID {
		return livestream.ErrForbidden
	}
	if stream.Status == livestream.StreamStatusLive {
		return fmt.Errorf("end the stream before deleting it: %w", livestream.ErrForbidden)
	}
	return s.streamRepo.DeleteByID(ctx, streamID)
}

func (s *streamService) AddComment(ctx context.Context, authorID string, streamID uint, content string) (*livestream.StreamComment, error) {
	if strings.TrimSpace(content) == "" {
		return nil, fmt.Errorf("comment content is required")
	}

	stream, err := s.streamRepo.GetByID(ctx, streamID)
	if err != nil {
		return nil, err
	}
	if stream.Status != livestream.StreamStatusLive {
		return nil, livestream.ErrNotLive
	}

	comment := &livestream.StreamComment{
		StreamID: streamID,
		AuthorID: authorID,
		Content:  content,
	}
	if err := s.streamRepo.CreateComment(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *streamService) ListComments(ctx context.Context, streamID uint, limit int) ([]*livestream.StreamComment, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	if _, err := s.streamRepo.GetByID(ctx, streamID); err != nil {
		return nil, err
	}
	return s.streamRepo.ListComments(ctx, streamID, limit)
}
