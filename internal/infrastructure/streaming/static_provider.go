package streaming

import (
	"context"
	"fmt"
	"sync"

	"github.com/mahamudh472/GlobalCreoleSociety/internal/domain/livestream"
	"github.com/mahamudh472/GlobalCreoleSociety/internal/pkg/logger"

	"github.com/google/uuid"
)

type staticChannelProvider struct {
	baseURL  string
	logger   logger.Logger
	mu       sync.Mutex
	channels map[string]*livestream.Channel
}

// NewStaticChannelProvider creates a ChannelProvider that derives
// ingest and playback endpoints from a base URL. One channel is
// provisioned per owner and reused for subsequent streams.
func NewStaticChannelProvider(baseURL string, logger logger.Logger) (livestream.ChannelProvider, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("base URL is required")
	}
	return &staticChannelProvider{
		baseURL:  baseURL,
		logger:   logger,
		channels: make(map[string]*livestream.Channel),
	}, nil
}

func (p *staticChannelProvider) EnsureChannel(ctx context.Context, ownerID string) (*livestream.Channel, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if ch, ok := p.channels[ownerID]; ok {
		return ch, nil
	}

	channelID := uuid.NewString()
	ch := &livestream.Channel{
		ARN:         fmt.Sprintf("channel:%s", channelID),
		IngestURL:   fmt.Sprintf("%s/ingest/%s", p.baseURL, channelID),
		PlaybackURL: fmt.Sprintf("%s/playback/%s.m3u8", p.baseURL, channelID),
		StreamKey:   uuid.NewString(),
	}
	p.channels[ownerID] = ch

	p.logger.Info("Provisioned channel for owner ", ownerID)
	return ch, nil
}
