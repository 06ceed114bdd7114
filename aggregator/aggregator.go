package aggregator

import (
	"errors"
	"fmt"
	"sync/atomic"

	"ewintr.nl/showreel/model"
	"ewintr.nl/showreel/storage"
	"github.com/google/uuid"
	"golang.org/x/exp/slog"
)

const (
	featuredFetchLimit = 3
	topicFetchLimit    = 2
)

// ErrPassInFlight is returned when a pass is triggered while the previous
// one is still running. The trigger period and a slow pass can overlap, a
// second pass must never run concurrently against the shared ledger.
var ErrPassInFlight = errors.New("aggregation pass already in flight")

// VideoSource yields candidate videos. Retrieval problems for one source
// are isolated, the caller treats an error as zero candidates.
type VideoSource interface {
	FetchChannelVideos(channelID model.YoutubeChannelID, limit int64) ([]model.Video, error)
	FetchTopicVideos(topic model.Topic, limit int) ([]model.Video, error)
}

// Deliverer posts a batch of videos to one destination feed.
type Deliverer interface {
	Deliver(feedID string, topic model.Topic, videos []model.Video)
}

// FeedResolver verifies a destination feed exists before a pass touches it.
type FeedResolver interface {
	ResolveFeed(feedID string) error
}

// Aggregator runs one full aggregation pass: featured channels first, then
// topic searches, each filtered against the ledger before delivery.
type Aggregator struct {
	source   VideoSource
	poster   Deliverer
	resolver FeedResolver
	ledger   storage.Ledger
	feeds    map[model.Topic]string
	featured []model.FeaturedChannel
	running  atomic.Bool
	logger   *slog.Logger
}

func NewAggregator(source VideoSource, poster Deliverer, resolver FeedResolver, ledger storage.Ledger, feeds map[model.Topic]string, featured []model.FeaturedChannel, logger *slog.Logger) *Aggregator {
	return &Aggregator{
		source:   source,
		poster:   poster,
		resolver: resolver,
		ledger:   ledger,
		feeds:    feeds,
		featured: featured,
		logger:   logger,
	}
}

// Run executes a single pass. It refuses to start while another pass is in
// flight and reports a fatal error when a destination feed cannot be
// resolved; everything else is isolated per source.
func (a *Aggregator) Run() error {
	if !a.running.CompareAndSwap(false, true) {
		return ErrPassInFlight
	}
	defer a.running.Store(false)

	return a.pass()
}

func (a *Aggregator) pass() error {
	logger := a.logger.With(slog.String("pass", uuid.New().String()))
	logger.Info("starting aggregation pass")

	// a missing destination is a configuration fault, not a per-item failure
	for _, topic := range model.Topics {
		if err := a.resolver.ResolveFeed(a.feeds[topic]); err != nil {
			return fmt.Errorf("failed to resolve %s feed: %w", topic, err)
		}
	}

	for _, fc := range a.featured {
		videos, err := a.source.FetchChannelVideos(fc.ChannelID, featuredFetchLimit)
		if err != nil {
			logger.Error("failed to fetch featured channel", err, slog.String("channel", string(fc.ChannelID)))
			continue
		}
		fresh := a.unseen(videos)
		if len(fresh) == 0 {
			logger.Info("no new videos from featured channel", slog.String("channel", string(fc.ChannelID)))
			continue
		}
		logger.Info("posting featured channel videos",
			slog.String("channel", string(fc.ChannelID)),
			slog.Int("count", len(fresh)))
		a.poster.Deliver(a.feeds[fc.Topic], fc.Topic, fresh)
	}

	for _, topic := range model.Topics {
		videos, err := a.source.FetchTopicVideos(topic, topicFetchLimit)
		if err != nil {
			logger.Error("failed to fetch topic videos", err, slog.String("topic", string(topic)))
			continue
		}
		fresh := a.unseen(videos)
		if len(fresh) == 0 {
			logger.Info("no new videos for topic", slog.String("topic", string(topic)))
			continue
		}
		logger.Info("posting topic videos",
			slog.String("topic", string(topic)),
			slog.Int("count", len(fresh)))
		a.poster.Deliver(a.feeds[topic], topic, fresh)
	}

	logger.Info("aggregation pass complete")

	return nil
}

func (a *Aggregator) unseen(videos []model.Video) []model.Video {
	fresh := make([]model.Video, 0, len(videos))
	for _, video := range videos {
		if a.ledger.Contains(video.WatchURL()) {
			continue
		}
		fresh = append(fresh, video)
	}

	return fresh
}
