package poster

import (
	"time"

	"ewintr.nl/showreel/model"
	"ewintr.nl/showreel/storage"
	"golang.org/x/exp/slog"
)

// Announcer renders and sends a single announcement.
type Announcer interface {
	Announce(feedID string, video model.Video, topic model.Topic) error
}

// Poster delivers a batch of videos to one destination feed. Failures are
// isolated per video and the ledger is only updated after a send succeeded,
// so a failed video stays eligible for the next pass.
type Poster struct {
	announcer     Announcer
	ledger        storage.Ledger
	announcements *storage.AnnouncementLog
	pace          time.Duration
	sleep         func(time.Duration)
	logger        *slog.Logger
}

func NewPoster(announcer Announcer, ledger storage.Ledger, announcements *storage.AnnouncementLog, pace time.Duration, logger *slog.Logger) *Poster {
	return &Poster{
		announcer:     announcer,
		ledger:        ledger,
		announcements: announcements,
		pace:          pace,
		sleep:         time.Sleep,
		logger:        logger,
	}
}

// Deliver sends the videos one by one, pacing consecutive sends to stay
// within the destination's rate limits. There is no pacing before the first
// send or after the last.
func (p *Poster) Deliver(feedID string, topic model.Topic, videos []model.Video) {
	for i, video := range videos {
		if err := p.announcer.Announce(feedID, video, topic); err != nil {
			p.logger.Error("failed to post video", err, slog.String("title", video.Title))
			continue
		}

		p.ledger.Record(video.WatchURL())
		p.announcements.Append(model.Announcement{
			YoutubeID:    video.YoutubeID,
			Title:        video.Title,
			ChannelTitle: video.ChannelTitle,
			Topic:        topic,
			PostedAt:     time.Now(),
		})
		p.logger.Info("posted video",
			slog.String("title", video.Title),
			slog.String("topic", string(topic)))

		if i < len(videos)-1 {
			p.sleep(p.pace)
		}
	}
}
