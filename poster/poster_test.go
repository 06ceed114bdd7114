package poster

import (
	"errors"
	"os"
	"testing"
	"time"

	"ewintr.nl/showreel/model"
	"ewintr.nl/showreel/storage"
	"golang.org/x/exp/slog"
)

type fakeAnnouncer struct {
	failOn map[model.YoutubeVideoID]bool
	sent   []model.YoutubeVideoID
}

func (f *fakeAnnouncer) Announce(feedID string, video model.Video, topic model.Topic) error {
	if f.failOn[video.YoutubeID] {
		return errors.New("transport rejected the message")
	}
	f.sent = append(f.sent, video.YoutubeID)

	return nil
}

func newTestPoster(announcer Announcer, ledger storage.Ledger, pace time.Duration) (*Poster, *[]time.Duration) {
	slept := &[]time.Duration{}
	p := NewPoster(announcer, ledger, storage.NewAnnouncementLog(10), pace, slog.New(slog.NewTextHandler(os.Stderr)))
	p.sleep = func(d time.Duration) {
		*slept = append(*slept, d)
	}

	return p, slept
}

func TestDeliverIsolatesFailures(t *testing.T) {
	announcer := &fakeAnnouncer{failOn: map[model.YoutubeVideoID]bool{"two": true}}
	ledger := storage.NewMemoryLedger()
	p, _ := newTestPoster(announcer, ledger, 2*time.Second)

	videos := []model.Video{
		{YoutubeID: "one", Title: "first"},
		{YoutubeID: "two", Title: "second"},
		{YoutubeID: "three", Title: "third"},
	}
	p.Deliver("feed", model.TopicDesign, videos)

	if len(announcer.sent) != 2 {
		t.Fatalf("got %d successful sends, want 2", len(announcer.sent))
	}
	if announcer.sent[0] != "one" || announcer.sent[1] != "three" {
		t.Errorf("siblings of a failed video must still be attempted, got %v", announcer.sent)
	}
	if !ledger.Contains(videos[0].WatchURL()) || !ledger.Contains(videos[2].WatchURL()) {
		t.Errorf("successful deliveries must be recorded")
	}
	if ledger.Contains(videos[1].WatchURL()) {
		t.Errorf("failed delivery must not be recorded, it stays eligible for a retry")
	}
}

func TestDeliverPacing(t *testing.T) {
	announcer := &fakeAnnouncer{}
	p, slept := newTestPoster(announcer, storage.NewMemoryLedger(), 2*time.Second)

	videos := []model.Video{
		{YoutubeID: "one"},
		{YoutubeID: "two"},
		{YoutubeID: "three"},
	}
	p.Deliver("feed", model.TopicPhotography, videos)

	// pacing applies between sends, not before the first or after the last
	if len(*slept) != 2 {
		t.Fatalf("got %d pacing delays, want 2", len(*slept))
	}
	for _, d := range *slept {
		if d != 2*time.Second {
			t.Errorf("pacing delay = %s, want 2s", d)
		}
	}
}

func TestDeliverSingleVideoNoPacing(t *testing.T) {
	announcer := &fakeAnnouncer{}
	p, slept := newTestPoster(announcer, storage.NewMemoryLedger(), 2*time.Second)

	p.Deliver("feed", model.TopicDesign, []model.Video{{YoutubeID: "only"}})

	if len(*slept) != 0 {
		t.Errorf("a single delivery needs no pacing, got %d delays", len(*slept))
	}
}

func TestDeliverRecordsAnnouncements(t *testing.T) {
	announcer := &fakeAnnouncer{}
	announcements := storage.NewAnnouncementLog(10)
	p := NewPoster(announcer, storage.NewMemoryLedger(), announcements, 0, slog.New(slog.NewTextHandler(os.Stderr)))
	p.sleep = func(time.Duration) {}

	p.Deliver("feed", model.TopicDesign, []model.Video{
		{YoutubeID: "one", Title: "first", ChannelTitle: "someone"},
	})

	recent := announcements.Recent()
	if len(recent) != 1 {
		t.Fatalf("got %d announcements, want 1", len(recent))
	}
	if recent[0].YoutubeID != "one" || recent[0].Topic != model.TopicDesign {
		t.Errorf("announcement not recorded correctly: %+v", recent[0])
	}
}
