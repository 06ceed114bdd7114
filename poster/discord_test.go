package poster

import (
	"strings"
	"testing"

	"ewintr.nl/showreel/model"
)

func TestBuildEmbed(t *testing.T) {
	video := model.Video{
		YoutubeID:    "abc123",
		Title:        "Painting clouds",
		ChannelTitle: "Some Artist",
		Description:  "A calm session.",
		ThumbnailURL: "https://i.ytimg.com/vi/abc123/maxresdefault.jpg",
		PublishedAt:  "2024-05-01T10:00:00Z",
		ViewCount:    4_500,
		LikeCount:    999,
		Duration:     "PT5M9S",
	}

	embed := buildEmbed(video, model.TopicDesign)

	if embed.Color != 0x9b59b6 {
		t.Errorf("design embed color = %#x, want %#x", embed.Color, 0x9b59b6)
	}
	if embed.Title != video.Title {
		t.Errorf("embed title = %q", embed.Title)
	}
	if embed.URL != "https://www.youtube.com/watch?v=abc123" {
		t.Errorf("embed url = %q", embed.URL)
	}
	if embed.Timestamp != video.PublishedAt {
		t.Errorf("embed timestamp = %q", embed.Timestamp)
	}
	if embed.Image.URL != video.ThumbnailURL {
		t.Errorf("embed image = %q", embed.Image.URL)
	}
	if !strings.Contains(embed.Description, "4.5K") || !strings.Contains(embed.Description, "999") {
		t.Errorf("embed description misses abbreviated counts: %q", embed.Description)
	}
	if !strings.Contains(embed.Description, "5:09") {
		t.Errorf("embed description misses duration: %q", embed.Description)
	}
	if !strings.Contains(embed.Footer.Text, "Art & Design") {
		t.Errorf("embed footer misses topic label: %q", embed.Footer.Text)
	}

	photo := buildEmbed(video, model.TopicPhotography)
	if photo.Color != 0xe67e22 {
		t.Errorf("photography embed color = %#x, want %#x", photo.Color, 0xe67e22)
	}
}
