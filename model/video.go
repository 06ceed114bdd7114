package model

import "regexp"

type YoutubeVideoID string

type YoutubeChannelID string

// Video holds the metadata of a single YouTube video as returned by the
// Data API. The duration is kept in the API's ISO-8601 form (PT#H#M#S).
type Video struct {
	YoutubeID    YoutubeVideoID
	Title        string
	ChannelTitle string
	Description  string
	ThumbnailURL string
	PublishedAt  string
	ViewCount    uint64
	LikeCount    uint64
	Duration     string
}

var durationRE = regexp.MustCompile(`PT(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?`)

// DurationSeconds parses the ISO-8601 duration. The server-side "medium"
// duration bucket is only a hint, this is the authoritative value for the
// minimum length filter. Malformed input yields 0.
func (v Video) DurationSeconds() int64 {
	m := durationRE.FindStringSubmatch(v.Duration)
	if m == nil {
		return 0
	}

	return atoi(m[1])*3600 + atoi(m[2])*60 + atoi(m[3])
}

// WatchURL is the canonical video URL. It doubles as the deduplication key,
// so it must be derived from the video id alone.
func (v Video) WatchURL() string {
	return "https://www.youtube.com/watch?v=" + string(v.YoutubeID)
}

func atoi(s string) int64 {
	var n int64
	for _, c := range s {
		n = n*10 + int64(c-'0')
	}
	return n
}
