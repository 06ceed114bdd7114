package model

import "time"

// Topic determines the destination feed, the search vocabulary and the
// visual theme of an announcement. Adding one means adding a destination
// feed and a theme entry as well.
type Topic string

const (
	TopicDesign      Topic = "design"
	TopicPhotography Topic = "photography"
)

// Topics lists all topics in the order they are processed within a pass.
var Topics = []Topic{TopicDesign, TopicPhotography}

// FeaturedChannel pairs a channel that is always polled for new uploads
// with the topic its videos are announced under.
type FeaturedChannel struct {
	ChannelID YoutubeChannelID
	Topic     Topic
}

// Announcement records one successfully delivered video.
type Announcement struct {
	YoutubeID    YoutubeVideoID
	Title        string
	ChannelTitle string
	Topic        Topic
	PostedAt     time.Time
}
