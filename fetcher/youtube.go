package fetcher

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"time"

	"ewintr.nl/showreel/model"
	"google.golang.org/api/youtube/v3"
)

const (
	// minDurationSeconds excludes short-form content. The "medium"
	// videoDuration passed to the search call is only a coarse server-side
	// bucket, the parsed duration is checked again locally.
	minDurationSeconds = 120

	// searchWindow restricts topic searches to recent uploads.
	searchWindow = 30 * 24 * time.Hour

	// rawSearchResults is the number of candidates fetched for a topic
	// search before re-sorting by view count and truncating.
	rawSearchResults = 15
)

type Youtube struct {
	client *youtube.Service
	pick   func(n int) int
}

// NewYoutube wraps the YouTube Data API client. A nil client means no
// credential is configured, both fetch operations then yield no candidates
// without touching the network.
func NewYoutube(client *youtube.Service) *Youtube {
	return &Youtube{
		client: client,
		pick:   rand.Intn,
	}
}

// FetchChannelVideos returns the newest uploads of a channel, at most limit,
// restricted to videos of at least two minutes.
func (y *Youtube) FetchChannelVideos(channelID model.YoutubeChannelID, limit int64) ([]model.Video, error) {
	if y.client == nil {
		return nil, nil
	}

	response, err := y.client.Search.
		List([]string{"id"}).
		ChannelId(string(channelID)).
		Type("video").
		Order("date").
		MaxResults(limit).
		VideoDuration("medium").
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to search channel uploads: %w", err)
	}

	ids := videoIDs(response)
	if len(ids) == 0 {
		return nil, nil
	}

	return y.videoDetails(ids)
}

// FetchTopicVideos picks one query from the topic's vocabulary and returns
// the most viewed matching videos of the past thirty days, at most limit.
func (y *Youtube) FetchTopicVideos(topic model.Topic, limit int) ([]model.Video, error) {
	if y.client == nil {
		return nil, nil
	}

	queries := searchQueries[topic]
	query := queries[y.pick(len(queries))]

	response, err := y.client.Search.
		List([]string{"id"}).
		Q(query).
		Type("video").
		Order("viewCount").
		PublishedAfter(time.Now().Add(-searchWindow).Format(time.RFC3339)).
		MaxResults(rawSearchResults).
		VideoDuration("medium").
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to search topic %q: %w", query, err)
	}

	ids := videoIDs(response)
	if len(ids) == 0 {
		return nil, nil
	}

	videos, err := y.videoDetails(ids)
	if err != nil {
		return nil, err
	}

	sortByViews(videos)
	if len(videos) > limit {
		videos = videos[:limit]
	}

	return videos, nil
}

func (y *Youtube) videoDetails(ids []string) ([]model.Video, error) {
	response, err := y.client.Videos.
		List([]string{"snippet", "statistics", "contentDetails"}).
		Id(strings.Join(ids, ",")).
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch video details: %w", err)
	}

	videos := make([]model.Video, 0, len(response.Items))
	for _, item := range response.Items {
		if item.Snippet == nil || item.ContentDetails == nil {
			continue
		}
		video := model.Video{
			YoutubeID:    model.YoutubeVideoID(item.Id),
			Title:        item.Snippet.Title,
			ChannelTitle: item.Snippet.ChannelTitle,
			Description:  item.Snippet.Description,
			ThumbnailURL: bestThumbnail(item.Snippet.Thumbnails),
			PublishedAt:  item.Snippet.PublishedAt,
			Duration:     item.ContentDetails.Duration,
		}
		if item.Statistics != nil {
			video.ViewCount = item.Statistics.ViewCount
			video.LikeCount = item.Statistics.LikeCount
		}
		videos = append(videos, video)
	}

	return filterShortForm(videos), nil
}

func videoIDs(response *youtube.SearchListResponse) []string {
	ids := make([]string, 0, len(response.Items))
	for _, item := range response.Items {
		if item.Id == nil || item.Id.VideoId == "" {
			continue
		}
		ids = append(ids, item.Id.VideoId)
	}

	return ids
}

func bestThumbnail(details *youtube.ThumbnailDetails) string {
	if details == nil {
		return ""
	}
	if details.Maxres != nil {
		return details.Maxres.Url
	}
	if details.High != nil {
		return details.High.Url
	}

	return ""
}

func filterShortForm(videos []model.Video) []model.Video {
	kept := make([]model.Video, 0, len(videos))
	for _, video := range videos {
		if video.DurationSeconds() < minDurationSeconds {
			continue
		}
		kept = append(kept, video)
	}

	return kept
}

func sortByViews(videos []model.Video) {
	sort.SliceStable(videos, func(i, j int) bool {
		return videos[i].ViewCount > videos[j].ViewCount
	})
}
