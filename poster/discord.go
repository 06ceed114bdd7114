package poster

import (
	"fmt"
	"net/url"
	"strings"

	"ewintr.nl/showreel/model"
	"github.com/bwmarrin/discordgo"
)

type theme struct {
	color  int
	icon   string
	label  string
	accent string
}

var topicThemes = map[model.Topic]theme{
	model.TopicDesign: {
		color:  0x9b59b6,
		icon:   "\U0001f3a8",
		label:  "Art & Design",
		accent: "\U0001f58c️",
	},
	model.TopicPhotography: {
		color:  0xe67e22,
		icon:   "\U0001f4f7",
		label:  "Photography",
		accent: "\U0001f305",
	},
}

// Discord posts announcements as themed embeds. Sending only needs the REST
// API, no gateway connection is opened.
type Discord struct {
	session *discordgo.Session
}

func NewDiscord(token string) (*Discord, error) {
	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return &Discord{}, fmt.Errorf("failed to create discord session: %w", err)
	}

	return &Discord{session: session}, nil
}

// ResolveFeed checks that the destination channel exists and is reachable.
func (d *Discord) ResolveFeed(feedID string) error {
	if _, err := d.session.Channel(feedID); err != nil {
		return fmt.Errorf("failed to resolve channel %s: %w", feedID, err)
	}

	return nil
}

func (d *Discord) Announce(feedID string, video model.Video, topic model.Topic) error {
	if _, err := d.session.ChannelMessageSendEmbed(feedID, buildEmbed(video, topic)); err != nil {
		return fmt.Errorf("failed to send embed: %w", err)
	}

	return nil
}

func buildEmbed(video model.Video, topic model.Topic) *discordgo.MessageEmbed {
	th := topicThemes[topic]
	watchURL := video.WatchURL()
	views := formatCount(video.ViewCount)
	likes := formatCount(video.LikeCount)
	duration := formatDuration(video.Duration)
	snippet := truncateDescription(video.Description)

	var description strings.Builder
	if snippet != "" {
		fmt.Fprintf(&description, "> *%s*\n\n", snippet)
	}
	fmt.Fprintf(&description, "\U0001f441️  `%s`  •  \U0001f44d  `%s`", views, likes)
	if duration != "" {
		fmt.Fprintf(&description, "  •  ⏱️  `%s`", duration)
	}
	description.WriteString("\n​")

	return &discordgo.MessageEmbed{
		Color: th.color,
		Author: &discordgo.MessageEmbedAuthor{
			Name: fmt.Sprintf("%s  %s", th.accent, video.ChannelTitle),
			URL:  "https://www.youtube.com/results?search_query=" + url.QueryEscape(video.ChannelTitle),
		},
		Title:       video.Title,
		URL:         watchURL,
		Description: description.String(),
		Image: &discordgo.MessageEmbedImage{
			URL: video.ThumbnailURL,
		},
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:  "​",
				Value: fmt.Sprintf("> ▶️  [**Watch on YouTube  →**](%s)", watchURL),
			},
		},
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("%s  %s  │  YouTube", th.icon, th.label),
		},
		Timestamp: video.PublishedAt,
	}
}
