package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"ewintr.nl/showreel/model"
	"ewintr.nl/showreel/storage"
	"golang.org/x/exp/slog"
)

type AnnouncementAPI struct {
	announcements *storage.AnnouncementLog
	logger        *slog.Logger
}

func NewAnnouncementAPI(announcements *storage.AnnouncementLog, logger *slog.Logger) *AnnouncementAPI {
	return &AnnouncementAPI{
		announcements: announcements,
		logger:        logger,
	}
}

func (a *AnnouncementAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	subPath, _ := ShiftPath(r.URL.Path)

	switch {
	case r.Method == http.MethodGet && subPath == "":
		a.List(w, r)
	default:
		Error(w, http.StatusNotFound, "not found", fmt.Errorf("method %s with subpath %q was not registered in the announcement api", r.Method, subPath))
	}
}

func (a *AnnouncementAPI) List(w http.ResponseWriter, r *http.Request) {
	type respAnnouncement struct {
		YoutubeURL   string `json:"youtube_url"`
		Title        string `json:"title"`
		ChannelTitle string `json:"channel_title"`
		Topic        string `json:"topic"`
		PostedAt     string `json:"posted_at"`
	}

	resp := []respAnnouncement{}
	for _, announcement := range a.announcements.Recent() {
		resp = append(resp, respAnnouncement{
			YoutubeURL:   model.Video{YoutubeID: announcement.YoutubeID}.WatchURL(),
			Title:        announcement.Title,
			ChannelTitle: announcement.ChannelTitle,
			Topic:        string(announcement.Topic),
			PostedAt:     announcement.PostedAt.Format(time.RFC3339),
		})
	}

	jsonBody, err := json.Marshal(resp)
	if err != nil {
		a.logger.Error("could not marshal response", err)
		Error(w, http.StatusInternalServerError, "could not marshal response", err)
		return
	}

	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, string(jsonBody))
}
