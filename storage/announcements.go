package storage

import (
	"sync"

	"ewintr.nl/showreel/model"
)

// AnnouncementLog keeps the most recent announcements for the status API.
// Oldest entries are dropped once the maximum is reached.
type AnnouncementLog struct {
	mu      sync.RWMutex
	entries []model.Announcement
	max     int
}

func NewAnnouncementLog(max int) *AnnouncementLog {
	return &AnnouncementLog{
		entries: make([]model.Announcement, 0, max),
		max:     max,
	}
}

func (l *AnnouncementLog) Append(a model.Announcement) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.entries = append(l.entries, a)
	if len(l.entries) > l.max {
		l.entries = l.entries[len(l.entries)-l.max:]
	}
}

// Recent returns the stored announcements, newest first.
func (l *AnnouncementLog) Recent() []model.Announcement {
	l.mu.RLock()
	defer l.mu.RUnlock()

	recent := make([]model.Announcement, 0, len(l.entries))
	for i := len(l.entries) - 1; i >= 0; i-- {
		recent = append(recent, l.entries[i])
	}

	return recent
}
