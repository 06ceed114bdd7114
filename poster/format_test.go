package poster

import (
	"strings"
	"testing"
)

func TestFormatCount(t *testing.T) {
	tests := []struct {
		count uint64
		want  string
	}{
		{1_234_567, "1.2M"},
		{4_500, "4.5K"},
		{999, "999"},
		{1_000, "1.0K"},
		{1_000_000, "1.0M"},
		{0, "0"},
		{25_800_000, "25.8M"},
	}

	for _, tc := range tests {
		if got := formatCount(tc.count); got != tc.want {
			t.Errorf("formatCount(%d) = %q, want %q", tc.count, got, tc.want)
		}
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		iso  string
		want string
	}{
		{"PT1H2M3S", "1:02:03"},
		{"PT5M9S", "5:09"},
		{"PT45S", "0:45"},
		{"PT10M", "10:00"},
		{"PT2H", "2:00:00"},
		{"PT1H5S", "1:00:05"},
		{"garbage", ""},
	}

	for _, tc := range tests {
		if got := formatDuration(tc.iso); got != tc.want {
			t.Errorf("formatDuration(%q) = %q, want %q", tc.iso, got, tc.want)
		}
	}
}

func TestTruncateDescription(t *testing.T) {
	long := strings.Repeat("a", 150)
	got := truncateDescription(long)
	if got != strings.Repeat("a", 100)+"…" {
		t.Errorf("long description not cut at 100 characters: %q", got)
	}

	short := strings.Repeat("b", 90)
	if got := truncateDescription(short); got != short {
		t.Errorf("short description should be left unmodified, got %q", got)
	}

	if got := truncateDescription(""); got != "" {
		t.Errorf("empty description should stay empty, got %q", got)
	}

	// trailing whitespace at the cut point is trimmed before the ellipsis
	spaced := strings.Repeat("c", 99) + " " + strings.Repeat("d", 60)
	if got := truncateDescription(spaced); got != strings.Repeat("c", 99)+"…" {
		t.Errorf("cut point whitespace not trimmed: %q", got)
	}
}
