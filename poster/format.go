package poster

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

const maxDescriptionLength = 100

var durationRE = regexp.MustCompile(`PT(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?`)

// formatCount abbreviates large view and like counts: 1234567 becomes
// "1.2M", 4500 becomes "4.5K", anything below a thousand stays literal.
func formatCount(n uint64) string {
	switch {
	case n >= 1_000_000:
		return fmt.Sprintf("%.1fM", float64(n)/1_000_000)
	case n >= 1_000:
		return fmt.Sprintf("%.1fK", float64(n)/1_000)
	default:
		return strconv.FormatUint(n, 10)
	}
}

// formatDuration renders an ISO-8601 duration human readable, "1:02:03"
// with hours, "5:09" without. Unparseable input yields the empty string.
func formatDuration(iso string) string {
	m := durationRE.FindStringSubmatch(iso)
	if m == nil {
		return ""
	}

	h, min, sec := m[1], m[2], m[3]
	if min == "" {
		min = "0"
	}
	if sec == "" {
		sec = "0"
	}
	sec = pad(sec)

	if h != "" {
		return fmt.Sprintf("%s:%s:%s", h, pad(min), sec)
	}

	return fmt.Sprintf("%s:%s", min, sec)
}

// truncateDescription cuts a description down to the first hundred
// characters, marking the cut with an ellipsis.
func truncateDescription(description string) string {
	runes := []rune(description)
	if len(runes) <= maxDescriptionLength {
		return description
	}

	return strings.TrimSpace(string(runes[:maxDescriptionLength])) + "…"
}

func pad(s string) string {
	if len(s) < 2 {
		return "0" + s
	}

	return s
}
