package hnlist

import (
	"fmt"
	"strings"
)

// DefaultTableLimit is the number of rows FormatTable renders when no
// positive limit is given.
const DefaultTableLimit = 20

const tableHeader = "| HN link | Link | Posted | Highlighted | Match mode |\n|---|---|---|---|---|"

// FormatTable renders matches as a markdown table, at most limit rows.
// An empty result renders a single "(none)" row.
func FormatTable(matches []*Match, limit int) string {
	if limit <= 0 {
		limit = DefaultTableLimit
	}
	if len(matches) > limit {
		matches = matches[:limit]
	}

	var sb strings.Builder
	sb.WriteString(tableHeader)
	sb.WriteString("\n")
	if len(matches) == 0 {
		sb.WriteString("| (none) | | | | |")
		return sb.String()
	}

	for i, m := range matches {
		if i > 0 {
			sb.WriteString("\n")
		}
		link := ""
		if m.URL != "" {
			link = fmt.Sprintf("[link](%s)", m.URL)
		}
		highlighted := "no"
		if m.Highlighted {
			highlighted = "yes"
		}
		mode := m.MatchMode
		if mode == "" {
			mode = MatchRegex
		}
		fmt.Fprintf(&sb, "| [HN](%s) | %s | %s | %s | %s |",
			deref(m.CommentsURL), link, deref(m.DT), highlighted, mode)
	}
	return sb.String()
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
