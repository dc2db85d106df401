package board

import (
	"regexp"
	"sort"
	"strings"

	"github.com/fr4nk3nst1ner/jobads/internal/models"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Segment is a run of text that either matched the search or did not.
type Segment struct {
	Text  string
	Match bool
}

// HighlightSegments splits text around every case-insensitive occurrence of
// query. The query is matched literally.
func HighlightSegments(text, query string) []Segment {
	if query == "" {
		return []Segment{{Text: text}}
	}

	re := regexp.MustCompile("(?i)" + regexp.QuoteMeta(query))
	var segments []Segment
	last := 0
	for _, loc := range re.FindAllStringIndex(text, -1) {
		if loc[0] > last {
			segments = append(segments, Segment{Text: text[last:loc[0]]})
		}
		segments = append(segments, Segment{Text: text[loc[0]:loc[1]], Match: true})
		last = loc[1]
	}
	if last < len(text) || len(segments) == 0 {
		segments = append(segments, Segment{Text: text[last:]})
	}
	return segments
}

// Highlight wraps every match of query in text with mark.
func Highlight(text, query string, mark func(string) string) string {
	if query == "" {
		return text
	}
	var b strings.Builder
	for _, seg := range HighlightSegments(text, query) {
		if seg.Match {
			b.WriteString(mark(seg.Text))
		} else {
			b.WriteString(seg.Text)
		}
	}
	return b.String()
}

// Suggest returns up to n distinct titles that fuzzily resemble query,
// closest first.
func Suggest(records []models.JobRecord, query string, n int) []string {
	if query == "" || n <= 0 {
		return nil
	}

	titles := make([]string, 0, len(records))
	for _, r := range records {
		titles = append(titles, r.Title)
	}

	ranks := fuzzy.RankFindNormalizedFold(query, titles)
	sort.Stable(ranks)

	seen := make(map[string]struct{})
	var out []string
	for _, rank := range ranks {
		if _, dup := seen[rank.Target]; dup {
			continue
		}
		seen[rank.Target] = struct{}{}
		out = append(out, rank.Target)
		if len(out) == n {
			break
		}
	}
	return out
}
