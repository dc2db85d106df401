// Package board holds the job board view pipeline: deadline handling,
// search filtering, deadline ordering and pagination. Everything here is
// pure; callers own the ViewState and replace it after each interaction.
package board

import (
	"sort"
	"strings"
	"time"

	"github.com/fr4nk3nst1ner/jobads/internal/models"
)

// PageSize is the number of postings shown per page.
const PageSize = 10

// SortOption selects the deadline ordering.
type SortOption string

const (
	SortLatest   SortOption = "latest"
	SortEarliest SortOption = "earliest"
)

// ParseSortOption maps anything other than "latest" to SortEarliest.
func ParseSortOption(s string) SortOption {
	if SortOption(s) == SortLatest {
		return SortLatest
	}
	return SortEarliest
}

// Query describes one user interaction with the board.
type Query struct {
	Search string
	Sort   SortOption
	Page   int
}

// Page is the visible slice of the board.
type Page struct {
	Items       []models.JobRecord `json:"items"`
	CurrentPage int                `json:"current_page"`
	TotalPages  int                `json:"total_pages"`
	Total       int                `json:"total"`
}

// ViewState is the board state between interactions. Records are replaced
// as a whole on reload and never modified in place.
type ViewState struct {
	Records     []models.JobRecord
	CurrentPage int
	// Location used to read deadlines. Nil means time.Local.
	Location *time.Location
}

// NewViewState starts a board on page one.
func NewViewState(records []models.JobRecord, loc *time.Location) ViewState {
	return ViewState{Records: records, CurrentPage: 1, Location: loc}
}

// View runs filter, sort and paginate for q and returns the page together
// with the state carrying the clamped page number.
func (s ViewState) View(q Query) (Page, ViewState) {
	filtered := Filter(s.Records, q.Search)
	sorted := Sort(filtered, q.Sort, s.Location)
	page := Paginate(sorted, q.Page)

	next := s
	next.CurrentPage = page.CurrentPage
	return page, next
}

// Render is View at the state's own current page.
func (s ViewState) Render(search string, opt SortOption) (Page, ViewState) {
	return s.View(Query{Search: search, Sort: opt, Page: s.CurrentPage})
}

// Next moves forward one page if the filtered set has one.
func (s ViewState) Next(search string) ViewState {
	total := TotalPages(len(Filter(s.Records, search)))
	if s.CurrentPage < total {
		s.CurrentPage++
	}
	return s
}

// Prev moves back one page, stopping at the first.
func (s ViewState) Prev() ViewState {
	if s.CurrentPage > 1 {
		s.CurrentPage--
	}
	return s
}

// Filter keeps records whose title or description contains search,
// ignoring case. An empty search keeps everything.
func Filter(records []models.JobRecord, search string) []models.JobRecord {
	search = strings.ToLower(search)
	out := make([]models.JobRecord, 0, len(records))
	for _, r := range records {
		if strings.Contains(strings.ToLower(r.Title), search) ||
			strings.Contains(strings.ToLower(r.Description), search) {
			out = append(out, r)
		}
	}
	return out
}

// Sort orders a copy of records by deadline. SortLatest is descending,
// anything else ascending. Undated records compare as MaxDeadline, so they
// come last when ascending and first when descending. Equal deadlines keep
// their input order.
func Sort(records []models.JobRecord, opt SortOption, loc *time.Location) []models.JobRecord {
	type keyed struct {
		rec models.JobRecord
		at  time.Time
	}
	items := make([]keyed, len(records))
	for i, r := range records {
		items[i] = keyed{rec: r, at: sortKey(r.Deadline, loc)}
	}

	latest := opt == SortLatest
	sort.SliceStable(items, func(i, j int) bool {
		if latest {
			return items[i].at.After(items[j].at)
		}
		return items[i].at.Before(items[j].at)
	})

	out := make([]models.JobRecord, len(items))
	for i, it := range items {
		out[i] = it.rec
	}
	return out
}

// TotalPages is ceil(count/PageSize), never less than one.
func TotalPages(count int) int {
	pages := (count + PageSize - 1) / PageSize
	if pages < 1 {
		return 1
	}
	return pages
}

// Paginate clamps page into [1, TotalPages] and returns that slice.
func Paginate(records []models.JobRecord, page int) Page {
	total := TotalPages(len(records))
	if page > total {
		page = total
	}
	if page < 1 {
		page = 1
	}

	start := (page - 1) * PageSize
	end := start + PageSize
	if end > len(records) {
		end = len(records)
	}
	if start > end {
		start = end
	}

	items := make([]models.JobRecord, end-start)
	copy(items, records[start:end])
	return Page{
		Items:       items,
		CurrentPage: page,
		TotalPages:  total,
		Total:       len(records),
	}
}
