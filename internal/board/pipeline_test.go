package board

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"github.com/fr4nk3nst1ner/jobads/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func titles(records []models.JobRecord) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.Title
	}
	return out
}

// datedRecords returns n jobs with distinct January/February 2025 deadlines,
// shuffled with a fixed seed.
func datedRecords(n int) []models.JobRecord {
	records := make([]models.JobRecord, n)
	for i := range records {
		records[i] = models.JobRecord{
			Title:    fmt.Sprintf("Job %02d", i+1),
			Deadline: fmt.Sprintf("Date(2025,0,%d)", i+1),
			Link:     models.PlaceholderLink,
		}
	}
	r := rand.New(rand.NewSource(42))
	r.Shuffle(len(records), func(i, j int) { records[i], records[j] = records[j], records[i] })
	return records
}

func TestViewThirdPageOfTwentyFive(t *testing.T) {
	state := NewViewState(datedRecords(25), testLoc)

	page, next := state.View(Query{Sort: "earliest", Page: 3})

	assert.Equal(t, 3, page.TotalPages)
	assert.Equal(t, 3, page.CurrentPage)
	assert.Equal(t, 25, page.Total)
	assert.Equal(t, []string{"Job 21", "Job 22", "Job 23", "Job 24", "Job 25"}, titles(page.Items))
	assert.Equal(t, 3, next.CurrentPage)
}

func TestViewLatestPutsUndatedFirst(t *testing.T) {
	state := NewViewState([]models.JobRecord{
		{Title: "Engineer", Deadline: ""},
		{Title: "Analyst", Deadline: "2025-01-10"},
	}, testLoc)

	page, _ := state.View(Query{Sort: SortLatest, Page: 1})
	assert.Equal(t, []string{"Engineer", "Analyst"}, titles(page.Items))

	page, _ = state.View(Query{Sort: SortEarliest, Page: 1})
	assert.Equal(t, []string{"Analyst", "Engineer"}, titles(page.Items))
}

func TestFilterMatchesTitle(t *testing.T) {
	records := []models.JobRecord{{Title: "Engineer"}, {Title: "Manager"}}
	assert.Equal(t, []string{"Engineer"}, titles(Filter(records, "eng")))
}

func TestFilterCompleteness(t *testing.T) {
	records := []models.JobRecord{
		{Title: "Senior ENGINEER"},
		{Title: "Nurse", Description: "Works with biomedical engineering staff"},
		{Title: "Driver", Description: "Class B licence"},
		{Title: "engine room mechanic"},
		{Title: "Cook"},
	}

	for _, query := range []string{"", "eng", "ENG", "nurse", "licence", "zzz", " "} {
		t.Run(fmt.Sprintf("q=%q", query), func(t *testing.T) {
			got := Filter(records, query)
			lower := strings.ToLower(query)

			var want []string
			for _, r := range records {
				if strings.Contains(strings.ToLower(r.Title), lower) || strings.Contains(strings.ToLower(r.Description), lower) {
					want = append(want, r.Title)
				}
			}
			assert.ElementsMatch(t, want, titles(got))
			for _, r := range got {
				assert.True(t,
					strings.Contains(strings.ToLower(r.Title), lower) || strings.Contains(strings.ToLower(r.Description), lower))
			}
		})
	}
}

func TestFilterEmptyQueryKeepsOrder(t *testing.T) {
	records := datedRecords(7)
	assert.Equal(t, titles(records), titles(Filter(records, "")))
}

func TestSortLatestIsReverseOfEarliest(t *testing.T) {
	records := datedRecords(18)

	earliest := titles(Sort(records, SortEarliest, testLoc))
	latest := titles(Sort(records, SortLatest, testLoc))

	reversed := make([]string, len(latest))
	for i, title := range latest {
		reversed[len(latest)-1-i] = title
	}
	assert.Equal(t, earliest, reversed)
}

func TestSortUnknownOptionIsEarliest(t *testing.T) {
	records := datedRecords(5)
	assert.Equal(t, titles(Sort(records, SortEarliest, testLoc)), titles(Sort(records, "bogus", testLoc)))
	assert.Equal(t, SortEarliest, ParseSortOption("bogus"))
	assert.Equal(t, SortLatest, ParseSortOption("latest"))
}

func TestSortUndatedAtSentinelEnd(t *testing.T) {
	records := []models.JobRecord{
		{Title: "u1"},
		{Title: "d2", Deadline: "2025-02-01"},
		{Title: "u2", Deadline: "rolling"},
		{Title: "d1", Deadline: "Date(2025,0,1)"},
		{Title: "u3"},
	}

	assert.Equal(t, []string{"d1", "d2", "u1", "u2", "u3"}, titles(Sort(records, SortEarliest, testLoc)))
	assert.Equal(t, []string{"u1", "u2", "u3", "d2", "d1"}, titles(Sort(records, SortLatest, testLoc)))
}

func TestSortIsStableAndDoesNotMutate(t *testing.T) {
	records := []models.JobRecord{
		{Title: "a", Deadline: "2025-01-10"},
		{Title: "b", Deadline: "Date(2025,0,10)"},
		{Title: "c", Deadline: "2025-01-05"},
		{Title: "d", Deadline: "2025-01-10"},
	}
	before := titles(records)

	assert.Equal(t, []string{"c", "a", "b", "d"}, titles(Sort(records, SortEarliest, testLoc)))
	assert.Equal(t, []string{"a", "b", "d", "c"}, titles(Sort(records, SortLatest, testLoc)))
	assert.Equal(t, before, titles(records))
}

func TestTotalPages(t *testing.T) {
	cases := map[int]int{0: 1, 1: 1, 9: 1, 10: 1, 11: 2, 20: 2, 21: 3, 100: 10, 101: 11}
	for count, want := range cases {
		assert.Equal(t, want, TotalPages(count), "count %d", count)
	}
}

func TestPaginateCoversEverythingOnce(t *testing.T) {
	for _, n := range []int{0, 1, 9, 10, 11, 25, 40, 43} {
		records := Sort(datedRecords(n), SortEarliest, testLoc)
		total := TotalPages(n)

		var all []string
		for p := 1; p <= total; p++ {
			page := Paginate(records, p)
			require.Equal(t, total, page.TotalPages)
			if p < total {
				assert.Len(t, page.Items, PageSize)
			}
			all = append(all, titles(page.Items)...)
		}
		if n == 0 {
			assert.Empty(t, all)
			continue
		}
		assert.Equal(t, titles(records), all, "n=%d", n)
	}
}

func TestPaginateClampsPage(t *testing.T) {
	records := datedRecords(15)

	page := Paginate(records, 0)
	assert.Equal(t, 1, page.CurrentPage)

	page = Paginate(records, -4)
	assert.Equal(t, 1, page.CurrentPage)

	page = Paginate(records, 9)
	assert.Equal(t, 2, page.CurrentPage)
	assert.Len(t, page.Items, 5)
}

func TestViewEmptyRecords(t *testing.T) {
	page, next := NewViewState(nil, testLoc).View(Query{Search: "x", Page: 5})
	assert.Empty(t, page.Items)
	assert.Equal(t, 1, page.TotalPages)
	assert.Equal(t, 1, page.CurrentPage)
	assert.Equal(t, 1, next.CurrentPage)
}

func TestViewShrinkingSearchClampsPage(t *testing.T) {
	records := datedRecords(25)
	records[3].Title = "Rare role"
	state := NewViewState(records, testLoc)
	state.CurrentPage = 3

	page, state := state.Render("rare", SortEarliest)
	assert.Equal(t, 1, page.CurrentPage)
	assert.Equal(t, 1, state.CurrentPage)
	assert.Equal(t, []string{"Rare role"}, titles(page.Items))
}

func TestNextAndPrev(t *testing.T) {
	state := NewViewState(datedRecords(21), testLoc)

	state = state.Prev()
	assert.Equal(t, 1, state.CurrentPage)

	state = state.Next("")
	state = state.Next("")
	assert.Equal(t, 3, state.CurrentPage)

	state = state.Next("")
	assert.Equal(t, 3, state.CurrentPage, "no page past the last")

	state = state.Prev()
	assert.Equal(t, 2, state.CurrentPage)

	state = NewViewState(datedRecords(21), testLoc).Next("Job 01")
	assert.Equal(t, 1, state.CurrentPage, "filtered set fits on one page")
}

func TestViewDoesNotMutateRecords(t *testing.T) {
	records := datedRecords(12)
	before := titles(records)

	state := NewViewState(records, testLoc)
	state.View(Query{Sort: SortLatest, Page: 2})

	assert.Equal(t, before, titles(records))
}
