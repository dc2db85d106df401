package ui

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fr4nk3nst1ner/jobads/internal/board"
	"github.com/fr4nk3nst1ner/jobads/internal/models"
	"github.com/pterm/pterm"
)

// Output formats accepted by Renderer.Render.
const (
	FormatCards = "cards"
	FormatTable = "table"
	FormatJSON  = "json"
	FormatHTML  = "html"
)

// IsValidFormat checks if the output format is supported
func IsValidFormat(format string) bool {
	switch format {
	case FormatCards, FormatTable, FormatJSON, FormatHTML:
		return true
	}
	return false
}

var (
	markStyle  = pterm.NewStyle(pterm.BgYellow, pterm.FgBlack)
	titleStyle = pterm.NewStyle(pterm.FgLightCyan, pterm.Bold)
	labelStyle = pterm.NewStyle(pterm.Bold)
)

// Renderer writes board pages. It is the only code that deals with
// presentation.
type Renderer struct {
	Out      io.Writer
	Location *time.Location
	// Now anchors relative deadlines; nil means time.Now.
	Now       func() time.Time
	ShowShare bool
}

// Render writes page in the given format. Suggestions are only used by the
// card view when the page is empty.
func (r *Renderer) Render(format string, page board.Page, query string, suggestions []string) error {
	switch format {
	case FormatTable:
		return r.Table(page)
	case FormatJSON:
		return r.JSON(page)
	case FormatHTML:
		return r.HTML(page, query)
	default:
		return r.Cards(page, query, suggestions)
	}
}

func (r *Renderer) now() time.Time {
	if r.Now != nil {
		return r.Now()
	}
	return time.Now()
}

func terminalMark(s string) string {
	return markStyle.Sprint(s)
}

// Deadline formats a record deadline with a relative hint, e.g.
// "10 Jan 2025 (3 days from now)".
func (r *Renderer) Deadline(raw string) string {
	t, ok := board.ParseDeadline(raw, r.Location)
	if !ok {
		return board.NoDeadline
	}
	return fmt.Sprintf("%s (%s)", board.FormatDeadline(raw, r.Location), humanize.RelTime(t, r.now(), "ago", "from now"))
}

// Cards prints one block per posting followed by the page footer.
func (r *Renderer) Cards(page board.Page, query string, suggestions []string) error {
	if len(page.Items) == 0 {
		fmt.Fprintln(r.Out, "No jobs found.")
		if len(suggestions) > 0 {
			fmt.Fprintf(r.Out, "Did you mean: %s?\n", strings.Join(suggestions, ", "))
		}
	}

	for _, job := range page.Items {
		r.card(job, query)
	}

	fmt.Fprintln(r.Out, PageInfo(page))
	return nil
}

func (r *Renderer) card(job models.JobRecord, query string) {
	w := r.Out
	fmt.Fprintln(w, titleStyle.Sprint(board.Highlight(job.Title, query, terminalMark)))
	fmt.Fprintf(w, "%s %s\n", labelStyle.Sprint("Location:"), job.Location)
	fmt.Fprintf(w, "%s %s\n", labelStyle.Sprint("Deadline:"), r.Deadline(job.Deadline))
	if desc := PlainText(job.Description); desc != "" {
		fmt.Fprintln(w, board.Highlight(desc, query, terminalMark))
	}
	fmt.Fprintf(w, "%s %s\n", labelStyle.Sprint("Details:"), job.Link)
	if ShowOriginalAd(job.OriginalAd) {
		fmt.Fprintf(w, "%s %s\n", labelStyle.Sprint("Original ad:"), job.OriginalAd)
	}
	if r.ShowShare {
		for _, s := range ShareLinks(job.Link) {
			fmt.Fprintf(w, "  %-9s %s\n", s.Name, s.URL)
		}
	}
	fmt.Fprintln(w, strings.Repeat("-", 80))
}

// Table prints the page as a pterm table.
func (r *Renderer) Table(page board.Page) error {
	data := pterm.TableData{{"Title", "Location", "Deadline", "Link"}}
	for _, job := range page.Items {
		data = append(data, []string{
			truncateString(job.Title, 40),
			truncateString(job.Location, 24),
			board.FormatDeadline(job.Deadline, r.Location),
			job.Link,
		})
	}

	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return fmt.Errorf("failed to render table: %v", err)
	}
	fmt.Fprintln(r.Out, table)
	fmt.Fprintln(r.Out, PageInfo(page))
	return nil
}

// JSON writes the page as a single JSON document.
func (r *Renderer) JSON(page board.Page) error {
	enc := json.NewEncoder(r.Out)
	enc.SetIndent("", "  ")
	return enc.Encode(page)
}

// PageInfo is the "Page X of Y" footer.
func PageInfo(page board.Page) string {
	return fmt.Sprintf("Page %d of %d", page.CurrentPage, page.TotalPages)
}
