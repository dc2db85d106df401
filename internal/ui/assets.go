package ui

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/fr4nk3nst1ner/jobads/internal/offline"
	"github.com/pterm/pterm"
)

// Assets prints the contents of an installed offline cache.
func (r *Renderer) Assets(name string, assets []offline.Asset) error {
	data := pterm.TableData{{"Path", "Type", "Size", "Fetched"}}
	var total uint64
	for _, a := range assets {
		size := uint64(len(a.Body))
		total += size
		data = append(data, []string{
			a.Path,
			a.ContentType,
			humanize.Bytes(size),
			humanize.RelTime(a.FetchedAt, r.now(), "ago", "from now"),
		})
	}

	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return fmt.Errorf("failed to render table: %v", err)
	}
	fmt.Fprintf(r.Out, "Cache %s: %d assets, %s\n", name, len(assets), humanize.Bytes(total))
	fmt.Fprintln(r.Out, table)
	return nil
}
