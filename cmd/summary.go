package cmd

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/filesan-cli/filesan/organizer"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"golang.org/x/term"
)

// printSummary renders the counters of a finished run as two tables, one for
// the totals and one for the per-category breakdown.
func printSummary(stats *organizer.Stats) {
	fmt.Println(renderTable("Summary", []table.Row{
		{"Scanned", stats.Total},
		{"Organized", stats.Organized},
		{"Skipped", stats.Skipped},
		{"Errors", stats.Errors},
		{"Moved", humanize.IBytes(stats.Bytes)},
		{"Elapsed", stats.Elapsed.Round(time.Millisecond).String()},
	}))

	if len(stats.Categories) == 0 {
		return
	}

	type entry struct {
		name  string
		count int
	}
	entries := make([]entry, 0, len(stats.Categories))
	for name, count := range stats.Categories {
		entries = append(entries, entry{name, count})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].count != entries[j].count {
			return entries[i].count > entries[j].count
		}
		return entries[i].name < entries[j].name
	})

	rows := make([]table.Row, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, table.Row{e.name, strconv.Itoa(e.count)})
	}
	fmt.Println(renderTable("Categories", rows))
}

func renderTable(title string, rows []table.Row) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.SetTitle(title)

	if width, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && width > 0 {
		tw.SetAllowedRowLength(width)
	}

	for _, row := range rows {
		tw.AppendRow(row)
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft},
		{Number: 2, Align: text.AlignRight},
	})

	return tw.Render()
}
