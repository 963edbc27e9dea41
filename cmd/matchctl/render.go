package main

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	appgames "github.com/preston-bernstein/esports-tracker/internal/app/games"
	appmatches "github.com/preston-bernstein/esports-tracker/internal/app/matches"
	"github.com/preston-bernstein/esports-tracker/internal/domain/games"
	domainmatches "github.com/preston-bernstein/esports-tracker/internal/domain/matches"
)

const emptyMessage = "No matches for this filter."

func renderSource(out io.Writer, res appmatches.LoadResult) {
	source := string(res.Source)
	if source == "" {
		source = "none"
	}
	if res.Message == "" {
		fmt.Fprintf(out, "source: %s (%d matches)\n", source, len(res.Matches))
		return
	}
	fmt.Fprintf(out, "source: %s (%d matches): %s\n", source, len(res.Matches), res.Message)
}

func newTable(out io.Writer, title string) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.SetStyle(table.StyleLight)
	if title != "" {
		t.SetTitle(title)
	}
	return t
}

func renderMatches(out io.Writer, title string, views []domainmatches.View) {
	if len(views) == 0 {
		fmt.Fprintf(out, "%s: %s\n", title, emptyMessage)
		return
	}
	t := newTable(out, title)
	t.AppendHeader(table.Row{"ID", "Game", "Match", "When", "Status", "Score"})
	for _, v := range views {
		score := "-"
		if v.ShowScore {
			score = v.ScoreText()
		}
		t.AppendRow(table.Row{
			v.ID.String(),
			v.GameLabel,
			fmt.Sprintf("%s vs %s", v.TeamA, v.TeamB),
			v.DisplayDate,
			fmt.Sprintf("%s (%s)", v.Badge, v.Label),
			score,
		})
	}
	t.AppendFooter(table.Row{"", "", "", "", "Total", len(views)})
	t.Render()
}

func renderGames(out io.Writer, options []appgames.Option) {
	t := newTable(out, "Games")
	t.AppendHeader(table.Row{"Key", "Label", "Badge", "Matches"})
	for _, o := range options {
		t.AppendRow(table.Row{string(o.Key), o.Label, o.Badge, o.Count})
	}
	t.Render()
}

func renderDashboard(out io.Writer, d domainmatches.Dashboard) {
	renderMatches(out, "Live", d.Live)
	renderMatches(out, "Matches", d.Matches)

	t := newTable(out, "Per game")
	t.AppendHeader(table.Row{"Game", "Matches"})
	for _, meta := range games.Catalog() {
		t.AppendRow(table.Row{meta.Label, d.Counts[string(meta.Key)]})
	}
	t.Render()
}
