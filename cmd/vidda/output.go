package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/mmcdole/vidda/internal/domain"
	"github.com/mmcdole/vidda/internal/tui/styles"
)

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (c *cli) printTitles(w io.Writer, titles []domain.Title) error {
	if c.jsonOutput {
		if titles == nil {
			titles = []domain.Title{}
		}
		return printJSON(w, titles)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tYEAR\tKIND\tRATING")
	for _, t := range titles {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n",
			t.ID, styles.Truncate(t.DisplayTitle(), 48), orDash(t.Year()), t.Kind, rating(t))
	}
	return tw.Flush()
}

func (c *cli) printDetail(w io.Writer, t domain.Title, saved bool) error {
	if c.jsonOutput {
		return printJSON(w, struct {
			domain.Title
			Saved bool `json:"saved"`
		}{t, saved})
	}

	fmt.Fprintf(w, "%s (%s)\n", t.DisplayTitle(), orDash(t.Year()))
	fmt.Fprintf(w, "Kind:     %s\n", t.Kind)
	fmt.Fprintf(w, "Rating:   %s\n", rating(t))
	fmt.Fprintf(w, "Saved:    %t\n", saved)
	if t.PosterURL != "" {
		fmt.Fprintf(w, "Poster:   %s\n", t.PosterURL)
	}
	if t.BackdropURL != "" {
		fmt.Fprintf(w, "Backdrop: %s\n", t.BackdropURL)
	}
	if t.Overview != "" {
		fmt.Fprintln(w)
		for _, line := range styles.Wrap(t.Overview, 78) {
			fmt.Fprintln(w, line)
		}
	}
	return nil
}

func rating(t domain.Title) string {
	if p := t.RatingPercent(); p > 0 {
		return fmt.Sprintf("%d%%", p)
	}
	return "NR"
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
