package main

import (
	"fmt"
	"time"

	"github.com/fwojciec/clipper"
)

// Run executes the log command.
func (c *LogCmd) Run(deps *Dependencies) error {
	filter := clipper.ExtractionLogFilter{Limit: c.Limit}
	if c.URL != "" {
		filter.URL = &c.URL
	}

	entries, err := deps.Extractions.FindExtractions(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", clipper.ErrorMessage(err))
		return err
	}

	if len(entries) == 0 {
		fmt.Fprintln(deps.Stdout, "No extractions recorded yet. Use 'clipper extract' to add some.")
		return nil
	}

	for _, e := range entries {
		title := e.Title
		if title == "" {
			title = "(untitled)"
		}
		fmt.Fprintf(deps.Stdout, "%s  %-10s  %5d words  %s  %s\n",
			e.ExtractedAt.Local().Format(time.DateTime), e.Method, e.WordCount, e.URL, title)
	}

	return nil
}
