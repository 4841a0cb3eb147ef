package main

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fwojciec/clipper"
	"github.com/fwojciec/clipper/fs"
	"golang.org/x/sync/errgroup"
)

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	inputs := c.Inputs
	if len(inputs) == 0 {
		if c.Browser {
			err := clipper.Errorf(clipper.EINVALID, "at least one URL required with --browser")
			fmt.Fprintf(deps.Stderr, "error: %s\n", clipper.ErrorMessage(err))
			return err
		}
		inputs = []string{"-"}
	}
	if c.URL != "" && len(inputs) > 1 {
		err := clipper.Errorf(clipper.EINVALID, "--url applies to a single input")
		fmt.Fprintf(deps.Stderr, "error: %s\n", clipper.ErrorMessage(err))
		return err
	}

	results, errs := c.extractAll(deps, inputs)

	var firstErr error
	var found []*clipper.ExtractionResult
	for i, err := range errs {
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s: %s\n", inputs[i], clipper.ErrorMessage(err))
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		found = append(found, results[i])
	}

	if len(found) > 0 {
		if err := c.write(deps, found); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", clipper.ErrorMessage(err))
			return err
		}
	}

	return firstErr
}

// extractAll extracts every input with at most Concurrency in flight. The
// returned slices are indexed like inputs.
func (c *ExtractCmd) extractAll(deps *Dependencies, inputs []string) ([]*clipper.ExtractionResult, []error) {
	results := make([]*clipper.ExtractionResult, len(inputs))
	errs := make([]error, len(inputs))

	limit := c.Concurrency
	if limit <= 0 {
		limit = 1
	}

	var g errgroup.Group
	g.SetLimit(limit)
	for i, input := range inputs {
		g.Go(func() error {
			results[i], errs[i] = c.extractOne(deps.Ctx, deps, input)
			return nil
		})
	}
	_ = g.Wait()

	return results, errs
}

func (c *ExtractCmd) extractOne(ctx context.Context, deps *Dependencies, input string) (*clipper.ExtractionResult, error) {
	host, release, err := openHost(ctx, deps, input, c.URL, c.Browser)
	if err != nil {
		return nil, err
	}
	defer release()

	return deps.Content.ExtractContent(ctx, host)
}

// write prints results to stdout, or saves them into Out.
func (c *ExtractCmd) write(deps *Dependencies, results []*clipper.ExtractionResult) error {
	if c.Out == "" {
		out, err := render(c.Format, deps.Markdown, results)
		if err != nil {
			return err
		}
		fmt.Fprint(deps.Stdout, out)
		return nil
	}

	ext, enc := renderer(c.Format, deps.Markdown)
	dir := filepath.Clean(c.Out)
	store := fs.NewFileStore(filepath.Dir(dir), filepath.Base(dir), fs.WithRenderer(ext, enc))
	for _, r := range results {
		if err := store.Save(deps.Ctx, r); err != nil {
			_ = store.Abort()
			return err
		}
	}
	if err := store.Commit(); err != nil {
		_ = store.Abort()
		return err
	}

	fmt.Fprintf(deps.Stdout, "Saved %d results to %s\n", len(results), dir)
	return nil
}
