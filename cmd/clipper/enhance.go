package main

import (
	"fmt"

	"github.com/fwojciec/clipper"
)

// Run executes the enhance command.
func (c *EnhanceCmd) Run(deps *Dependencies) error {
	mode := clipper.EnhancementMode(c.Mode)
	if mode == "" {
		mode = deps.EnhanceMode
	}
	if mode == "" {
		mode = clipper.EnhanceSummarize
	}
	if err := mode.Validate(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", clipper.ErrorMessage(err))
		return err
	}

	host, release, err := openHost(deps.Ctx, deps, c.Input, c.URL, c.Browser)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", clipper.ErrorMessage(err))
		return err
	}
	defer release()

	result, err := deps.Content.ExtractContent(deps.Ctx, host)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", clipper.ErrorMessage(err))
		return err
	}

	text, err := deps.Enhancer.Enhance(deps.Ctx, result, mode)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", clipper.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, text)
	return nil
}
