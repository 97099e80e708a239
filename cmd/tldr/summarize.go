package main

import (
	"fmt"

	"github.com/fwojciec/tldr"
)

// Run executes the summarize command.
func (c *SummarizeCmd) Run(deps *Dependencies) error {
	result, err := deps.Pipeline.Run(deps.Ctx, c.URL)
	if err != nil {
		reportError(deps, err)
		return err
	}

	fmt.Fprintln(deps.Stdout, result.Summary)
	return nil
}

// reportError prints the user-facing message for err, plus the credential
// hint when the summarizer is missing.
func reportError(deps *Dependencies, err error) {
	fmt.Fprintf(deps.Stderr, "error: %s\n", tldr.ErrorMessage(err))
	if deps.CredentialHint != "" && deps.Pipeline.Summarizer == nil && tldr.ErrorMessage(err) == tldr.MsgMissingInput {
		fmt.Fprintf(deps.Stderr, "Hint: %s\n", deps.CredentialHint)
	}
}
