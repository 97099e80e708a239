package main

import (
	"encoding/json"
	"fmt"
)

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	doc, err := deps.Pipeline.Extract(deps.Ctx, c.URL)
	if err != nil {
		reportError(deps, err)
		return err
	}

	if c.JSON {
		enc := json.NewEncoder(deps.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	}

	if doc.Title != "" {
		fmt.Fprintf(deps.Stdout, "# %s\n\n", doc.Title)
	}
	fmt.Fprintln(deps.Stdout, doc.Text)
	fmt.Fprintf(deps.Stderr, "extracted %d characters via %s\n", len(doc.Text), doc.Method)
	return nil
}
