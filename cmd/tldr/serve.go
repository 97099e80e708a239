package main

import (
	tldrhttp "github.com/fwojciec/tldr/http"
)

// Run executes the serve command until the context is canceled.
func (c *ServeCmd) Run(deps *Dependencies) error {
	addr := c.Addr
	if addr == "" {
		addr = deps.Config.Addr
	}
	if deps.CredentialHint != "" {
		deps.Logger.Warn().Msg(deps.CredentialHint)
	}
	return tldrhttp.NewServer(deps.Pipeline, deps.Logger).Run(deps.Ctx, addr)
}
