package main

import (
	"fmt"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/docmark/docmark"
)

type grammarCmd struct{}

func (c *grammarCmd) Run(ctx *kong.Context) error {
	if err := docmark.VerifyGrammar(); err != nil {
		return err
	}
	_, err := fmt.Fprintln(ctx.Stdout, strings.TrimSpace(docmark.Grammar))
	return err
}
