package main

import (
	"strconv"

	"github.com/alecthomas/kong"

	"github.com/docmark/docmark"
)

var version string = "dev"

type CLI struct {
	Version kong.VersionFlag
	Parse   parseCmd   `cmd:"" help:"Parse a doc comment and print its tree."`
	Grammar grammarCmd `cmd:"" help:"Print the EBNF grammar of the markup."`
}

func vars() kong.Vars {
	return kong.Vars{
		"version":    version,
		"max_passes": strconv.Itoa(docmark.DefaultMaxSubstitutionPasses),
		"max_depth":  strconv.Itoa(docmark.DefaultMaxDepth),
	}
}

func main() {
	var cli CLI
	kctx := kong.Parse(&cli,
		kong.Description(`A command-line tool for doc-comment markup.`),
		vars(),
	)
	err := kctx.Run()
	kctx.FatalIfErrorf(err)
}
