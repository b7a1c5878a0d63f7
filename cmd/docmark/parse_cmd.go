package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime"
	"sort"

	"github.com/alecthomas/kong"
	"github.com/alecthomas/repr"
	"github.com/fatih/color"
	"github.com/vmihailenco/msgpack/v5"
	"golang.org/x/sync/errgroup"

	"github.com/docmark/docmark"
)

var headerColor = color.New(color.FgYellow, color.Bold)

type parseCmd struct {
	Config    string            `short:"c" type:"existingfile" help:"TOML file with variables and limits."`
	Format    string            `short:"f" enum:"repr,sexp,msgpack" default:"repr" help:"Output format (${enum})."`
	Define    map[string]string `short:"D" placeholder:"NAME=VALUE" help:"Define a variable ahead of the document. Takes precedence over the config file."`
	Override  bool              `help:"Later variable definitions shadow earlier ones."`
	MaxPasses int               `help:"Maximum variable substitution passes (default ${max_passes})."`
	MaxDepth  int               `help:"Maximum block nesting depth (default ${max_depth})."`
	Trace     bool              `help:"Trace the parse to stderr."`
	Jobs      int               `short:"j" help:"Number of files to parse concurrently (defaults to the number of CPUs)."`
	Files     []string          `arg:"" optional:"" help:"Doc comments to parse (read from stdin if omitted)."`
}

func (c *parseCmd) Help() string {
	return `
Parses doc comments and prints the resulting document trees, either as Go
values, as compact S-expressions or as MessagePack for other tools. Files are
parsed concurrently and printed in the order given.
`
}

func (c *parseCmd) Run(ctx *kong.Context) error {
	options, err := c.options(ctx.Stderr)
	if err != nil {
		return err
	}
	parser, err := docmark.New(options...)
	if err != nil {
		return err
	}

	files := c.Files
	if len(files) == 0 {
		files = []string{"-"}
	}
	jobs := c.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	if c.Trace {
		jobs = 1
	}
	docs := make([]*docmark.Document, len(files))
	g, gctx := errgroup.WithContext(context.Background())
	g.SetLimit(min(jobs, len(files)))
	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			doc, err := parseFile(parser, path)
			if err != nil {
				return err
			}
			docs[i] = doc
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for i, doc := range docs {
		// msgpack output stays a plain stream of values.
		if len(files) > 1 && c.Format != "msgpack" {
			if _, err := headerColor.Fprintf(ctx.Stdout, "==> %s <==\n", files[i]); err != nil {
				return err
			}
		}
		if err := c.print(ctx.Stdout, doc); err != nil {
			return err
		}
	}
	return nil
}

// options merges the config file, if any, with the command line flags.
func (c *parseCmd) options(trace io.Writer) ([]docmark.Option, error) {
	cfg := config{}
	if c.Config != "" {
		var err error
		cfg, err = loadConfig(c.Config)
		if err != nil {
			return nil, err
		}
	}
	variables := map[string]string{}
	for name, value := range cfg.Variables {
		variables[name] = value
	}
	for name, value := range c.Define {
		variables[name] = value
	}
	names := make([]string, 0, len(variables))
	for name := range variables {
		names = append(names, name)
	}
	sort.Strings(names)

	options := []docmark.Option{}
	for _, name := range names {
		options = append(options, docmark.Define(name, variables[name]))
	}
	if c.Override || cfg.Override {
		options = append(options, docmark.OverrideDefinitions())
	}
	if passes := firstPositive(c.MaxPasses, cfg.MaxPasses); passes > 0 {
		options = append(options, docmark.MaxSubstitutionPasses(passes))
	}
	if depth := firstPositive(c.MaxDepth, cfg.MaxDepth); depth > 0 {
		options = append(options, docmark.MaxDepth(depth))
	}
	if c.Trace {
		options = append(options, docmark.Trace(trace))
	}
	return options, nil
}

func (c *parseCmd) print(w io.Writer, doc *docmark.Document) error {
	switch c.Format {
	case "sexp":
		_, err := fmt.Fprintln(w, docmark.Dump(doc))
		return err
	case "msgpack":
		return msgpack.NewEncoder(w).Encode(doc)
	default:
		repr.New(w, repr.Indent("  "), repr.OmitEmpty(true)).Println(doc)
		return nil
	}
}

func parseFile(parser *docmark.Parser, path string) (*docmark.Document, error) {
	if path == "-" {
		return parser.Parse("<stdin>", os.Stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return parser.Parse(path, f)
}

func firstPositive(values ...int) int {
	for _, value := range values {
		if value > 0 {
			return value
		}
	}
	return 0
}
