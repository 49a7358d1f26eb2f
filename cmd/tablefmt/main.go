// Command tablefmt reformats a GitHub-Flavored-Markdown table so every
// column is padded to a uniform width and honors the alignment markers of
// the separator row.
//
// Usage:
//
//	tablefmt [flags] <path>
//
// The path may be a glob pattern (** matches recursively); each matching
// file is formatted in turn.
//
// Flags:
//
//	-w             Rewrite files in place instead of printing them
//	-check         Verify that the output re-parses to the same schema
//	-preview       Print a boxed terminal preview after each table
//	-schema        Print the inferred column schema as JSON
//	-config string Path to a TOML config file (default: .tablefmt.toml)
//	-v             Report progress on stderr
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/fwojciec/tablefmt"
	tablefs "github.com/fwojciec/tablefmt/fs"
	"github.com/fwojciec/tablefmt/goldmark"
	tablejson "github.com/fwojciec/tablefmt/json"
	"github.com/fwojciec/tablefmt/lipgloss"
)

// errUsage is returned after the usage message has been printed.
var errUsage = errors.New("usage")

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, errUsage) {
			fmt.Fprintf(os.Stderr, "tablefmt: %v\n", err)
		}
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	flags := flag.NewFlagSet("tablefmt", flag.ContinueOnError)
	flags.SetOutput(stderr)
	var (
		write      = flags.Bool("w", false, "Rewrite files in place instead of printing them")
		check      = flags.Bool("check", false, "Verify that the output re-parses to the same schema")
		preview    = flags.Bool("preview", false, "Print a boxed terminal preview after each table")
		schema     = flags.Bool("schema", false, "Print the inferred column schema as JSON")
		configPath = flags.String("config", "", "Path to a TOML config file (default: .tablefmt.toml)")
		verbose    = flags.Bool("v", false, "Report progress on stderr")
	)
	flags.Usage = func() {
		fmt.Fprintf(stderr, "Usage: %s [flags] <path>\n", flags.Name())
		flags.PrintDefaults()
	}
	if err := flags.Parse(args); err != nil {
		return errUsage
	}
	if flags.NArg() != 1 {
		flags.Usage()
		return errUsage
	}

	cfg, err := resolveConfig(*configPath, setFlags(flags), options{
		write:   *write,
		check:   *check,
		preview: *preview,
		schema:  *schema,
	})
	if err != nil {
		return err
	}

	logger := log.New(io.Discard, "tablefmt: ", 0)
	if *verbose {
		logger.SetOutput(stderr)
	}

	paths, err := tablefs.Expand(flags.Arg(0))
	if err != nil {
		return err
	}
	for i, path := range paths {
		if i > 0 && !cfg.Write {
			fmt.Fprintln(stdout)
		}
		if err := formatFile(path, cfg, stdout, logger); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
	}
	return nil
}

func formatFile(path string, cfg tablefmt.Config, stdout io.Writer, logger *log.Logger) error {
	lines, err := tablefs.ReadFile(path)
	if err != nil {
		return err
	}
	tbl, err := tablefmt.New(lines)
	if err != nil {
		return err
	}
	logger.Printf("%s: %d columns, %d rows", path, tbl.NumColumns(), len(lines)-1)

	if cfg.Check {
		if err := goldmark.Check(tbl); err != nil {
			return fmt.Errorf("check: %w", err)
		}
	}

	out := tbl.Render()
	if cfg.Write {
		if err := tablefs.WriteFile(path, out); err != nil {
			return err
		}
		logger.Printf("%s: rewritten", path)
	} else {
		fmt.Fprintln(stdout, out)
	}

	if cfg.Preview {
		fmt.Fprintln(stdout, lipgloss.Preview(tbl, cfg.Theme))
	}
	if cfg.Schema {
		data, err := tablejson.MarshalSchema(tbl)
		if err != nil {
			return fmt.Errorf("schema: %w", err)
		}
		fmt.Fprintln(stdout, string(data))
	}
	return nil
}
