/*
Command cssnorm normalizes CSS declaration blocks.

	cssnorm normalize "COLOR: Red; margin: 1px 2px"
	cssnorm get border "border: solid 1px red"
	cssnorm html page.html page-normalized.html
	cssnorm sheets page.html

Declaration text is read from the arguments, or from stdin if there are
none.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/npillmayer/cssdecl/dom/style"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	cli "github.com/urfave/cli/v3"
)

func newApp() *cli.Command {
	return &cli.Command{
		Name:            "cssnorm",
		Usage:           "validates and normalizes CSS declaration blocks",
		HideHelpCommand: true,
		Before:          setupTracing,
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "strict-important", Aliases: []string{"s"},
				Usage: "recognize only the exact suffix \" !important\""},
			&cli.BoolFlag{Name: "reset-omitted", Aliases: []string{"r"},
				Usage: "reset longhands omitted from a shorthand to their initial values"},
			&cli.BoolFlag{Name: "debug", Aliases: []string{"d"}, Usage: "trace dropped declarations to stderr"},
		},
		Commands: []*cli.Command{
			{
				Name:      "normalize",
				Usage:     "Prints a declaration list in canonical form",
				ArgsUsage: "[DECLARATIONS]",
				Action:    normalize,
			},
			{
				Name:      "get",
				Usage:     "Prints the value of a (shorthand) property",
				ArgsUsage: "PROPERTY [DECLARATIONS]",
				Action:    getProperty,
			},
			{
				Name:      "html",
				Usage:     "Normalizes the style attributes of an HTML document",
				ArgsUsage: "SOURCE [DESTINATION]",
				Action:    normalizeHTML,
			},
			{
				Name:      "sheets",
				Usage:     "Lists the style rules of the <style> elements of an HTML document",
				ArgsUsage: "SOURCE",
				Action:    listSheets,
			},
		},
	}
}

func setupTracing(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	if cmd.Bool("debug") {
		t := gologadapter.New()
		t.SetOutput(cmd.Root().ErrWriter)
		t.SetTraceLevel(tracing.LevelDebug)
		tracing.SetTraceSelector(tracing.SelectorForAdapter(func() tracing.Trace { return t }))
	}
	return ctx, nil
}

// options collects the declaration options from the command line.
func options(cmd *cli.Command) []style.Option {
	return []style.Option{
		style.StrictImportant(cmd.Bool("strict-important")),
		style.ResetOmitted(cmd.Bool("reset-omitted")),
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newApp().Run(ctx, os.Args)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cssnorm: %v\n", err)
		os.Exit(1)
	}
}
