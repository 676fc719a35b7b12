package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/npillmayer/cssdecl/dom"
	"github.com/npillmayer/cssdecl/dom/style"
	"github.com/npillmayer/cssdecl/dom/style/cssom/douceuradapter"
	cli "github.com/urfave/cli/v3"
	"golang.org/x/net/html"
	"golang.org/x/net/html/charset"
)

// declarations returns the declaration text from the arguments, starting
// at argument from, or from the input stream if there are none.
func declarations(cmd *cli.Command, from int) (string, error) {
	args := cmd.Args().Slice()
	if len(args) > from {
		return strings.Join(args[from:], ";"), nil
	}
	data, err := io.ReadAll(cmd.Root().Reader)
	if err != nil {
		return "", fmt.Errorf("reading declarations: %w", err)
	}
	return string(data), nil
}

func normalize(_ context.Context, cmd *cli.Command) error {
	text, err := declarations(cmd, 0)
	if err != nil {
		return err
	}
	decl := style.NewDeclaration(text, options(cmd)...)
	w := cmd.Root().Writer
	if !cmd.Bool("lines") {
		_, err = fmt.Fprintln(w, decl.Serialize())
		return err
	}
	for _, sv := range decl.Values() {
		if _, err = fmt.Fprintln(w, sv); err != nil {
			return err
		}
	}
	return nil
}

func getProperty(_ context.Context, cmd *cli.Command) error {
	if cmd.NArg() == 0 {
		return fmt.Errorf("missing PROPERTY")
	}
	text, err := declarations(cmd, 1)
	if err != nil {
		return err
	}
	decl := style.NewDeclaration(text, options(cmd)...)
	name := cmd.Args().First()
	value := decl.Get(name)
	if p := decl.Priority(name); p != "" && value != "" {
		value += " !" + p
	}
	_, err = fmt.Fprintln(cmd.Root().Writer, value)
	return err
}

// readHTML parses an HTML document. Documents not encoded in UTF-8 are
// converted, using the encoding declared in the document or sniffed from
// its content.
func readHTML(path string) (*html.Node, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	r, err := charset.NewReader(f, "text/html")
	if err != nil {
		return nil, fmt.Errorf("detecting encoding of %s: %w", path, err)
	}
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return doc, nil
}

func normalizeHTML(_ context.Context, cmd *cli.Command) (err error) {
	if cmd.NArg() == 0 {
		return fmt.Errorf("missing SOURCE")
	}
	doc, err := readHTML(cmd.Args().Get(0))
	if err != nil {
		return err
	}
	dom.NormalizeInlineStyles(doc, options(cmd)...)
	out := cmd.Root().Writer
	if dest := cmd.Args().Get(1); dest != "" {
		f, err := os.Create(dest)
		if err != nil {
			return err
		}
		defer func() {
			if e := f.Close(); err == nil {
				err = e
			}
		}()
		out = f
	}
	return html.Render(out, doc)
}

func listSheets(_ context.Context, cmd *cli.Command) error {
	if cmd.NArg() == 0 {
		return fmt.Errorf("missing SOURCE")
	}
	doc, err := readHTML(cmd.Args().Get(0))
	if err != nil {
		return err
	}
	sheets, err := douceuradapter.ExtractStyleElements(doc, options(cmd)...)
	if err != nil {
		return err
	}
	w := cmd.Root().Writer
	for _, sheet := range sheets {
		if media := sheet.Media(); media != "" {
			fmt.Fprintf(w, "@media %s\n", media)
		}
		for _, rule := range sheet.Rules() {
			fmt.Fprintf(w, "%s { %s }\n", rule.SelectorText(), rule.Style().CSSText())
		}
	}
	return nil
}
