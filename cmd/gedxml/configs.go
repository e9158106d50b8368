package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/gedcom-xml/encode"
	"github.com/signadot/gedcom-xml/format"
	"github.com/signadot/gedcom-xml/ir"
	"github.com/signadot/gedcom-xml/parse"
	"github.com/signadot/gedcom-xml/query"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Strict  bool   `cli:"name=strict desc='reject untyped identifiers and skipped levels'"`
	Indent  int    `cli:"name=indent desc='indent nested elements by this many spaces'"`
	Filter  string `cli:"name=filter desc='keep only level 0 records matching this expression'"`
	Color   bool   `cli:"name=color desc='encode with color'"`
	NoColor bool   `cli:"name=no-color desc='never encode with color'"`

	OutFormat *format.Format

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

func (cfg *MainConfig) format() format.Format {
	if cfg.OutFormat != nil {
		return *cfg.OutFormat
	}
	return format.XMLFormat
}

func (cfg *MainConfig) parseOpts(name string) []parse.ParseOption {
	return []parse.ParseOption{
		parse.ParseStrict(cfg.Strict),
		parse.ParseFilename(name),
	}
}

// encOpts returns the encoding options for output to w. Colors are used
// when asked for, or when w is a terminal and they were not turned off. A
// nil w is a file and never gets colors.
func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodeFormat(cfg.format()),
		encode.EncodeIndent(cfg.Indent),
	}
	if w == nil || cfg.NoColor || !cfg.format().IsXML() {
		return res
	}
	if cfg.Color {
		return append(res, encode.EncodeColors(encode.NewColors()))
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

// load parses the records of r, named name, and applies the filter.
func (cfg *MainConfig) load(name string, r io.Reader) ([]*ir.Node, error) {
	forest, err := parse.ParseReader(r, cfg.parseOpts(name)...)
	if err != nil {
		return nil, err
	}
	if cfg.Filter == "" {
		return forest, nil
	}
	flt, err := query.Compile(cfg.Filter)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	return flt.Select(forest)
}

// loadFile loads file, or the command input when file is "-".
func (cfg *MainConfig) loadFile(cc *cli.Context, file string) ([]*ir.Node, error) {
	if file == "-" {
		return cfg.load("<stdin>", cc.In)
	}
	f, err := os.Open(file)
	if err != nil {
		return nil, fmt.Errorf("could not open %q: %w", file, err)
	}
	defer f.Close()
	return cfg.load(file, f)
}

type ConvertConfig struct {
	*MainConfig
	Out string `cli:"name=o desc='output file, - for stdout (default: input with the output format extension)'"`

	Convert *cli.Command
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

type TreeConfig struct {
	*MainConfig

	Tree *cli.Command
}

type CheckConfig struct {
	*MainConfig
	Out     string `cli:"name=o desc='converted file to check (default: input with the output format extension)'"`
	Context int    `cli:"name=U desc='lines of context around differences'"`

	Check *cli.Command
}
