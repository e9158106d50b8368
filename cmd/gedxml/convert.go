package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/signadot/gedcom-xml/encode"
	"github.com/signadot/gedcom-xml/ir"

	"github.com/scott-cotton/cli"
)

func convert(cfg *ConvertConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Convert.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: convert takes exactly one GEDCOM file, got %d arguments", cli.ErrUsage, len(args))
	}
	in := args[0]
	out, err := outputPath(cfg.MainConfig, in, cfg.Out)
	if err != nil {
		return err
	}
	forest, err := cfg.loadFile(cc, in)
	if err != nil {
		return err
	}
	var tty io.Writer
	if out == "-" {
		tty = cc.Out
	}
	// render fully before touching the output so that failures leave no file
	doc, err := encode.EncodeString(forest, cfg.encOpts(tty)...)
	if err != nil {
		return fmt.Errorf("error encoding %s: %w", in, err)
	}
	if out == "-" {
		_, err = io.WriteString(cc.Out, doc)
		return err
	}
	if err := os.WriteFile(out, []byte(doc), 0644); err != nil {
		return fmt.Errorf("error writing %s: %w", out, err)
	}
	theLog.Info("converted", "input", in, "output", out, "roots", len(forest), "records", ir.Count(forest))
	return nil
}

// outputPath resolves where the conversion of in goes: explicit when set,
// otherwise in with its extension replaced.
func outputPath(cfg *MainConfig, in, explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	if in == "-" {
		return "-", nil
	}
	out := cfg.format().OutputPath(in)
	if filepath.Clean(out) == filepath.Clean(in) {
		return "", fmt.Errorf("%w: output for %s would overwrite it, use -o", cli.ErrUsage, in)
	}
	return out, nil
}
