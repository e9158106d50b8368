package main

import (
	"fmt"
	"os"

	"github.com/signadot/gedcom-xml/encode"
	"github.com/signadot/gedcom-xml/libdiff"

	"github.com/scott-cotton/cli"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: check takes exactly one GEDCOM file, got %d arguments", cli.ErrUsage, len(args))
	}
	if cfg.Context < 0 {
		return fmt.Errorf("%w: -U must not be negative", cli.ErrUsage)
	}
	in := args[0]
	out, err := outputPath(cfg.MainConfig, in, cfg.Out)
	if err != nil {
		return err
	}
	if out == "-" {
		return fmt.Errorf("%w: check needs a converted file, use -o", cli.ErrUsage)
	}
	forest, err := cfg.loadFile(cc, in)
	if err != nil {
		return err
	}
	want, err := encode.EncodeString(forest, cfg.encOpts(nil)...)
	if err != nil {
		return fmt.Errorf("error encoding %s: %w", in, err)
	}
	have, err := os.ReadFile(out)
	if err != nil {
		return fmt.Errorf("could not read %q: %w", out, err)
	}
	d, changed := libdiff.Text(string(have), want, cfg.Context)
	if !changed {
		theLog.Info("up to date", "input", in, "output", out)
		return nil
	}
	if _, err := fmt.Fprintf(cc.Out, "--- %s\n+++ %s (from %s)\n%s", out, out, in, d); err != nil {
		return err
	}
	theLog.Warn("out of date", "input", in, "output", out)
	return cli.ExitCodeErr(1)
}
