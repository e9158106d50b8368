package main

import (
	"fmt"

	"github.com/signadot/gedcom-xml/encode"

	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	opts := cfg.encOpts(cc.Out)
	for _, file := range args {
		forest, err := cfg.loadFile(cc, file)
		if err != nil {
			return err
		}
		if err := encode.Encode(forest, cc.Out, opts...); err != nil {
			return fmt.Errorf("error encoding %s: %w", file, err)
		}
	}
	return nil
}
