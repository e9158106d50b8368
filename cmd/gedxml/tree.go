package main

import (
	"fmt"

	"github.com/signadot/gedcom-xml/encode"
	"github.com/signadot/gedcom-xml/format"

	"github.com/scott-cotton/cli"
)

func tree(cfg *TreeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Tree.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for i, file := range args {
		forest, err := cfg.loadFile(cc, file)
		if err != nil {
			return err
		}
		if i > 0 {
			if _, err := cc.Out.Write([]byte("---\n")); err != nil {
				return err
			}
		}
		if err := encode.Encode(forest, cc.Out, encode.EncodeFormat(format.YAMLFormat)); err != nil {
			return fmt.Errorf("error encoding %s: %w", file, err)
		}
	}
	return nil
}
