package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/scott-cotton/cli"
)

// gedxmlMain runs a subcommand, or converts when the first argument is not
// one. A lone argument naming an existing file is converted even when it
// is also a subcommand name.
func gedxmlMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Color && cfg.NoColor {
		return fmt.Errorf("%w: must specify at most one of -color -no-color", cli.ErrUsage)
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	var sub *cli.Command
	if !isInputFile(args) {
		sub = cfg.Main.FindSub(cc, args[0])
	}
	if sub == nil {
		sub = cfg.Main.FindSub(cc, "convert")
	} else {
		args = args[1:]
	}
	err = sub.Run(cc, args)
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	}
	return err
}

func isInputFile(args []string) bool {
	if len(args) != 1 {
		return false
	}
	fi, err := os.Stat(args[0])
	return err == nil && fi.Mode().IsRegular()
}
