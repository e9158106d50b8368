package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, &cli.Opt{
		Name:        "O",
		Aliases:     []string{"ofmt"},
		Description: "output format: xml/x, yaml/y",
		Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.OutFormat), "(format)"),
	})

	return cli.NewCommandAt(&cfg.Main, "gedxml").
		WithSynopsis("gedxml [opts] (<file.ged> | command [opts])").
		WithDescription("gedxml converts GEDCOM files to XML.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return gedxmlMain(cfg, cc, args)
		}).
		WithSubs(
			ConvertCommand(cfg),
			ViewCommand(cfg),
			TreeCommand(cfg),
			CheckCommand(cfg))
}

func ConvertCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ConvertConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Convert, "convert").
		WithAliases("c").
		WithSynopsis("convert [-o out] <file.ged>").
		WithDescription("convert a GEDCOM file, writing the result next to it with an .xml extension").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return convert(cfg, cc, args)
		})
}

func ViewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ViewConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.View, "view").
		WithAliases("v").
		WithSynopsis("view [files]").
		WithDescription("render GEDCOM files as XML on stdout, in color on a terminal").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return view(cfg, cc, args)
		})
}

func TreeCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &TreeConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Tree, "tree").
		WithAliases("t").
		WithSynopsis("tree [files]").
		WithDescription("dump the record tree of GEDCOM files as YAML").
		WithRun(func(cc *cli.Context, args []string) error {
			return tree(cfg, cc, args)
		})
}

func CheckCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CheckConfig{MainConfig: mainCfg, Context: 3}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Check, "check").
		WithSynopsis("check [-o out] [-U n] <file.ged>").
		WithDescription("check that the converted output of a GEDCOM file is up to date").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return check(cfg, cc, args)
		})
}
