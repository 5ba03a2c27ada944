// Command cssflat prints flattened snapshots of stylesheets, escapes CSS
// identifiers and converts CSS dimensions.
//
//	cssflat serialize --format site.css
//	cssflat sheets --merge index.html
//	cssflat match --unused index.html
//	cssflat escape 123 "a b"
//	cssflat --debug convert 96 px in
//
// License
//
// Governed by a 3-Clause BSD license. License file may be found in the root
// folder of this module.
//
// Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	cli "github.com/urfave/cli/v3"

	"github.com/npillmayer/csskit"
)

func main() {
	app := &cli.Command{
		Name:            "cssflat",
		Usage:           "flatten stylesheets, escape identifiers and convert CSS units",
		Version:         csskit.Version,
		HideHelpCommand: true,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "load configuration from `FILE` (YAML)"},
			&cli.StringFlag{Name: "trace", Aliases: []string{"t"},
				Usage: "trace to stderr at `LEVEL` (supported: " + strings.Join(traceNames[1:], ", ") + ")"},
			&cli.BoolFlag{Name: "debug", Aliases: []string{"d"}, Usage: "same as --trace debug"},
		},
		Commands: []*cli.Command{
			{
				Name:      "serialize",
				Usage:     "Prints the flattened rules of a stylesheet",
				ArgsUsage: "FILE",
				Action:    runSerialize,
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "index", Aliases: []string{"i"}, Usage: "position of the stylesheet in `FILE`"},
					&cli.BoolFlag{Name: "format", Aliases: []string{"f"}, Usage: "one declaration per line"},
					&cli.StringFlag{Name: "output", Aliases: []string{"o"},
						Usage: "output `TYPE` (supported types: " + strings.Join(outputNames, ", ") + ")"},
					&cli.StringFlag{Name: "parser", Aliases: []string{"p"},
						Usage: "CSS `PARSER` for stylesheet files (supported: " + strings.Join(parserNames, ", ") + ")"},
					&cli.BoolFlag{Name: "merge", Aliases: []string{"m"}, Usage: "merge the <style> elements of an HTML file"},
				},
			},
			{
				Name:      "sheets",
				Usage:     "Lists the stylesheets of a file",
				ArgsUsage: "FILE",
				Action:    runSheets,
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "merge", Aliases: []string{"m"}, Usage: "merge the <style> elements of an HTML file"},
				},
			},
			{
				Name:      "match",
				Usage:     "Counts the elements of an HTML document selected by each flattened selector",
				ArgsUsage: "FILE.html",
				Action:    runMatch,
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "index", Aliases: []string{"i"}, Usage: "position of the stylesheet in `FILE`"},
					&cli.BoolFlag{Name: "unused", Aliases: []string{"u"}, Usage: "list only selectors without matches"},
				},
			},
			{
				Name:      "escape",
				Usage:     "Escapes text as CSS identifiers, one per line",
				ArgsUsage: "TEXT...",
				Action:    runEscape,
			},
			{
				Name:      "convert",
				Usage:     "Converts a dimension to another unit",
				ArgsUsage: "VALUE UNIT TARGET",
				Action:    runConvert,
			},
			{
				Name:   "dumpconfig",
				Usage:  "Dumps the actual configuration (YAML)",
				Action: runDumpConfig,
			},
		},
	}
	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "cssflat: %v\n", err)
		os.Exit(1)
	}
}

// settings merges the configuration file with the flags of cmd and switches
// on tracing, if requested.
func settings(cmd *cli.Command) (*Config, error) {
	cfg, err := LoadConfig(cmd.String("config"))
	if err != nil {
		return nil, fmt.Errorf("unable to prepare configuration: %w", err)
	}
	if cmd.IsSet("format") {
		cfg.Format = cmd.Bool("format")
	}
	if cmd.IsSet("output") {
		cfg.Output = cmd.String("output")
	}
	if cmd.IsSet("parser") {
		cfg.Parser = cmd.String("parser")
	}
	if cmd.IsSet("merge") {
		cfg.Merge = cmd.Bool("merge")
	}
	if cmd.IsSet("trace") {
		cfg.Trace = cmd.String("trace")
	}
	if cmd.Bool("debug") {
		cfg.Trace = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	setupTracing(cfg.Trace, os.Stderr)
	return cfg, nil
}

func runSerialize(_ context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() != 1 {
		return fmt.Errorf("serialize expects a single FILE argument")
	}
	cfg, err := settings(cmd)
	if err != nil {
		return err
	}
	return serialize(os.Stdout, cmd.Args().First(), int(cmd.Int("index")), cfg)
}

func runSheets(_ context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() != 1 {
		return fmt.Errorf("sheets expects a single FILE argument")
	}
	cfg, err := settings(cmd)
	if err != nil {
		return err
	}
	return listSheets(os.Stdout, cmd.Args().First(), cfg)
}

func runMatch(_ context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() != 1 {
		return fmt.Errorf("match expects a single FILE argument")
	}
	if _, err := settings(cmd); err != nil {
		return err
	}
	return match(os.Stdout, cmd.Args().First(), int(cmd.Int("index")), cmd.Bool("unused"))
}

func runEscape(_ context.Context, cmd *cli.Command) error {
	if _, err := settings(cmd); err != nil {
		return err
	}
	return escape(os.Stdout, cmd.Args().Slice())
}

func runConvert(_ context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() != 3 {
		return fmt.Errorf("convert expects VALUE UNIT TARGET")
	}
	if _, err := settings(cmd); err != nil {
		return err
	}
	args := cmd.Args().Slice()
	return convert(os.Stdout, args[0], args[1], args[2])
}

func runDumpConfig(_ context.Context, cmd *cli.Command) error {
	cfg, err := settings(cmd)
	if err != nil {
		return err
	}
	data, err := cfg.Dump()
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}
