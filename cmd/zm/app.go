package main

import (
	"github.com/urfave/cli/v3"

	"github.com/ernestfoo/zonemerge/core"
	"github.com/ernestfoo/zonemerge/merge"
	"github.com/ernestfoo/zonemerge/textfile"
	"github.com/ernestfoo/zonemerge/zonefile"
)

// inputFlags are shared by every command that needs a template and zones.
func inputFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     "template",
			Aliases:  []string{"t"},
			Usage:    "Path to the template file (.txt, .md, .xml)",
			Required: true,
		},
		&cli.StringFlag{
			Name:     "zones",
			Aliases:  []string{"z"},
			Usage:    "Path to the zone data file (.json, .yaml)",
			Required: true,
		},
		&cli.StringFlag{
			Name:  "prefix",
			Usage: "Zone tag prefix",
			Value: merge.DefaultPrefix,
		},
	}
}

// loadInputs reads the template and zone data named by the CLI flags.
func loadInputs(cmd *cli.Command) (string, *core.Collection, merge.Options, error) {
	opts := merge.Options{
		Prefix:       cmd.String("prefix"),
		KeepNewlines: cmd.Bool("keep-newlines"),
	}

	template, err := textfile.Read(cmd.String("template"))
	if err != nil {
		return "", nil, opts, err
	}
	zones, err := zonefile.ReadFile(cmd.String("zones"))
	if err != nil {
		return "", nil, opts, err
	}
	return template, zones, opts, nil
}

// runMerge loads inputs and runs the full pipeline, returning the merged buffer.
func runMerge(cmd *cli.Command) (string, error) {
	template, zones, opts, err := loadInputs(cmd)
	if err != nil {
		return "", err
	}

	p := merge.New(opts)
	p.LoadTemplate(template)
	p.LoadZones(zones)
	if err := p.Merge(); err != nil {
		return "", err
	}
	return p.Result(), nil
}
