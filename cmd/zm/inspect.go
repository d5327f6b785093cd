package main

import (
	"context"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/ernestfoo/zonemerge/report"
)

func inspectCmd() *cli.Command {
	return &cli.Command{
		Name:  "inspect",
		Usage: "Report how zone data lines up with a template, without merging",
		Flags: inputFlags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			template, zones, opts, err := loadInputs(cmd)
			if err != nil {
				return err
			}
			return report.New().Render(os.Stdout, zones, template, opts)
		},
	}
}
