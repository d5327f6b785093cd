package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/urfave/cli/v3"

	"github.com/ernestfoo/zonemerge/textfile"
)

func mergeCmd() *cli.Command {
	flags := append(inputFlags(),
		&cli.StringFlag{
			Name:    "out",
			Aliases: []string{"o"},
			Usage:   "Output file path; stdout when omitted",
		},
		&cli.BoolFlag{
			Name:  "keep-newlines",
			Usage: "Do not strip the adjacent newlines around deleted regions",
		},
	)

	return &cli.Command{
		Name:  "merge",
		Usage: "Merge zone data into a template and write the result",
		Flags: flags,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			result, err := runMerge(cmd)
			if err != nil {
				return err
			}

			out := cmd.String("out")
			if out == "" {
				fmt.Fprint(os.Stdout, result)
				return nil
			}
			if err := textfile.Write(out, result); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
			log.Info("merged", "template", cmd.String("template"), "out", out)
			return nil
		},
	}
}
