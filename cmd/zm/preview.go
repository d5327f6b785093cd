package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/ernestfoo/zonemerge/preview"
)

func previewCmd() *cli.Command {
	flags := append(inputFlags(),
		&cli.StringFlag{
			Name:    "out",
			Aliases: []string{"o"},
			Usage:   "HTML output path; stdout when omitted",
		},
		&cli.StringFlag{
			Name:  "title",
			Usage: "Page title; defaults to the template file name",
		},
		&cli.BoolFlag{
			Name:  "keep-newlines",
			Usage: "Do not strip the adjacent newlines around deleted regions",
		},
	)

	return &cli.Command{
		Name:  "preview",
		Usage: "Merge and render the result as an HTML page (Markdown templates)",
		Flags: flags,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			result, err := runMerge(cmd)
			if err != nil {
				return err
			}

			title := cmd.String("title")
			if title == "" {
				base := filepath.Base(cmd.String("template"))
				title = strings.TrimSuffix(base, filepath.Ext(base))
			}

			out := os.Stdout
			if path := cmd.String("out"); path != "" {
				f, err := os.Create(path)
				if err != nil {
					return fmt.Errorf("create preview: %w", err)
				}
				defer f.Close()
				out = f
			}
			return preview.New().Render(out, title, result)
		},
	}
}
