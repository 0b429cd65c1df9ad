package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rgonek/siteswap-renderer/mdrender"
)

func newExtractCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "extract [file]",
		Short: "Recover siteswap blocks from rendered HTML",
		Long: "Extract scans HTML for animation images and prints each one back as a\n" +
			"fenced siteswap block. Reads stdin when no file is given.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			input, err := readInput(cmd, firstArg(args))
			if err != nil {
				return err
			}

			blocks, err := mdrender.Extract(strings.NewReader(input), cfg.Service.BaseURL)
			if err != nil {
				return err
			}

			if jsonOutput {
				return writeJSON(cmd, blocks)
			}
			out := cmd.OutOrStdout()
			for i, block := range blocks {
				if i > 0 {
					fmt.Fprintln(out)
				}
				fmt.Fprintf(out, "```%s\n%s```\n", cfg.Render.Language, block.Source)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Print extracted blocks as JSON")
	return cmd
}
