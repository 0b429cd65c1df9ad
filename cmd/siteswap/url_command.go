package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/rgonek/siteswap-renderer/siteswap"
)

func newURLCommand(ctx *commandContext) *cobra.Command {
	var expr string
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "url [file]",
		Short: "Print the animation URL for a single siteswap block",
		Long: "Url renders one block and prints the animation URL followed by the display\n" +
			"width. The block is read from --expr, the named file, or stdin.",
		Example: "  siteswap url -e 531\n" +
			"  printf 'pattern: 441\\nhands: mills\\n' | siteswap url",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := blockSource(cmd, expr, args)
			if err != nil {
				return err
			}
			result, err := renderBlock(ctx, cmd, source)
			if err != nil {
				return err
			}

			if jsonOutput {
				return writeJSON(cmd, result)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, result.URL)
			fmt.Fprintf(out, "width: %spx\n", formatFloat(result.DisplayWidth))
			return nil
		},
	}

	cmd.Flags().StringVarP(&expr, "expr", "e", "", "Block text to render")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Print the render result as JSON")
	return cmd
}

func blockSource(cmd *cobra.Command, expr string, args []string) (string, error) {
	if cmd.Flags().Changed("expr") {
		if len(args) > 0 {
			return "", fmt.Errorf("--expr and a file argument are mutually exclusive")
		}
		return expr, nil
	}
	return readInput(cmd, firstArg(args))
}

// renderBlock renders source and reports warnings through the logger.
func renderBlock(ctx *commandContext, cmd *cobra.Command, source string) (siteswap.Result, error) {
	renderer, err := ctx.renderer(cmd)
	if err != nil {
		return siteswap.Result{}, err
	}
	logger, err := ctx.logger(cmd)
	if err != nil {
		return siteswap.Result{}, err
	}

	result, err := renderer.Render(source)
	if err != nil {
		return siteswap.Result{}, err
	}
	for _, warning := range result.Warnings {
		logger.Warn(warning.Message, "type", string(warning.Type), "key", warning.Key)
	}
	return result, nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
