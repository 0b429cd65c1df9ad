package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rgonek/siteswap-renderer/mdrender"
)

func newRenderCommand(ctx *commandContext) *cobra.Command {
	var outputPath string
	var strict bool
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a markdown document, replacing siteswap blocks with animations",
		Long: "Render converts GitHub-flavored markdown to HTML. Fenced code blocks tagged\n" +
			"siteswap become Juggling Lab animation images; blocks that cannot be rendered\n" +
			"are replaced by their error message. Reads stdin when no file is given.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readInput(cmd, firstArg(args))
			if err != nil {
				return err
			}

			conv, err := ctx.converter(cmd, strict)
			if err != nil {
				return err
			}
			logger, err := ctx.logger(cmd)
			if err != nil {
				return err
			}

			result, err := conv.ConvertWithContext(cmd.Context(), input, mdrender.ConvertOptions{SourcePath: firstArg(args)})
			if err != nil {
				return err
			}

			for _, block := range result.Blocks {
				if block.Error != "" {
					logger.Warn("siteswap block failed", "line", block.Line, "kind", string(block.ErrorKind), "error", block.Error)
				}
			}
			for _, warning := range result.Warnings {
				logger.Warn(warning.Message, "line", warning.Line, "type", string(warning.Type))
			}

			if jsonOutput {
				return writeJSON(cmd, result)
			}
			if strings.TrimSpace(outputPath) != "" {
				if err := os.WriteFile(outputPath, []byte(result.HTML), 0o644); err != nil {
					return fmt.Errorf("write %s: %w", outputPath, err)
				}
				logger.Info("rendered document", "path", outputPath, "blocks", len(result.Blocks))
				return nil
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), result.HTML)
			return err
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Write HTML to this file instead of stdout")
	cmd.Flags().BoolVar(&strict, "strict", false, "Fail on unresolved images instead of warning")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Print the full conversion result as JSON")
	return cmd
}
