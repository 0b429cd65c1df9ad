package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newExplainCommand(ctx *commandContext) *cobra.Command {
	var expr string

	cmd := &cobra.Command{
		Use:   "explain [file]",
		Short: "Show how each parameter of a block was resolved",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := blockSource(cmd, expr, args)
			if err != nil {
				return err
			}
			result, err := renderBlock(ctx, cmd, source)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, explainTable(result))
			fmt.Fprintf(out, "URL: %s\n", result.URL)
			fmt.Fprintf(out, "Display width: %spx\n", formatFloat(result.DisplayWidth))
			for _, warning := range result.Warnings {
				fmt.Fprintf(out, "Warning: %s\n", warning.Message)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&expr, "expr", "e", "", "Block text to explain")
	return cmd
}
