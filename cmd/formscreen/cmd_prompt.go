package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/goliatone/go-formscreen/pkg/render"
	"github.com/goliatone/go-formscreen/pkg/renderers/tui"
)

func newPromptCmd(c *cli) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "prompt",
		Short: "Fill in the profile through terminal prompts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			outputFormat, err := tui.ParseOutputFormat(format)
			if err != nil {
				return err
			}
			theme, err := c.resolveTheme()
			if err != nil {
				return err
			}

			locale := c.resolveLocale()
			s, err := c.newScreen(cmd.Context(), locale)
			if err != nil {
				return err
			}
			renderer, err := tui.New(
				tui.WithOutput(cmd.ErrOrStderr()),
				tui.WithOutputFormat(outputFormat),
			)
			if err != nil {
				return err
			}

			c.logger.Debug("starting prompt session", zap.String("locale", locale), zap.String("format", string(outputFormat)))
			out, err := renderer.Run(cmd.Context(), s, render.RenderOptions{Locale: locale, Theme: theme})
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
	cmd.Flags().StringVar(&format, "format", string(tui.OutputFormatPrettyText), "Output format (pretty, json)")
	return cmd
}
