package main

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/goliatone/go-formscreen/pkg/render"
	"github.com/goliatone/go-formscreen/pkg/renderers/live"
)

func newLiveCmd(c *cli) *cobra.Command {
	var altScreen bool

	cmd := &cobra.Command{
		Use:   "live",
		Short: "Edit the profile in an interactive terminal screen",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			theme, err := c.resolveTheme()
			if err != nil {
				return err
			}
			locale := c.resolveLocale()
			s, err := c.newScreen(cmd.Context(), locale)
			if err != nil {
				return err
			}

			var options []live.Option
			if in := cmd.InOrStdin(); in != os.Stdin {
				options = append(options, live.WithInput(in))
			}
			if out := cmd.OutOrStdout(); out != os.Stdout {
				options = append(options, live.WithOutput(out))
			}
			if altScreen {
				options = append(options, live.WithAltScreen())
			}

			c.logger.Debug("starting live screen", zap.String("locale", locale))
			result, err := live.New(options...).Run(cmd.Context(), s, render.RenderOptions{Locale: locale, Theme: theme})
			if err != nil {
				return err
			}
			if len(result) > 0 {
				_, err = cmd.OutOrStdout().Write(result)
			}
			return err
		},
	}
	cmd.Flags().BoolVar(&altScreen, "alt-screen", false, "Use the terminal's alternate screen")
	return cmd
}
