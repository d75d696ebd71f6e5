package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/goliatone/go-formscreen"
	"github.com/goliatone/go-formscreen/pkg/render"
	"github.com/goliatone/go-formscreen/pkg/screen"
)

type renderFlags struct {
	name       string
	age        float64
	gender     string
	subscribed bool
	submit     bool
	renderer   string
	output     string
	action     string
}

func newRenderCmd(c *cli) *cobra.Command {
	var f renderFlags

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render one frame of the screen (HTML by default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			theme, err := c.resolveTheme()
			if err != nil {
				return err
			}
			registry, err := formscreen.NewRegistry()
			if err != nil {
				return err
			}
			renderer, err := registry.Get(f.renderer)
			if err != nil {
				return err
			}

			locale := c.resolveLocale()
			s, err := c.newScreen(cmd.Context(), locale)
			if err != nil {
				return err
			}
			if err := s.Apply(seedValues(cmd, f)); err != nil {
				return err
			}
			if f.submit {
				if _, err := s.Submit(); err != nil {
					return err
				}
			}

			snapshot, err := render.SnapshotField(s.Snapshot())
			if err != nil {
				return err
			}
			out, err := renderer.Render(cmd.Context(), s.View(), render.RenderOptions{
				Locale: locale,
				Theme:  theme,
				Action: f.action,
				Hidden: render.MergeHiddenFields(nil, snapshot),
			})
			if err != nil {
				return err
			}

			c.logger.Debug("rendered screen",
				zap.String("renderer", renderer.Name()),
				zap.String("locale", locale),
				zap.Int("bytes", len(out)),
			)
			if f.output == "" || f.output == "-" {
				_, err = cmd.OutOrStdout().Write(out)
				return err
			}
			if err := os.WriteFile(f.output, out, 0o644); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "Screen written to %s\n", f.output)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&f.name, "name", "", "Seed the name field")
	flags.Float64Var(&f.age, "age", 25, "Seed the age slider (clamped to 1..100)")
	flags.StringVar(&f.gender, "gender", "male", "Seed the gender (male, female)")
	flags.BoolVar(&f.subscribed, "subscribed", false, "Seed the subscription checkbox")
	flags.BoolVar(&f.submit, "submit", false, "Submit after seeding")
	flags.StringVar(&f.renderer, "renderer", "", "Renderer (vanilla, tui, live)")
	flags.StringVarP(&f.output, "output", "o", "", "Output file (stdout if empty)")
	flags.StringVar(&f.action, "action", "", "Form action URL for HTML output")
	return cmd
}

// seedValues returns only the fields whose flags were set.
func seedValues(cmd *cobra.Command, f renderFlags) map[string]any {
	values := map[string]any{}
	flags := cmd.Flags()
	if flags.Changed("name") {
		values[screen.FieldName] = f.name
	}
	if flags.Changed("age") {
		values[screen.FieldAge] = f.age
	}
	if flags.Changed("gender") {
		values[screen.FieldGender] = f.gender
	}
	if flags.Changed("subscribed") {
		values[screen.FieldSubscribed] = f.subscribed
	}
	return values
}
