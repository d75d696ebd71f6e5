package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-formscreen/pkg/descriptor"
)

var errLintViolations = errors.New("lint: unsupported extensions found")

func newLintCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "lint [paths...]",
		Short: "Check OpenAPI documents for unsupported x-formscreen extensions",
		Long: `Lint reports x-formscreen-* extensions the descriptor builder would ignore.
Without arguments the bundled profile document is checked.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			type source struct {
				name string
				raw  []byte
			}
			var sources []source
			if len(args) == 0 {
				sources = append(sources, source{name: "embedded:profile.yaml", raw: descriptor.EmbeddedDocument()})
			}
			for _, path := range args {
				raw, err := os.ReadFile(path)
				if err != nil {
					return fmt.Errorf("lint %s: %w", path, err)
				}
				sources = append(sources, source{name: path, raw: raw})
			}

			found := 0
			for _, src := range sources {
				violations, err := descriptor.Lint(cmd.Context(), src.raw)
				if err != nil {
					return fmt.Errorf("lint %s: %w", src.name, err)
				}
				for _, v := range violations {
					fmt.Fprintf(cmd.ErrOrStderr(), "%s: %s\n", src.name, v)
				}
				found += len(violations)
			}
			c.logger.Debug("lint finished")
			if found > 0 {
				return fmt.Errorf("%w (%d)", errLintViolations, found)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d document(s) clean\n", len(sources))
			return nil
		},
	}
}
