// Command formscreen serves and renders the profile screen: as an HTML page,
// a prompt session, a live terminal screen or an HTTP endpoint.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/goliatone/go-formscreen/pkg/form"
	"github.com/goliatone/go-formscreen/pkg/i18n"
	"github.com/goliatone/go-formscreen/pkg/render"
	"github.com/goliatone/go-formscreen/pkg/screen"
)

// cli carries the persistent flags and the logger shared by subcommands.
type cli struct {
	locale  string
	strict  bool
	verbose bool
	theme   string

	logger  *zap.Logger
	catalog *i18n.Catalog
}

func newRootCmd() *cobra.Command {
	c := &cli{logger: zap.NewNop()}

	root := &cobra.Command{
		Use:           "formscreen",
		Short:         "Profile form screen: HTML, terminal and HTTP front ends",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config := zap.NewProductionConfig()
			if c.verbose {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			logger, err := config.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			c.logger = logger

			catalog, err := i18n.DefaultCatalog()
			if err != nil {
				return fmt.Errorf("load catalog: %w", err)
			}
			c.catalog = catalog
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if c.logger != nil {
				_ = c.logger.Sync()
			}
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&c.locale, "locale", "", "UI locale (default: from LC_ALL/LANG)")
	flags.BoolVar(&c.strict, "strict", false, "Reject submits with a blank name instead of ignoring them")
	flags.BoolVarP(&c.verbose, "verbose", "v", false, "Enable verbose logging")
	flags.StringVar(&c.theme, "theme", "default", "Color theme (default, dark)")

	root.AddCommand(
		newPromptCmd(c),
		newLiveCmd(c),
		newRenderCmd(c),
		newServeCmd(c),
		newLintCmd(c),
	)
	return root
}

// resolveLocale picks the --locale flag, then the environment, then the
// catalog default.
func (c *cli) resolveLocale() string {
	candidates := []string{c.locale, os.Getenv("LC_ALL"), os.Getenv("LANG")}
	for _, candidate := range candidates {
		candidate = strings.TrimSpace(candidate)
		if i := strings.IndexAny(candidate, ".@"); i >= 0 {
			candidate = candidate[:i]
		}
		if candidate == "" || candidate == "C" || candidate == "POSIX" {
			continue
		}
		return c.catalog.Match(strings.ReplaceAll(candidate, "_", "-"))
	}
	return c.catalog.DefaultLocale()
}

func (c *cli) resolveTheme() (render.Theme, error) {
	return render.ThemeByName(c.theme)
}

func (c *cli) policy() form.SubmitPolicy {
	if c.strict {
		return form.PolicyStrict
	}
	return form.PolicyIgnore
}

func (c *cli) newScreen(ctx context.Context, locale string) (*screen.Screen, error) {
	return screen.New(ctx,
		screen.WithLocalizer(i18n.Bind(c.catalog, locale)),
		screen.WithModelOptions(form.WithSubmitPolicy(c.policy())),
	)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "formscreen:", err)
		stop()
		os.Exit(1)
	}
}
