package cli

import (
	"context"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version string // semantic version (e.g., "v1.2.3")
	commit  string // git commit SHA
	date    string // build timestamp
)

// SetVersion sets the version information displayed by --version, usually
// from values injected via ldflags.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the wheelpicker CLI.
func Execute(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "wheelpicker",
		Short: "A physics-driven wheel picker",
		Long: `wheelpicker shows a list as a rotating wheel. Drag or fling it, scroll,
tap an item or use the keyboard; the wheel glides, springs onto the nearest
item and reports the selection.`,
		Version:      version,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := charmlog.InfoLevel
			if opts.verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))

			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			cmd.SetContext(withConfig(ctx, cfg))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGUI(cmd.Context())
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("wheelpicker %s\ncommit: %s\nbuilt: %s\n", version, commit, date))

	flags := root.PersistentFlags()
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose logging")
	flags.StringVarP(&opts.configPath, "config", "c", "", "config file (default $XDG_CONFIG_HOME/wheelpicker/config.toml)")
	flags.StringVar(&opts.axis, "axis", "", "wheel axis: vertical or horizontal")
	flags.StringSliceVar(&opts.items, "items", nil, "comma-separated items, replacing the configured list")
	flags.StringVar(&opts.defaultItem, "default", "", "item selected at start")

	root.AddCommand(newGUICmd())
	root.AddCommand(newTUICmd())
	root.AddCommand(newConfigCmd(opts))

	return root
}
