package cli

import (
	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/depeter/wheelpicker/internal/config"
)

func newConfigCmd(opts *options) *cobra.Command {
	var write bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as TOML",
		Long: `Print the configuration after flags are applied. With --write the result
is saved to the config file instead, creating it if needed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := configFromContext(cmd.Context())
			if !write {
				return toml.NewEncoder(cmd.OutOrStdout()).Encode(cfg)
			}

			path := opts.configPath
			if path == "" {
				p, err := config.ConfigPath()
				if err != nil {
					return err
				}
				path = p
			}
			if err := cfg.SaveFile(path); err != nil {
				return err
			}
			loggerFromContext(cmd.Context()).Info("config written", "path", path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, "save to the config file")
	return cmd
}
