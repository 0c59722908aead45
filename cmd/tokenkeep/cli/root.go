package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/aussiebroadwan/tokenkeep/internal/tokenkeep/app"
)

var cfgFile string

// Execute creates the root command tree and runs it.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	serve := newServeCmd()

	cmd := &cobra.Command{
		Use:   "tokenkeep",
		Short: "Issue and verify opaque bearer tokens",
		Long: `tokenkeep exchanges client credentials for bearer tokens and answers whether a
presented token is still live.

Configuration comes from the environment (AUTH_TOKEN_LIFE, AUTH_TOKEN_LENGTH,
AUTH_DATABASE_DRIVER, AUTH_DATABASE_DSN, ...) and optionally a config file.
Running without a subcommand starts the server.`,
		Version:       app.BuildVersion,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          serve.RunE,
	}

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (keys are lowercased variable names)")

	cmd.AddCommand(serve)
	cmd.AddCommand(newClientCmd())

	return cmd
}

func loadViper() (*viper.Viper, error) {
	return app.NewViper(cfgFile)
}
