package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aussiebroadwan/tokenkeep/internal/tokenkeep/app"
)

func newServeCmd() *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the token service",
		Long:  "Start the HTTP server exposing the secret exchange, token verification and health endpoints.",
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := loadViper()
			if err != nil {
				return err
			}
			if f := cmd.Flags().Lookup("port"); f != nil && f.Changed {
				v.Set("PORT", port)
			}

			cfg, err := app.LoadConfig(v)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			application, err := app.New(cfg)
			if err != nil {
				return fmt.Errorf("failed to initialize application: %w", err)
			}

			return application.Run()
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 4004, "HTTP listen port (overrides PORT)")

	return cmd
}
