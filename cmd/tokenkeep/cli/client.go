package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aussiebroadwan/tokenkeep/internal/tokenkeep/app"
	"github.com/aussiebroadwan/tokenkeep/internal/tokenkeep/service"
	"github.com/aussiebroadwan/tokenkeep/pkg/cryptox"
)

// generatedSecretLength is the hex length of secrets made by "client add".
const generatedSecretLength = 48

func newClientCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "client",
		Short: "Manage provisioned clients",
	}

	cmd.AddCommand(newClientAddCmd())

	return cmd
}

// ---------- client add ----------

func newClientAddCmd() *cobra.Command {
	var (
		clientID string
		secret   string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Provision a client",
		Long:  "Store a salted hash of the client secret. A secret is generated and shown once when none is given.",
		Example: `  tokenkeep client add --id billing
  tokenkeep client add --id billing --secret "$BILLING_SECRET"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClientAdd(cmd, clientID, secret)
		},
	}

	cmd.Flags().StringVar(&clientID, "id", "", "Client identifier (required)")
	cmd.Flags().StringVar(&secret, "secret", "", "Client secret (generated when omitted)")
	_ = cmd.MarkFlagRequired("id")

	return cmd
}

func runClientAdd(cmd *cobra.Command, clientID, secret string) error {
	v, err := loadViper()
	if err != nil {
		return err
	}
	dbCfg, err := app.LoadDatabaseConfig(v)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	ctx := context.Background()
	st, err := app.OpenStore(ctx, dbCfg)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	generated := secret == ""
	if generated {
		if secret, err = cryptox.GenerateSecret(generatedSecretLength); err != nil {
			return fmt.Errorf("generate secret: %w", err)
		}
	}

	svc := &service.ClientService{Store: st}
	if _, err := svc.ProvisionClient(ctx, clientID, secret); err != nil {
		return fmt.Errorf("provision client: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Client %q provisioned.\n", clientID)
	if generated {
		fmt.Fprintf(out, "Secret: %s\n", secret)
		fmt.Fprintln(out, "Store this secret now. It cannot be shown again.")
	}
	return nil
}
