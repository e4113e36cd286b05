package token

import (
	"fmt"

	"github.com/spf13/cobra"

	"caretrack/internal/infrastructure/auth"
	"caretrack/internal/infrastructure/config"
	"caretrack/internal/shared/biztime"
)

var (
	env        string
	facilityID uint
	actorName  string
	role       string
)

// NewCommand mints a facility-scoped access token for local development and
// API testing.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint a development access token",
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().UintVar(&facilityID, "facility-id", 0, "Facility ID to scope the token to (required)")
	cmd.Flags().StringVar(&actorName, "actor", "Local Dev", "Actor display name embedded in the token")
	cmd.Flags().StringVar(&role, "role", "director", "Role claim")
	cmd.MarkFlagRequired("facility-id")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := biztime.Init(cfg.Server.Timezone); err != nil {
		return fmt.Errorf("failed to initialize business timezone: %w", err)
	}

	jwtService := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes)

	signed, err := jwtService.Generate(facilityID, actorName, role)
	if err != nil {
		return fmt.Errorf("failed to generate token: %w", err)
	}

	fmt.Println(signed)
	return nil
}
