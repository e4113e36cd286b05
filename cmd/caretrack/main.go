package main

import (
	"os"

	"github.com/spf13/cobra"

	"caretrack/internal/interfaces/cli/migrate"
	"caretrack/internal/interfaces/cli/server"
	"caretrack/internal/interfaces/cli/token"
)

// @title CareTrack API
// @version 1.0
// @description Childcare facility compliance tracking API
// @BasePath /api
// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
func main() {
	rootCmd := &cobra.Command{
		Use:   "caretrack",
		Short: "CareTrack - childcare facility compliance tracking",
		Long:  `CareTrack tracks staff-to-child ratio spot-checks, staff certifications, compliance documents, and daily operations for childcare facilities.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		token.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
