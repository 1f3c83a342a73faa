package main

import (
	"os"

	"github.com/spf13/cobra"

	"casedesk/internal/interfaces/cli/migrate"
	"casedesk/internal/interfaces/cli/seed"
	"casedesk/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "casedesk",
		Short: "CaseDesk - customer support case tracking",
		Long:  `CaseDesk is a customer support case tracking service with a REST API, migration tools, and administrative commands.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		seed.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
