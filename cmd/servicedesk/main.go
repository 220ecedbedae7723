package main

import (
	"os"

	"github.com/spf13/cobra"

	"servicedesk/internal/interfaces/cli/migrate"
	"servicedesk/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "servicedesk",
		Short: "Service desk - internal service request management",
		Long:  `Service desk manages internal service requests: submission, triage, assignment and the approval lifecycle.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
