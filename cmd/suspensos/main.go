package main

import (
	"os"

	"github.com/spf13/cobra"

	"suspensos/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "suspensos",
		Short: "Suspensos - management dashboard for suspended CITSMART tickets",
		Long:  `Suspensos serves the suspended-ticket dashboard: it reconciles the CITSMART ticket, schedule and note report feeds into one view model per ticket and relays schedule/note writes back.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
