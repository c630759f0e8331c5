package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/lipagate/lipagate/internal/interfaces/cli/migrate"
	"github.com/lipagate/lipagate/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "lipagate",
		Short: "Lipagate - subscription commerce for off-platform payments",
		Long:  `Lipagate runs the paywall and merchant APIs for subscription commerce where customers pay over mobile money or bank transfer and merchants confirm payments manually.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
