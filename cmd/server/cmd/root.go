package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "portfolio-server",
	Short: "Contact intake API for the portfolio site",
	Long:  `portfolio-server accepts contact-form submissions, stores them in Firestore, and relays them to a notification service.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Running the binary with no subcommand starts the server.
		return runServe(cmd, args)
	},
}

func Execute() error {
	return rootCmd.Execute()
}
