package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var version = "0.2.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "tourclimb version %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
