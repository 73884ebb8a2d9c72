package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version of fcsketch",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("fcsketch %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
