package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/lexigrid"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of lexigrid",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("lexigrid version %s\n", lexigrid.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
