package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/rcbd/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of rcbd",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("rcbd v%s\n", version.Version)
		fmt.Println("Reinforced Concrete Beam Batch Design Tool")
		fmt.Println("Based on NSCP 2015 (National Structural Code of the Philippines)")
		if version.GitCommit != "unknown" {
			fmt.Printf("commit: %s, built: %s\n", version.GitCommit, version.BuildTime)
		}
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
