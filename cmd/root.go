package cmd

import (
	"fmt"
	"os"

	"github.com/alexiusacademia/rcbd/internal/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "rcbd",
	Short: "Reinforced Concrete Beam Batch Design Tool",
	Long: `rcbd - Reinforced Concrete Beam Designer

A CLI tool for the batch design of reinforced concrete beams
based on the National Structural Code of the Philippines (NSCP).

Given a job file describing the building's beam hierarchy and section
forces, this tool performs:
  - Flexural design (singly and doubly reinforced sections)
  - Discrete bar selection and spacing arrangement
  - Capacity and strain-compatibility verification
  - Seismic ductility minimums for intermediate and special frames
  - Shear and torsion reinforcement design

All calculations follow NSCP 2015 (Volume 1) provisions.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   rcbd v%-50s║\n", version.Version)
		fmt.Println("  ║   Reinforced Concrete Beam Designer                       ║")
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  Batch design of reinforced concrete beams based on the")
		fmt.Println("  National Structural Code of the Philippines (NSCP 2015).")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Governing moment from NSCP load combinations")
		fmt.Println("    • Singly and doubly reinforced flexural design")
		fmt.Println("    • Bar combination optimization and layer arrangement")
		fmt.Println("    • Seismic ductility enforcement per beam")
		fmt.Println("    • Shear and torsion reinforcement design")
		fmt.Println()
		fmt.Println("  Use 'rcbd --help' to see available commands.")
		fmt.Println()
		fmt.Println("  ─────────────────────────────────────────────────────────────")
		fmt.Printf("  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
