package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/rcbd/internal/config"
)

var checkInput string

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate a job file without designing",
	RunE: func(cmd *cobra.Command, args []string) error {
		job, err := config.Load(checkInput)
		if err != nil {
			return err
		}
		if err := job.Validate(); err != nil {
			return err
		}

		beams := 0
		for _, groups := range job.FloorGroups {
			for _, bs := range groups {
				beams += len(bs)
			}
		}
		fmt.Printf("%s: OK (%d floors, %d beams)\n", checkInput, len(job.FloorGroups), beams)
		return nil
	},
}

func init() {
	checkCmd.Flags().StringVarP(&checkInput, "input", "i", "", "job file (JSON or YAML)")
	checkCmd.MarkFlagRequired("input")

	rootCmd.AddCommand(checkCmd)
}
