package cmd

import (
	"fmt"

	"github.com/lil-jrg/cv-sorter/internal/registry"

	"github.com/spf13/cobra"
)

var jobsCmd = &cobra.Command{
	Use:   "jobs",
	Short: "List the registered job profiles by category",
	Run: func(_ *cobra.Command, _ []string) {
		reg := registry.Default()

		for _, category := range reg.Categories() {
			fmt.Printf("%s:\n", category)
			for _, job := range reg.ByCategory(category) {
				fmt.Printf("  %-28s %s (min score %.0f, min experience %d)\n",
					job.ID, job.Title, job.MinScore, job.MinExperienceYears)
			}
			fmt.Println()
		}
	},
}

func init() {
	rootCmd.AddCommand(jobsCmd)
}
