package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/emberfall/gazette/internal/content"
)

var (
	coverageDate       string
	coverageMaxMissing int
)

var coverageCmd = &cobra.Command{
	Use:   "coverage",
	Short: "Audit story-to-codex entity coverage for one issue",
	Run: func(cmd *cobra.Command, args []string) {
		store := content.NewStore(contentDir)

		var day *content.Day
		var err error
		if coverageDate != "" {
			day, err = store.Day(coverageDate)
		} else {
			day, err = store.Today()
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		codex, err := store.Codex()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		printResult(content.Coverage(day, codex, coverageMaxMissing))
	},
}

func init() {
	coverageCmd.Flags().StringVar(&coverageDate, "date", "", "Issue date (default: today's stories.json)")
	coverageCmd.Flags().IntVar(&coverageMaxMissing, "max-missing", 25, "Max missing candidates listed per story")
	rootCmd.AddCommand(coverageCmd)
}
