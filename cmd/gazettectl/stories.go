package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/emberfall/gazette/internal/content"
)

var storiesDate string

var storiesCmd = &cobra.Command{
	Use:   "stories",
	Short: "Fetch an issue's stories from the API",
	Long:  `Fetches today's front page from the gazette API, or an archived issue when --date is given.`,
	Run: func(cmd *cobra.Command, args []string) {
		client := NewClient(apiURL, "")

		path := "/v1/stories"
		if storiesDate != "" {
			path = "/v1/archive/" + storiesDate
		}
		var day content.Day
		if err := client.Get(path, &day); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		printResult(day)
	},
}

func init() {
	storiesCmd.Flags().StringVar(&storiesDate, "date", "", "Archived issue date (YYYY-MM-DD); defaults to today's issue")
	rootCmd.AddCommand(storiesCmd)
}
