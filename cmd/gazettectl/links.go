package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/emberfall/gazette/internal/content"
)

var linksOut string

var linksCmd = &cobra.Command{
	Use:   "links",
	Short: "Report codex story links that do not resolve",
	Run: func(cmd *cobra.Command, args []string) {
		store := content.NewStore(contentDir)

		days, err := store.Days()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		codex, err := store.Codex()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		report := content.CheckLinks(days, codex)
		fmt.Printf("dates_loaded=%d\n", len(report.DatesLoaded))
		fmt.Printf("broken_links=%d\n", report.BrokenCount)

		if linksOut != "" {
			b, _ := json.MarshalIndent(report, "", "  ")
			if err := os.WriteFile(linksOut, append(b, '\n'), 0o644); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			fmt.Printf("wrote %s\n", linksOut)
		}

		if report.BrokenCount > 0 {
			printResult(report.BrokenLinks)
			os.Exit(1)
		}
	},
}

func init() {
	linksCmd.Flags().StringVar(&linksOut, "out", "", "Write the full report to this file (e.g. broken_story_links.json)")
	rootCmd.AddCommand(linksCmd)
}
