package main

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	apiURL     string
	output     string
	contentDir string
)

var rootCmd = &cobra.Command{
	Use:   "gazettectl",
	Short: "Gazette CLI - content maintenance and audit dispatch",
	Long:  `gazettectl maintains the gazette's pre-generated content (stories, archive, codex) and triggers server-side story audits through the gazette API.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&apiURL, "api-url", "a", "http://localhost:8080", "Gazette API URL")
	rootCmd.PersistentFlags().StringVarP(&output, "output", "o", "table", "Output format (table, json)")
	rootCmd.PersistentFlags().StringVarP(&contentDir, "content-dir", "C", ".", "Content directory (stories.json, archive/, codex.json)")
}
