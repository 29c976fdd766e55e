package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	auditDate  string
	auditTitle string
	auditAuth  string
)

var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Queue a server-side story audit",
	Long:  `Queues a workflow run that re-extracts lore entities from one story and merges them into the codex. The API key stays on the server; this only forwards date and title.`,
	Run: func(cmd *cobra.Command, args []string) {
		client := NewClient(apiURL, auditAuth)

		var resp struct {
			OK     bool `json:"ok"`
			Queued bool `json:"queued"`
		}
		body := map[string]string{"date": auditDate, "title": auditTitle}
		if err := client.Post("/audit", body, &resp); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if resp.Queued {
			fmt.Printf("Audit queued for %s / %q\n", auditDate, auditTitle)
		} else {
			fmt.Println("Audit not queued")
		}
	},
}

func init() {
	auditCmd.Flags().StringVar(&auditDate, "date", "", "Story issue date (YYYY-MM-DD)")
	auditCmd.Flags().StringVar(&auditTitle, "title", "", "Exact story title")
	auditCmd.Flags().StringVar(&auditAuth, "auth", os.Getenv("GAZETTE_DEV_AUTH"), "X-Dev-Auth secret if the gate is enabled")
	auditCmd.MarkFlagRequired("date")
	auditCmd.MarkFlagRequired("title")
	rootCmd.AddCommand(auditCmd)
}
