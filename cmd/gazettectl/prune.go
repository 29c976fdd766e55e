package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/emberfall/gazette/internal/content"
)

var pruneDryRun bool

var pruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Remove codex story appearances not backed by the story text",
	Long:  `Checks every story_appearances entry against the actual story text with a word-boundary mention check and removes the ones that fail. Removal only; appearances are never invented, so the command is idempotent.`,
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

		res := content.Prune(codex, days)
		if res.DroppedRelics > 0 {
			fmt.Printf("Dropped %d relic(s) that match character names\n", res.DroppedRelics)
		}
		fmt.Printf("removed=%d kept=%d\n", res.Removed, res.Kept)

		if pruneDryRun {
			fmt.Println("dry run, codex.json not written")
			return
		}
		if err := store.WriteCodex(codex); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("wrote codex.json")
	},
}

func init() {
	pruneCmd.Flags().BoolVar(&pruneDryRun, "dry-run", false, "Report changes without writing codex.json")
	rootCmd.AddCommand(pruneCmd)
}
