package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/emberfall/gazette/internal/content"
)

func printResult(v interface{}) {
	if output == "json" {
		json.NewEncoder(os.Stdout).Encode(v)
		return
	}
	printTable(v)
}

func printTable(v interface{}) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	switch data := v.(type) {
	case content.Day:
		if len(data.Stories) == 0 {
			fmt.Printf("No stories for %s.\n", data.Date)
			return
		}
		fmt.Fprintln(w, "DATE\tTITLE\tSUBGENRE")
		for _, s := range data.Stories {
			fmt.Fprintf(w, "%s\t%s\t%s\n", data.Date, truncate(s.Title, 50), s.Subgenre)
		}
	case []content.BrokenLink:
		if len(data) == 0 {
			fmt.Println("No broken links.")
			return
		}
		fmt.Fprintln(w, "CATEGORY\tENTITY\tLINK\tDATE\tTITLE\tSUGGESTED DATES")
		for _, b := range data {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
				b.Category, truncate(b.Entity, 30), b.LinkType, b.Date,
				truncate(b.Title, 40), strings.Join(b.SuggestedDates, ","))
		}
	case []content.StoryCoverage:
		if len(data) == 0 {
			fmt.Println("No stories found.")
			return
		}
		fmt.Fprintln(w, "TITLE\tHITS\tEMPTY CATEGORIES\tMISSING CANDIDATES")
		for _, c := range data {
			total := 0
			for _, names := range c.Hits {
				total += len(names)
			}
			fmt.Fprintf(w, "%s\t%d\t%s\t%s\n",
				truncate(c.Title, 40), total,
				strings.Join(c.EmptyCategories, ","),
				truncate(strings.Join(c.MissingCandidates, ", "), 60))
		}
	default:
		json.NewEncoder(os.Stdout).Encode(v)
	}
	w.Flush()
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
