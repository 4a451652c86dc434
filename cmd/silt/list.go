package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/aretw0/silt"
	"github.com/spf13/cobra"
)

var (
	listJSON     bool
	filterLayout string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all documents in the collection",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		service, err := silt.New(contentDir(),
			silt.WithPattern(pattern),
			silt.WithLogger(slog.Default()),
		)
		if err != nil {
			fatal("Failed to open content root", err)
		}

		docs, err := service.LoadAll(context.Background())
		if err != nil {
			fatal("Failed to load documents", err)
		}

		var filtered []silt.Document
		for _, doc := range docs {
			if filterLayout != "" && doc.Layout() != filterLayout {
				continue
			}
			filtered = append(filtered, doc)
		}

		if listJSON {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(filtered); err != nil {
				fatal("Failed to encode JSON", err)
			}
			return
		}

		for _, doc := range filtered {
			title := ""
			if t, ok := doc.Metadata["title"]; ok {
				title = fmt.Sprintf("- %s", t)
			}
			fmt.Printf("%s %s\n", doc.ID, title)
		}
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	listCmd.Flags().StringVar(&filterLayout, "layout", "", "Filter documents by layout header")
}
