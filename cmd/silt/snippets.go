package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/aretw0/silt"
	"github.com/aretw0/silt/pkg/directive"
	"github.com/spf13/cobra"
)

var (
	snippetsJSON bool
)

var snippetsCmd = &cobra.Command{
	Use:   "snippets [id]",
	Short: "List snippet placeholder tokens",
	Long: `Enumerate the snippet placeholder tokens (e.g. {% gist <id> %}) embedded in
document bodies. Tokens are opaque to the loader; this lists what an external
renderer will have to resolve. With no argument, the whole collection is scanned.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		service, err := silt.New(contentDir(),
			silt.WithPattern(pattern),
			silt.WithLogger(slog.Default()),
		)
		if err != nil {
			fatal("Failed to open content root", err)
		}

		ctx := context.Background()

		var docs []silt.Document
		if len(args) == 1 {
			doc, err := service.LoadDocument(ctx, args[0])
			if err != nil {
				fatal("Failed to load document", err)
			}
			docs = []silt.Document{doc}
		} else {
			docs, err = service.LoadAll(ctx)
			if err != nil {
				fatal("Failed to load documents", err)
			}
		}

		type entry struct {
			Document string `json:"document"`
			Name     string `json:"name"`
			ID       string `json:"id"`
			Raw      string `json:"raw"`
		}

		var entries []entry
		for _, doc := range docs {
			for _, d := range directive.Scan(doc.Body) {
				entries = append(entries, entry{
					Document: doc.ID,
					Name:     d.Name,
					ID:       d.ID(),
					Raw:      d.Raw,
				})
			}
		}

		if snippetsJSON {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(entries); err != nil {
				fatal("Failed to encode JSON", err)
			}
			return
		}

		for _, e := range entries {
			fmt.Printf("%s\t%s %s\n", e.Document, e.Name, e.ID)
		}
	},
}

func init() {
	rootCmd.AddCommand(snippetsCmd)
	snippetsCmd.Flags().BoolVar(&snippetsJSON, "json", false, "Output in JSON format")
}
