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
	checkJSON bool
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate every document in the collection",
	Long: `Parse every document and report the malformed ones (an opened front matter
block that never closes, or an undecodable metadata block). Unlike list, check
does not stop at the first failure. Exits nonzero if any document is malformed.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		service, err := silt.New(contentDir(),
			silt.WithPattern(pattern),
			silt.WithLogger(slog.Default()),
		)
		if err != nil {
			fatal("Failed to open content root", err)
		}

		issues, err := service.Check(context.Background())
		if err != nil {
			fatal("Check failed", err)
		}

		if checkJSON {
			type jsonIssue struct {
				ID    string `json:"id"`
				Error string `json:"error"`
			}
			out := make([]jsonIssue, 0, len(issues))
			for _, issue := range issues {
				out = append(out, jsonIssue{ID: issue.ID, Error: issue.Err.Error()})
			}
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(out); err != nil {
				fatal("Failed to encode JSON", err)
			}
		} else {
			for _, issue := range issues {
				fmt.Fprintf(os.Stderr, "MALFORMED %s: %v\n", issue.ID, issue.Err)
			}
			if len(issues) == 0 {
				fmt.Println("All documents are well-formed.")
			}
		}

		if len(issues) > 0 {
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().BoolVar(&checkJSON, "json", false, "Output in JSON format")
}
