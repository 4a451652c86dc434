package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	verbose bool
	dir     string
	pattern string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "silt",
	Short: "A front-matter content loader for static sites",
	Long: `Silt splits a folder of posts into front matter mappings and raw bodies.
It is the read side of a static site: documents go in, (metadata, body) pairs
come out for an external renderer to consume.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}

		opts := &slog.HandlerOptions{
			Level: level,
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, opts))
		slog.SetDefault(logger)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// contentDir resolves the content root: the --dir flag, or the working directory.
func contentDir() string {
	if dir != "" {
		return dir
	}
	wd, err := os.Getwd()
	if err != nil {
		fatal("Failed to get working directory", err)
	}
	return wd
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&dir, "dir", "d", "", "Content root directory (defaults to the working directory)")
	rootCmd.PersistentFlags().StringVar(&pattern, "pattern", "", "Doublestar pattern selecting content files (defaults to **/*.md)")
}
