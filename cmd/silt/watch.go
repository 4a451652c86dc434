package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/aretw0/silt"
	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Stream content change events",
	Long: `Watch the content root and print an event line for every document that is
created, modified or deleted. Useful for driving an external renderer's
rebuild loop. Stop with Ctrl-C.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		service, err := silt.New(contentDir(),
			silt.WithPattern(pattern),
			silt.WithLogger(slog.Default()),
		)
		if err != nil {
			fatal("Failed to open content root", err)
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		events, err := service.Watch(ctx, pattern)
		if err != nil {
			fatal("Failed to start watcher", err)
		}

		fmt.Fprintln(os.Stderr, "Watching for changes... (Ctrl-C to stop)")
		for event := range events {
			fmt.Println(event.String())
		}
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
