package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/praetorian-inc/schematic/pkg/analyzer"
	"github.com/praetorian-inc/schematic/pkg/serve"
	"github.com/praetorian-inc/schematic/pkg/store"
	"github.com/spf13/cobra"
)

var serveStorePath string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run as a streaming NDJSON analysis server",
	Long: `Run Schematic as a long-lived server that reads analysis requests from
stdin and writes results to stdout, one JSON object per line.

Request types: analyze, analyze_batch, stats, close. The process exits
when stdin closes, a close request arrives, or SIGTERM is received.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveStorePath, "store", store.MemoryPath, "Store for analyzed schematics")
}

func runServe(cmd *cobra.Command, args []string) error {
	path := serveStorePath
	if path == "" {
		path = store.MemoryPath
	}
	s, err := store.New(store.Config{Path: path})
	if err != nil {
		return fmt.Errorf("opening store: %w", err)
	}

	logger := newLogger(cmd.ErrOrStderr())
	core, err := analyzer.NewCore(analyzer.Config{Store: s, Logger: slogLogger{logger}})
	if err != nil {
		s.Close()
		return err
	}
	defer core.Close()

	parent := cmd.Context()
	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)
	defer signal.Stop(sigChan)

	go func() {
		select {
		case <-sigChan:
			cancel()
		case <-ctx.Done():
		}
	}()

	srv := serve.NewServer(core, cmd.InOrStdin(), cmd.OutOrStdout())
	return srv.Run(ctx)
}
