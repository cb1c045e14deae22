package cli

import (
	"context"
	"errors"
	"log/slog"
	nethttp "net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"noema/internal/chunker"
	noemahttp "noema/internal/http"
	"noema/internal/notes"
	"noema/internal/ollama"
	"noema/internal/service"
	"noema/internal/watcher"
)

var (
	serveAddr     string
	serveMaxChars int
	serveURL      string
	serveModel    string
)

var serveCmd = &cobra.Command{
	Use:   "serve [PATH]",
	Short: "Serve the index over HTTP",
	Long: `Builds the index for PATH (or the configured notes root), keeps it fresh
as notes change, and serves search over HTTP.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := resolveRoot(args)
		if err != nil {
			return err
		}

		client := ollamaClient(cmd, serveURL, serveModel)
		index := service.NewIndex(root, client, serveMaxChars)

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		go func() {
			if err := index.Rebuild(ctx); err != nil {
				slog.ErrorContext(ctx, "initial index build failed", "error", err)
				return
			}
			slog.InfoContext(ctx, "initial index built", "chunks", index.Len())
		}()

		w, err := watcher.New(root, func(ns []notes.Note, err error) {
			if err != nil {
				slog.Error("re-scan failed", "error", err)
				return
			}
			slog.Info("notes changed, rebuilding index", "notes", len(ns))
			if err := index.Rebuild(context.Background()); err != nil {
				slog.Error("index rebuild failed", "error", err)
			}
		})
		if err != nil {
			return err
		}
		go func() {
			if err := w.Run(ctx); err != nil {
				slog.Error("watcher stopped", "error", err)
			}
		}()

		srv := &nethttp.Server{
			Addr:    serveAddr,
			Handler: noemahttp.NewRouter(&noemahttp.Deps{Index: index}),
		}
		go func() {
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = srv.Shutdown(shutdownCtx)
		}()

		slog.Info("serving", "addr", serveAddr, "root", root)
		if err := srv.ListenAndServe(); !errors.Is(err, nethttp.ErrServerClosed) {
			return err
		}
		return nil
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "localhost:9000", "listen address")
	serveCmd.Flags().IntVar(&serveMaxChars, "max-chars", chunker.DefaultMaxChars, "maximum characters per chunk")
	serveCmd.Flags().StringVar(&serveURL, "url", ollama.DefaultBaseURL, "Ollama base URL")
	serveCmd.Flags().StringVar(&serveModel, "model", ollama.DefaultModel, "embedding model")
	rootCmd.AddCommand(serveCmd)
}
