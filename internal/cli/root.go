// Package cli implements the noema command tree.
package cli

import (
	"errors"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"noema/internal/config"
	"noema/internal/ollama"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "noema",
	Short: "Noema: local-first knowledge assistant",
	Long: `Noema indexes markdown notes from a folder you choose and searches them
by meaning. Notes stay on disk where they are; the index lives in memory.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		configureLogging()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func configureLogging() {
	env := config.LoadEnv()
	level := env.LogLevel
	if verbose {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if env.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(handler))
}

// resolveRoot picks the notes root from the optional positional argument,
// falling back to the persisted config.
func resolveRoot(args []string) (string, error) {
	if len(args) > 0 && args[0] != "" {
		return args[0], nil
	}
	if root := config.NotesRoot(); root != "" {
		return root, nil
	}
	return "", errors.New("no notes root configured; run: noema set-root <PATH>")
}

// ollamaClient builds an embedding client from the command's url/model
// flags, deferring to environment overrides when a flag was not set.
func ollamaClient(cmd *cobra.Command, url, model string) *ollama.Client {
	env := config.LoadEnv()
	if !cmd.Flags().Changed("url") {
		url = env.OllamaBaseURL
	}
	if !cmd.Flags().Changed("model") {
		model = env.EmbedModel
	}
	return ollama.NewClient(url, model)
}

// preview truncates s to at most n characters for one-line display.
func preview(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}
