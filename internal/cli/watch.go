package cli

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"noema/internal/notes"
	"noema/internal/watcher"
)

var watchCmd = &cobra.Command{
	Use:   "watch [PATH]",
	Short: "Watch the notes directory and re-scan on changes",
	Long:  `Watches PATH (or the configured notes root) and re-scans it whenever files change. Ctrl+C to stop.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := resolveRoot(args)
		if err != nil {
			return err
		}

		cmd.Printf("Watching %s. Edit notes to trigger re-scan. Ctrl+C to stop.\n", root)
		if ns, err := notes.Scan(root); err == nil {
			cmd.Printf("Initial scan: %d note(s)\n", len(ns))
		}

		w, err := watcher.New(root, func(ns []notes.Note, err error) {
			if err != nil {
				cmd.PrintErrf("Scan error: %v\n", err)
				return
			}
			cmd.Printf("Rescanned: %d note(s)\n", len(ns))
		})
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		return w.Run(ctx)
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
