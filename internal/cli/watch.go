package cli

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"pdfdoctor/internal/deps"
	"pdfdoctor/internal/report"
	"pdfdoctor/internal/system"
	"pdfdoctor/internal/watch"
)

var watchForever bool

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().BoolVar(&watchForever, "forever", false, "keep watching after all required tools are found")
}

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Re-check whenever a PATH directory changes",
	Long:  "Watch every PATH directory and re-run the check when binaries appear or disappear. Exits once required tools are found unless --forever is set.",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		list := conf.ToolList()
		opts := conf.Options()
		out := cmd.OutOrStdout()
		last := -1
		var writeErr error
		err := watch.Run(ctx, watch.PathDirs(), watch.DefaultDebounce, func() bool {
			sum := report.NewSummary(list, deps.CheckAll(ctx, list, opts))
			if sum.Found != last {
				last = sum.Found
				if writeErr = report.WriteText(out, sum, false); writeErr != nil {
					return true
				}
			}
			if sum.OK(false) && !watchForever {
				fmt.Fprintln(out, "✓ all required tools found")
				return true
			}
			return false
		})
		if writeErr != nil {
			return fmt.Errorf("write report: %w", writeErr)
		}
		if errors.Is(err, context.Canceled) {
			system.Logger.Info("watch stopped")
			return nil
		}
		return err
	},
}
