package cli

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	appver "pdfdoctor/internal/version"
)

func init() {
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print pdfdoctor version",
	Run: func(cmd *cobra.Command, args []string) {
		// keep output simple for scripting
		fmt.Fprintf(cmd.OutOrStdout(), "%s (%s, %s/%s)\n", appver.String(), appver.Commit(), runtime.GOOS, runtime.GOARCH)
	},
}
