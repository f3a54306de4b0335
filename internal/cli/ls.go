package cli

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(lsCmd)
}

var lsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List the tools pdfdoctor knows about",
	Long:  "List built-in and configured tools with their candidate binaries, probes and requirements.",
	RunE: func(cmd *cobra.Command, args []string) error {
		list := conf.ToolList()
		w := 0
		for _, t := range list {
			if n := runewidth.StringWidth(string(t.ID)); n > w {
				w = n
			}
		}
		out := cmd.OutOrStdout()
		for _, t := range list {
			req := "optional"
			if t.Required {
				req = "required"
			}
			probes := make([]string, 0, len(t.VersionArgs))
			for _, a := range t.VersionArgs {
				probes = append(probes, strings.Join(a, " "))
			}
			line := fmt.Sprintf("- %s %-8s  %s", runewidth.FillRight(string(t.ID), w), req, t.DisplayName)
			if t.MinVersion != "" {
				line += fmt.Sprintf(" · min %s", t.MinVersion)
			}
			if t.URL != "" {
				line += fmt.Sprintf(" · url %s", t.URL)
			} else {
				line += fmt.Sprintf(" · bin %s · probe %s", strings.Join(t.Binaries, "|"), strings.Join(probes, ", "))
			}
			fmt.Fprintln(out, line)
		}
		return nil
	},
}
