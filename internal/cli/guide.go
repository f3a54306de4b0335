package cli

import (
	"fmt"
	"os"
	"runtime"

	"github.com/charmbracelet/x/term"
	"github.com/spf13/cobra"

	"pdfdoctor/internal/guide"
)

var (
	guideRaw bool
	guideAll bool
)

func init() {
	rootCmd.AddCommand(guideCmd)
	guideCmd.Flags().BoolVar(&guideRaw, "raw", false, "print Markdown without terminal rendering")
	guideCmd.Flags().BoolVar(&guideAll, "all", false, "show instructions for every OS")
}

var guideCmd = &cobra.Command{
	Use:   "guide",
	Short: "Show the Poppler installation guide for this OS",
	RunE: func(cmd *cobra.Command, args []string) error {
		goos := conf.OS
		if goos == "" {
			goos = runtime.GOOS
		}
		md := guide.Section(goos)
		if guideAll {
			md = guide.Markdown()
		}
		out := cmd.OutOrStdout()
		if guideRaw || out != os.Stdout || !term.IsTerminal(os.Stdout.Fd()) {
			fmt.Fprint(out, md)
			return nil
		}
		width, _, err := term.GetSize(os.Stdout.Fd())
		if err != nil {
			width = 80
		}
		fmt.Fprint(out, guide.Render(md, width))
		return nil
	},
}
