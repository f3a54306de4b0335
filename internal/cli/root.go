package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/x/term"
	"github.com/spf13/cobra"

	"pdfdoctor/internal/app"
	"pdfdoctor/internal/config"
	"pdfdoctor/internal/system"
)

var (
	flagVerbose bool
	flagConfig  string
	flagOS      string

	// conf is loaded once per invocation in PersistentPreRunE.
	conf = config.Default()
)

var rootCmd = &cobra.Command{
	Use:   "pdfdoctor",
	Short: "pdfdoctor – check the Poppler tools PDF conversion needs",
	Long: `pdfdoctor verifies that the Poppler command-line utilities (pdftoppm, pdfinfo, ...)
are installed and runnable, and prints install instructions for your OS when they are not.

Run without a subcommand in a terminal to open the dashboard.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		system.SetVerbose(flagVerbose)
		var err error
		if flagConfig != "" {
			conf, err = config.LoadFile(flagConfig)
		} else {
			conf, err = config.Load()
		}
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if flagOS != "" {
			conf.OS = flagOS
			if err := conf.Validate(); err != nil {
				return err
			}
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if term.IsTerminal(os.Stdout.Fd()) {
			return app.Start(conf.ToolList(), conf.Options())
		}
		// not a terminal: behave like `check`
		return runCheck(cmd, nil)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path to config.yaml (default: user config dir)")
	rootCmd.PersistentFlags().StringVar(&flagOS, "os", "", "pick remediation for another OS: windows, darwin or linux")
}

// Execute runs the CLI.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
