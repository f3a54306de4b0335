package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/x/term"
	"github.com/spf13/cobra"

	"pdfdoctor/internal/deps"
	"pdfdoctor/internal/report"
	"pdfdoctor/internal/system"
)

// ErrCheckFailed is wrapped by the error check returns when tools are missing.
var ErrCheckFailed = errors.New("dependency check failed")

var (
	checkJSON     bool
	checkMarkdown bool
	checkStrict   bool
	checkTimeout  time.Duration
)

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().BoolVar(&checkJSON, "json", false, "output JSON report")
	checkCmd.Flags().BoolVar(&checkMarkdown, "markdown", false, "output Markdown report")
	checkCmd.Flags().BoolVar(&checkStrict, "strict", false, "fail when optional tools are missing too")
	checkCmd.Flags().DurationVar(&checkTimeout, "timeout", 0, "probe timeout per tool (default from config, 5s)")
}

var checkCmd = &cobra.Command{
	Use:   "check [tool]...",
	Short: "Check that Poppler tools are installed and runnable",
	Long: `Check resolves each tool on PATH, runs it with -v (then -h) and reports the result.
Without arguments every known tool is checked; named tools are treated as required.
Exits non-zero when a required tool is missing.`,
	Example: "  pdfdoctor check\n  pdfdoctor check pdftoppm --json\n  pdfdoctor check --os windows",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCheck(cmd, args)
	},
}

func runCheck(cmd *cobra.Command, args []string) error {
	if checkJSON && checkMarkdown {
		return errors.New("--json and --markdown cannot be used together")
	}
	list := selectTools(args)
	opts := conf.Options()
	if checkTimeout > 0 {
		opts.Timeout = checkTimeout
	}

	results := deps.CheckAll(cmd.Context(), list, opts)
	sum := report.NewSummary(list, results)

	out := cmd.OutOrStdout()
	var err error
	switch {
	case checkJSON:
		err = report.WriteJSON(out, sum)
	case checkMarkdown:
		err = report.WriteMarkdown(out, sum)
	default:
		err = report.WriteText(out, sum, out == os.Stdout && term.IsTerminal(os.Stdout.Fd()))
	}
	if err != nil {
		return err
	}
	if !sum.OK(checkStrict) {
		return fmt.Errorf("%w: %d missing", ErrCheckFailed, sum.Failing(checkStrict))
	}
	return nil
}

// selectTools maps args to tool definitions. No args (or "all") selects the
// whole registry; unknown names are checked as ad-hoc commands.
func selectTools(args []string) []deps.ToolInfo {
	registry := conf.ToolList()
	var sel []deps.ToolInfo
	seen := map[deps.ToolID]bool{}
	for _, a := range args {
		a = strings.TrimSpace(a)
		if a == "" {
			continue
		}
		if strings.EqualFold(a, "all") {
			return registry
		}
		t, ok := deps.Lookup(a, registry)
		if !ok {
			if s := deps.Suggest(a, registry, 3); len(s) > 0 && !deps.IsURL(a) {
				system.Logger.Warn("unknown tool, checking it as a plain command", "tool", a, "did_you_mean", strings.Join(s, ", "))
			}
			t = deps.AdHoc(a)
		}
		if seen[t.ID] {
			continue
		}
		seen[t.ID] = true
		t.Required = true
		sel = append(sel, t)
	}
	if len(sel) == 0 {
		return registry
	}
	return sel
}
