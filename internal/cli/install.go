package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"
	"github.com/spf13/cobra"

	"pdfdoctor/internal/deps"
	"pdfdoctor/internal/install"
	"pdfdoctor/internal/report"
)

var (
	installYes    bool
	installDryRun bool
)

func init() {
	rootCmd.AddCommand(installCmd)
	installCmd.Flags().BoolVarP(&installYes, "yes", "y", false, "run the install command without asking")
	installCmd.Flags().BoolVar(&installDryRun, "dry-run", false, "print the install command only")
}

var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Install Poppler with the system package manager",
	Long: `Install picks the package manager for this host (brew, apt-get, dnf, pacman,
zypper, apk, conda, scoop or choco), asks for confirmation, runs it and checks again.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		list := conf.ToolList()
		opts := conf.Options()

		before := report.NewSummary(list, deps.CheckAll(cmd.Context(), list, opts))
		if before.OK(false) && !installDryRun {
			fmt.Fprintln(out, "✓ all required Poppler tools are already installed")
			return nil
		}

		goos := conf.OS
		if goos == "" {
			goos = runtime.GOOS
		}
		distro := conf.Distro
		if distro == "" && goos == "linux" {
			distro = deps.DetectDistro()
		}
		step, err := install.Plan(goos, distro)
		if err != nil {
			fmt.Fprintln(out, deps.Remediation(goos, distro, ""))
			return err
		}
		fmt.Fprintf(out, "install command: %s\n", step)
		if installDryRun {
			return nil
		}

		if !installYes {
			if !term.IsTerminal(os.Stdin.Fd()) {
				return errors.New("refusing to install without a terminal; pass --yes")
			}
			ok, err := confirm(step.String())
			if err != nil {
				return err
			}
			if !ok {
				fmt.Fprintln(out, "aborted")
				return nil
			}
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Minute)
		defer cancel()
		if err := install.Run(ctx, step, out); err != nil {
			return fmt.Errorf("install failed: %w", err)
		}

		after := report.NewSummary(list, deps.CheckAll(cmd.Context(), list, opts))
		if err := report.WriteText(out, after, false); err != nil {
			return err
		}
		if !after.OK(false) {
			return fmt.Errorf("%w: %d missing after install (open a new terminal if PATH changed)", ErrCheckFailed, after.RequiredMissing)
		}
		return nil
	},
}

func confirm(command string) (bool, error) {
	ok := true
	green := lipgloss.Color("#03BF87")
	theme := huh.ThemeCharm()
	theme.Focused.Title = theme.Focused.Title.Foreground(green).Bold(true)
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Install Poppler?").
				Description(command).
				Affirmative("Install").
				Negative("Cancel").
				Value(&ok),
		),
	).WithTheme(theme).WithWidth(60)
	if err := form.Run(); err != nil {
		return false, err
	}
	return ok, nil
}
