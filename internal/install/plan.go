// Package install turns the per-OS guide into a runnable package-manager
// command.
package install

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"pdfdoctor/internal/deps"
	"pdfdoctor/internal/system"
)

// ErrNoPackageManager is returned when none of the candidate managers for the
// host is on PATH.
var ErrNoPackageManager = errors.New("no supported package manager found on PATH")

// Step is one command of an install plan.
type Step struct {
	Manager string   // binary that must exist for the step to apply
	Args    []string // full argv, Args[0] may be sudo
}

func (s Step) String() string { return strings.Join(s.Args, " ") }

// Candidates lists install commands for goos in order of preference.
func Candidates(goos, distro string) []Step {
	switch goos {
	case "darwin":
		return []Step{
			{Manager: "brew", Args: []string{"brew", "install", "poppler"}},
			{Manager: "port", Args: []string{"sudo", "port", "install", "poppler"}},
		}
	case "windows":
		return []Step{
			{Manager: "conda", Args: []string{"conda", "install", "-y", "-c", "conda-forge", "poppler"}},
			{Manager: "scoop", Args: []string{"scoop", "install", "poppler"}},
			{Manager: "choco", Args: []string{"choco", "install", "-y", "poppler"}},
		}
	case "linux":
		apt := Step{Manager: "apt-get", Args: []string{"sudo", "apt-get", "install", "-y", "poppler-utils"}}
		dnf := Step{Manager: "dnf", Args: []string{"sudo", "dnf", "install", "-y", "poppler-utils"}}
		pacman := Step{Manager: "pacman", Args: []string{"sudo", "pacman", "-S", "--noconfirm", "poppler"}}
		zypper := Step{Manager: "zypper", Args: []string{"sudo", "zypper", "install", "-y", "poppler-tools"}}
		apk := Step{Manager: "apk", Args: []string{"sudo", "apk", "add", "poppler-utils"}}
		switch distro {
		case deps.DistroDebian:
			return []Step{apt}
		case deps.DistroFedora:
			return []Step{dnf}
		case deps.DistroArch:
			return []Step{pacman}
		case deps.DistroSUSE:
			return []Step{zypper}
		case deps.DistroAlpine:
			return []Step{apk}
		}
		return []Step{apt, dnf, pacman, zypper, apk}
	}
	return nil
}

// Plan picks the first candidate whose package manager is on PATH.
func Plan(goos, distro string) (Step, error) {
	for _, s := range Candidates(goos, distro) {
		if _, err := exec.LookPath(s.Manager); err == nil {
			return withoutSudo(s), nil
		}
	}
	return Step{}, fmt.Errorf("%w (os %s)", ErrNoPackageManager, goos)
}

// withoutSudo drops sudo when running as root or when sudo is unavailable.
func withoutSudo(s Step) Step {
	if len(s.Args) == 0 || s.Args[0] != "sudo" {
		return s
	}
	_, err := exec.LookPath("sudo")
	if os.Geteuid() == 0 || err != nil {
		s.Args = append([]string(nil), s.Args[1:]...)
	}
	return s
}

// Run executes the step, streaming its output to out.
func Run(ctx context.Context, s Step, out io.Writer) error {
	if len(s.Args) == 0 {
		return errors.New("empty install step")
	}
	system.Logger.Info("running installer", "cmd", s.String())
	cmd := exec.CommandContext(ctx, s.Args[0], s.Args[1:]...)
	cmd.Stdout = out
	cmd.Stderr = out
	cmd.Stdin = os.Stdin
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s: %w", s.String(), err)
	}
	return nil
}
