package deps

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// osReleasePath is swapped in tests.
var osReleasePath = "/etc/os-release"

// Distro families understood by Remediation.
const (
	DistroDebian = "debian"
	DistroFedora = "fedora"
	DistroArch   = "arch"
	DistroSUSE   = "suse"
	DistroAlpine = "alpine"
)

// DetectDistro reads os-release and maps ID / ID_LIKE to a distro family.
// It returns "" when the file is missing or the family is unknown.
func DetectDistro() string {
	f, err := os.Open(osReleasePath)
	if err != nil {
		return ""
	}
	defer f.Close()
	var ids []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		k, v, ok := strings.Cut(strings.TrimSpace(sc.Text()), "=")
		if !ok {
			continue
		}
		v = strings.Trim(v, `"'`)
		switch k {
		case "ID":
			ids = append([]string{v}, ids...)
		case "ID_LIKE":
			ids = append(ids, strings.Fields(v)...)
		}
	}
	for _, id := range ids {
		if d := distroFamily(id); d != "" {
			return d
		}
	}
	return ""
}

func distroFamily(id string) string {
	switch strings.ToLower(id) {
	case "debian", "ubuntu", "linuxmint", "pop", "raspbian", "kali":
		return DistroDebian
	case "fedora", "rhel", "centos", "rocky", "almalinux", "amzn":
		return DistroFedora
	case "arch", "manjaro", "endeavouros":
		return DistroArch
	case "suse", "opensuse", "opensuse-leap", "opensuse-tumbleweed", "sles":
		return DistroSUSE
	case "alpine":
		return DistroAlpine
	}
	return ""
}

// Remediation returns install instructions for the given OS. Every hint
// mentions poppler.
func Remediation(goos, distro, tool string) string {
	if tool == "" {
		tool = "the poppler tools"
	}
	switch goos {
	case "windows":
		return fmt.Sprintf("%s not found. Install poppler for Windows:\n"+
			"  conda install -c conda-forge poppler\n"+
			"  or: scoop install poppler / choco install poppler\n"+
			"  or download a release from https://github.com/oschwartz10612/poppler-windows/releases,\n"+
			"  extract it and add the Library\\bin folder to your PATH, then open a new terminal.", tool)
	case "darwin":
		return fmt.Sprintf("%s not found. Install poppler on macOS:\n"+
			"  brew install poppler\n"+
			"  or with MacPorts: sudo port install poppler", tool)
	case "linux":
		return fmt.Sprintf("%s not found. Install poppler on Linux:\n  %s", tool, linuxInstall(distro))
	default:
		return fmt.Sprintf("%s not found. Install poppler with your system package manager "+
			"(package name: poppler or poppler-utils) and make sure its bin directory is on PATH.", tool)
	}
}

func linuxInstall(distro string) string {
	switch distro {
	case DistroDebian:
		return "sudo apt-get update && sudo apt-get install -y poppler-utils"
	case DistroFedora:
		return "sudo dnf install -y poppler-utils"
	case DistroArch:
		return "sudo pacman -S --noconfirm poppler"
	case DistroSUSE:
		return "sudo zypper install -y poppler-tools"
	case DistroAlpine:
		return "sudo apk add poppler-utils"
	}
	return "sudo apt-get install -y poppler-utils   (Debian/Ubuntu)\n" +
		"  sudo dnf install -y poppler-utils       (Fedora/RHEL)"
}
