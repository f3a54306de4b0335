package deps

import "time"

// Tool identifiers and metadata
type ToolID string

const (
	ToolPdftoppm   ToolID = "pdftoppm"
	ToolPdfinfo    ToolID = "pdfinfo"
	ToolPdftotext  ToolID = "pdftotext"
	ToolPdfimages  ToolID = "pdfimages"
	ToolPdftocairo ToolID = "pdftocairo"
)

type ToolInfo struct {
	ID          ToolID     `yaml:"id" json:"id"`
	DisplayName string     `yaml:"name,omitempty" json:"name,omitempty"`
	Binaries    []string   `yaml:"binaries,omitempty" json:"binaries,omitempty"` // candidate binary names in PATH
	VersionArgs [][]string `yaml:"versionArgs,omitempty" json:"versionArgs,omitempty"`
	MinVersion  string     `yaml:"minVersion,omitempty" json:"minVersion,omitempty"`
	Required    bool       `yaml:"required" json:"required"`
	// URL turns the entry into an HTTP endpoint check (e.g. an Ollama
	// /v1/models route) instead of a PATH lookup.
	URL string `yaml:"url,omitempty" json:"url,omitempty"`
}

// CheckResult is the outcome of one check. It is not modified after Check returns.
type CheckResult struct {
	ToolName        string
	Found           bool
	VersionInfo     string // first line of the probe output
	RemediationHint string
	Version         string // parsed semantic version, may be empty
	Path            string
	Source          string // which probe produced the output
	OS              string
	Err             error
	Duration        time.Duration
}

// Options tunes a check.
type Options struct {
	Timeout time.Duration
	// GOOS overrides the host OS for remediation selection.
	GOOS string
	// Distro overrides /etc/os-release detection on Linux.
	Distro string
}

// DefaultTimeout bounds every probe subprocess.
const DefaultTimeout = 5 * time.Second
