// Package report aggregates check results and writes them as text, JSON or
// Markdown.
package report

import (
	"time"

	"pdfdoctor/internal/deps"
)

// Entry is the serialisable view of one deps.CheckResult.
type Entry struct {
	Tool            string `json:"tool"`
	Required        bool   `json:"required"`
	Found           bool   `json:"found"`
	VersionInfo     string `json:"versionInfo,omitempty"`
	Version         string `json:"version,omitempty"`
	Path            string `json:"path,omitempty"`
	Source          string `json:"source,omitempty"`
	Kind            string `json:"kind,omitempty"`
	Error           string `json:"error,omitempty"`
	RemediationHint string `json:"remediationHint,omitempty"`
	DurationMS      int64  `json:"durationMs"`
}

// Summary is a multi-tool check run.
type Summary struct {
	OS              string    `json:"os"`
	GeneratedAt     time.Time `json:"generatedAt"`
	Results         []Entry   `json:"results"`
	Found           int       `json:"found"`
	Missing         int       `json:"missing"`
	RequiredMissing int       `json:"requiredMissing"`
}

// NewSummary pairs results with the tool list they were produced from.
// Tools without a matching result are ignored.
func NewSummary(tools []deps.ToolInfo, results []deps.CheckResult) Summary {
	required := map[string]bool{}
	for _, t := range tools {
		required[string(t.ID)] = t.Required
	}
	s := Summary{GeneratedAt: time.Now().UTC(), Results: make([]Entry, 0, len(results))}
	for _, r := range results {
		if s.OS == "" {
			s.OS = r.OS
		}
		e := FromResult(r)
		e.Required = required[r.ToolName]
		if e.Found {
			s.Found++
		} else {
			s.Missing++
			if e.Required {
				s.RequiredMissing++
			}
		}
		s.Results = append(s.Results, e)
	}
	return s
}

// FromResult converts a single result.
func FromResult(r deps.CheckResult) Entry {
	e := Entry{
		Tool:            r.ToolName,
		Found:           r.Found,
		VersionInfo:     r.VersionInfo,
		Version:         r.Version,
		Path:            r.Path,
		Source:          r.Source,
		Kind:            deps.Kind(r.Err),
		RemediationHint: r.RemediationHint,
		DurationMS:      r.Duration.Milliseconds(),
	}
	if r.Err != nil {
		e.Error = r.Err.Error()
	}
	return e
}

// OK reports whether every required tool was found. With strict, optional
// tools must be found too.
func (s Summary) OK(strict bool) bool {
	if strict {
		return s.Missing == 0
	}
	return s.RequiredMissing == 0
}

// Failing counts the tools that make OK(strict) false.
func (s Summary) Failing(strict bool) int {
	if strict {
		return s.Missing
	}
	return s.RequiredMissing
}
