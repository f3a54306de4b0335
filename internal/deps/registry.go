package deps

import "strings"

var defaultProbes = [][]string{{"-v"}, {"-h"}}

var Tools = []ToolInfo{
	{
		ID:          ToolPdftoppm,
		DisplayName: "pdftoppm (PDF to image)",
		Binaries:    []string{"pdftoppm"},
		VersionArgs: defaultProbes,
		Required:    true,
	},
	{
		ID:          ToolPdfinfo,
		DisplayName: "pdfinfo (PDF metadata)",
		Binaries:    []string{"pdfinfo"},
		VersionArgs: defaultProbes,
		Required:    true,
	},
	{
		ID:          ToolPdftotext,
		DisplayName: "pdftotext (text extraction)",
		Binaries:    []string{"pdftotext"},
		VersionArgs: defaultProbes,
	},
	{
		ID:          ToolPdfimages,
		DisplayName: "pdfimages (embedded images)",
		Binaries:    []string{"pdfimages"},
		VersionArgs: defaultProbes,
	},
	{
		ID:          ToolPdftocairo,
		DisplayName: "pdftocairo (cairo renderer)",
		Binaries:    []string{"pdftocairo"},
		VersionArgs: defaultProbes,
	},
}

// Lookup finds a tool by ID or binary name, case-insensitively.
func Lookup(name string, in []ToolInfo) (ToolInfo, bool) {
	n := strings.ToLower(strings.TrimSpace(name))
	if n == "" {
		return ToolInfo{}, false
	}
	for _, t := range in {
		if strings.ToLower(string(t.ID)) == n {
			return t, true
		}
		for _, b := range t.Binaries {
			if strings.ToLower(b) == n {
				return t, true
			}
		}
	}
	return ToolInfo{}, false
}

// AdHoc builds a ToolInfo for a command that is not in the registry. An
// http(s) URL becomes an endpoint check.
func AdHoc(name string) ToolInfo {
	if IsURL(name) {
		return ToolInfo{ID: ToolID(name), DisplayName: name, URL: name}
	}
	return ToolInfo{
		ID:          ToolID(name),
		DisplayName: name,
		Binaries:    []string{name},
		VersionArgs: defaultProbes,
	}
}

// Merge appends extra tool definitions, replacing built-ins with the same ID.
// Missing binaries and probes are filled with defaults.
func Merge(base, extra []ToolInfo) []ToolInfo {
	out := make([]ToolInfo, 0, len(base)+len(extra))
	idx := map[ToolID]int{}
	for _, t := range base {
		idx[t.ID] = len(out)
		out = append(out, t)
	}
	for _, t := range extra {
		if strings.TrimSpace(string(t.ID)) == "" {
			continue
		}
		if t.URL == "" && len(t.Binaries) == 0 {
			t.Binaries = []string{string(t.ID)}
		}
		if t.URL == "" && len(t.VersionArgs) == 0 {
			t.VersionArgs = defaultProbes
		}
		if t.DisplayName == "" {
			t.DisplayName = string(t.ID)
		}
		if i, ok := idx[t.ID]; ok {
			out[i] = t
			continue
		}
		idx[t.ID] = len(out)
		out = append(out, t)
	}
	return out
}

// IsURL reports whether s names an http(s) endpoint.
func IsURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

// Names returns every ID and binary name, used for suggestions.
func Names(in []ToolInfo) []string {
	seen := map[string]bool{}
	var out []string
	for _, t := range in {
		for _, n := range append([]string{string(t.ID)}, t.Binaries...) {
			if !seen[n] {
				seen[n] = true
				out = append(out, n)
			}
		}
	}
	return out
}
