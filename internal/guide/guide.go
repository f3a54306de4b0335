// Package guide embeds the Poppler installation guide and renders it for
// the terminal.
package guide

import (
	_ "embed"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
)

//go:embed poppler.md
var popplerMD string

const verifyHeading = "Verify the installation"

// Markdown returns the full guide.
func Markdown() string { return popplerMD }

// Heading maps a GOOS value to its guide section title.
func Heading(goos string) string {
	switch goos {
	case "windows":
		return "Windows"
	case "darwin":
		return "macOS"
	case "linux":
		return "Linux"
	}
	return ""
}

// Section returns the title, the intro, the section for goos and the
// verification steps. Unknown OSes get the whole guide.
func Section(goos string) string {
	h := Heading(goos)
	if h == "" {
		return popplerMD
	}
	intro, parts := split(popplerMD)
	var sb strings.Builder
	sb.WriteString(intro)
	for _, want := range []string{h, verifyHeading} {
		if body, ok := parts[want]; ok {
			sb.WriteString("## " + want + "\n")
			sb.WriteString(body)
		}
	}
	return sb.String()
}

// split cuts the document at level-2 headings.
func split(md string) (string, map[string]string) {
	parts := map[string]string{}
	var intro strings.Builder
	cur := ""
	var body strings.Builder
	flush := func() {
		if cur != "" {
			parts[cur] = body.String()
		}
		body.Reset()
	}
	for _, ln := range strings.SplitAfter(md, "\n") {
		if strings.HasPrefix(ln, "## ") {
			flush()
			cur = strings.TrimSpace(strings.TrimPrefix(ln, "## "))
			continue
		}
		if cur == "" {
			intro.WriteString(ln)
			continue
		}
		body.WriteString(ln)
	}
	flush()
	return intro.String(), parts
}

// Render formats markdown for a terminal of the given width. When NO_COLOR is
// set, or rendering fails, the input is returned unchanged.
func Render(md string, width int) string {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return md
	}
	// glamour adds a two column gutter
	wrap := width - 2
	if wrap < 20 {
		wrap = 78
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(wrap),
	)
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return out
}
