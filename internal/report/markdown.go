package report

import (
	"io"
	"strconv"

	"github.com/nao1215/markdown"
)

// WriteMarkdown writes the summary as a GitHub-flavoured Markdown document,
// suitable for pasting into an issue.
func WriteMarkdown(w io.Writer, s Summary) error {
	md := markdown.NewMarkdown(w)

	md.H1("Poppler dependency report")
	md.PlainText("")
	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"OS", "`" + s.OS + "`"},
			{"Generated", s.GeneratedAt.Format("2006-01-02 15:04:05 MST")},
			{"Found", strconv.Itoa(s.Found)},
			{"Missing", strconv.Itoa(s.Missing)},
			{"Required missing", strconv.Itoa(s.RequiredMissing)},
		},
	})
	md.PlainText("")

	switch {
	case s.RequiredMissing > 0:
		md.Cautionf("%d required tool(s) missing. PDF conversion will not work until they are installed.", s.RequiredMissing)
	case s.Missing > 0:
		md.Note("All required tools found; some optional tools are missing.")
	default:
		md.Tip("All Poppler tools found.")
	}
	md.PlainText("")

	md.H2("Tools")
	md.PlainText("")
	rows := make([][]string, 0, len(s.Results))
	for _, e := range s.Results {
		detail := e.VersionInfo
		if !e.Found {
			detail = e.Error
		}
		req := "no"
		if e.Required {
			req = "yes"
		}
		rows = append(rows, []string{"`" + e.Tool + "`", StatusLabel(e), req, detail})
	}
	md.Table(markdown.TableSet{
		Header: []string{"Tool", "Status", "Required", "Details"},
		Rows:   rows,
	})
	md.PlainText("")

	hints := false
	for _, e := range s.Results {
		if e.RemediationHint == "" {
			continue
		}
		if !hints {
			md.H2("Remediation")
			md.PlainText("")
			hints = true
		}
		md.Details(e.Tool, e.RemediationHint)
	}
	md.PlainText("")
	return md.Build()
}
