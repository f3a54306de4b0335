package ui

import (
	"time"

	"pdfdoctor/internal/deps"
)

// Bubble Tea messages
type resultsMsg struct {
	results []deps.CheckResult
	at      time.Time
}

type guideMsg struct {
	out   string
	width int
}
