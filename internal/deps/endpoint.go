package deps

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"pdfdoctor/internal/system"
)

// endpointClient has no timeout of its own; the request context carries it.
var endpointClient = http.DefaultClient

// checkEndpoint answers whether an HTTP service (such as the vision model
// server a PDF-to-Markdown pipeline talks to) is up. A 2xx response counts as
// found.
func checkEndpoint(ctx context.Context, t ToolInfo, opts Options, goos string) CheckResult {
	start := time.Now()
	res := CheckResult{ToolName: string(t.ID), OS: goos, Path: t.URL, Source: "GET " + t.URL}

	fail := func(err error) CheckResult {
		res.Err = err
		res.RemediationHint = endpointHint(string(t.ID), t.URL)
		res.Duration = time.Since(start)
		system.Logger.Debug("endpoint unavailable", "tool", res.ToolName, "url", t.URL, "err", err)
		return res
	}

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	cctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(cctx, http.MethodGet, t.URL, nil)
	if err != nil {
		return fail(fmt.Errorf("%w: %v", ErrUnreachable, err))
	}
	req.Header.Set("Accept", "application/json")
	resp, err := endpointClient.Do(req)
	if err != nil {
		if cerr := ctx.Err(); cerr != nil {
			return fail(cerr)
		}
		if errors.Is(cctx.Err(), context.DeadlineExceeded) {
			return fail(ErrTimeout)
		}
		return fail(fmt.Errorf("%w: %v", ErrUnreachable, err))
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fail(&EndpointStatusError{StatusCode: resp.StatusCode, Status: resp.Status})
	}
	res.Found = true
	res.VersionInfo = "HTTP " + resp.Status
	if srv := strings.TrimSpace(resp.Header.Get("Server")); srv != "" {
		res.VersionInfo += " (" + srv + ")"
		res.Version = ParseVersion(srv)
	}
	res.Duration = time.Since(start)
	return res
}

func endpointHint(name, url string) string {
	hint := fmt.Sprintf("%s is not reachable at %s. Start the service and check the url in config.yaml.", name, url)
	if strings.Contains(url, ":11434") || strings.Contains(strings.ToLower(url), "ollama") {
		hint += "\n  ollama serve\n  ollama pull qwen2.5vl"
	}
	return hint
}
