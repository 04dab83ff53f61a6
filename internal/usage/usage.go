// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package usage reports estimated and actual API spend: local estimates
// come from the tracking store, actuals from the OpenAI usage endpoint.
package usage

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/pdiddy/guide-creator/internal/httputil"
	"github.com/pdiddy/guide-creator/internal/tracking"
)

// usageAPIURL is the OpenAI usage endpoint. Package-level var for test
// substitution.
var usageAPIURL = "https://api.openai.com/v1/usage"

// Checker queries the OpenAI usage endpoint for actual spend.
type Checker struct {
	APIKey string
	Client *http.Client
}

// Fetch requests usage for the window [now-daysBack, now]. The endpoint's
// schema is not stable, so the payload is returned as a generic map for
// display. A non-200 status is an error the caller reports without aborting
// the local half of the report.
func (c *Checker) Fetch(ctx context.Context, daysBack int) (map[string]any, error) {
	if daysBack <= 0 {
		daysBack = 1
	}
	end := time.Now()
	start := end.AddDate(0, 0, -daysBack)

	url := fmt.Sprintf("%s?start_date=%s&end_date=%s",
		usageAPIURL, start.Format("2006-01-02"), end.Format("2006-01-02"))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating usage request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.APIKey)
	req.Header.Set("Content-Type", "application/json")

	client := c.Client
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := httputil.DoWithRetry(ctx, client, req, 0)
	if err != nil {
		return nil, fmt.Errorf("calling usage endpoint: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("usage endpoint returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var payload map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decoding usage response: %w", err)
	}
	return payload, nil
}

// WriteReport renders the usage report: pricing reference, per-run
// estimates, and totals.
func WriteReport(ctx context.Context, w io.Writer, store *tracking.Store) error {
	fmt.Fprintln(w, "Model pricing (USD per 1K tokens):")
	models := tracking.KnownModels()
	names := make([]string, 0, len(models))
	for name := range models {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		p := models[name]
		fmt.Fprintf(w, "  %-16s input %.5f  output %.5f\n", name, p.InputPer1K, p.OutputPer1K)
	}

	summaries, err := store.Summaries(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "\nRecorded runs: %d\n", len(summaries))
	for _, s := range summaries {
		status := "in progress"
		if s.FinishedAt != "" {
			status = fmt.Sprintf("%d sections", s.Sections)
		}
		fmt.Fprintf(w, "  #%-4d %-40s %-12s %s, %d calls, $%.4f\n",
			s.ID, truncate(s.Topic, 40), s.Audience, status, s.Calls, s.CostUSD)
	}

	total, err := store.Total(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "\nTotal: %d runs, %d calls, estimated $%.4f\n", total.Runs, total.Calls, total.CostUSD)
	return nil
}

// WriteRemote renders the raw usage payload under the local report.
func WriteRemote(w io.Writer, payload map[string]any) {
	fmt.Fprintln(w, "\nOpenAI reported usage:")
	data, err := json.MarshalIndent(payload, "  ", "  ")
	if err != nil {
		fmt.Fprintf(w, "  (unrenderable payload: %v)\n", err)
		return
	}
	fmt.Fprintf(w, "  %s\n", data)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}
