// Package advisor fetches optional migration prose from an external
// generative-text service. Its output is advisory only: analysis reports are
// complete and correct without it, so failures degrade rather than fail.
package advisor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/pipeshift/pipeshift/internal/domain"
)

// Client implements domain.Advisor over a simple JSON prompt/text endpoint.
type Client struct {
	endpoint string
	token    string
	http     *retryablehttp.Client
}

// New builds an advisor client. Transient failures are retried once.
func New(endpoint, token string) *Client {
	rc := retryablehttp.NewClient()
	rc.RetryMax = 1
	rc.HTTPClient.Timeout = 30 * time.Second
	rc.Logger = nil
	return &Client{endpoint: endpoint, token: token, http: rc}
}

type adviseRequest struct {
	Prompt string `json:"prompt"`
}

type adviseResponse struct {
	Text string `json:"text"`
}

// Advise summarizes the report into a prompt and returns the service's prose.
func (c *Client) Advise(ctx context.Context, report *domain.AnalysisReport) domain.Advisory {
	body, err := json.Marshal(adviseRequest{Prompt: buildPrompt(report)})
	if err != nil {
		return degraded(fmt.Sprintf("encoding advisory request: %v", err))
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return degraded(fmt.Sprintf("building advisory request: %v", err))
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return degraded(fmt.Sprintf("advisory service unreachable: %v", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return degraded(fmt.Sprintf("advisory service returned HTTP %d", resp.StatusCode))
	}

	var parsed adviseResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return degraded(fmt.Sprintf("decoding advisory response: %v", err))
	}

	return domain.Advisory{Status: domain.CollaboratorOK, Text: parsed.Text}
}

// buildPrompt keeps the request small: feature keys and the aggregate
// classification, never the pipeline text itself.
func buildPrompt(report *domain.AnalysisReport) string {
	keys := make([]string, 0, len(report.Profile.FeatureHits))
	for _, h := range report.Profile.FeatureHits {
		keys = append(keys, h.Key)
	}
	return fmt.Sprintf(
		"A %s Jenkins pipeline (%s complexity, readiness %s) uses: %s. "+
			"Write a short migration briefing for moving it to GitLab CI.",
		report.Profile.PipelineKind, report.Profile.ComplexityTier,
		report.Summary.Readiness, strings.Join(keys, ", "))
}

func degraded(note string) domain.Advisory {
	return domain.Advisory{Status: domain.CollaboratorDegraded, Note: note}
}
