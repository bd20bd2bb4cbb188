// Package lint submits generated configuration to the GitLab CI lint API.
// The engine's own structural validation stands on its own; remote linting is
// an additional, optional check and any transport failure is reported as a
// degraded result, never as a lost conversion.
package lint

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

// Client implements domain.Linter against a GitLab instance.
type Client struct {
	endpoint string
	token    string
	http     *retryablehttp.Client
}

// New builds a lint client for the given GitLab base URL (e.g.
// https://gitlab.example.com). Transient failures are retried once.
func New(baseURL, token string) *Client {
	rc := retryablehttp.NewClient()
	rc.RetryMax = 1
	rc.HTTPClient.Timeout = 15 * time.Second
	rc.Logger = nil
	return &Client{
		endpoint: strings.TrimSuffix(baseURL, "/") + "/api/v4/ci/lint",
		token:    token,
		http:     rc,
	}
}

type lintRequest struct {
	Content string `json:"content"`
}

type lintResponse struct {
	Valid    bool     `json:"valid"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

// Lint posts content to the lint endpoint. A failed call yields a degraded
// result carrying the failure note.
func (c *Client) Lint(ctx context.Context, content string) domain.LintResult {
	body, err := json.Marshal(lintRequest{Content: content})
	if err != nil {
		return degraded(fmt.Sprintf("encoding lint request: %v", err))
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return degraded(fmt.Sprintf("building lint request: %v", err))
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("PRIVATE-TOKEN", c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return degraded(fmt.Sprintf("lint service unreachable: %v", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return degraded(fmt.Sprintf("lint service returned HTTP %d", resp.StatusCode))
	}

	var parsed lintResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return degraded(fmt.Sprintf("decoding lint response: %v", err))
	}

	return domain.LintResult{
		Status:   domain.CollaboratorOK,
		Valid:    parsed.Valid,
		Errors:   parsed.Errors,
		Warnings: parsed.Warnings,
	}
}

func degraded(note string) domain.LintResult {
	return domain.LintResult{Status: domain.CollaboratorDegraded, Note: note}
}
