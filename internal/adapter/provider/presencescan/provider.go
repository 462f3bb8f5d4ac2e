// Package presencescan fetches digital-presence scan results from an
// external screening API.
package presencescan

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/ballotworks/advocacy-backend/internal/provider"
)

// Provider calls the external presence screening API.
type Provider struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	log        *slog.Logger
}

// NewProvider creates a Provider for the given API endpoint.
func NewProvider(baseURL, apiKey string, logger *slog.Logger) *Provider {
	return &Provider{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		log:        logger.With("adapter", "presencescan"),
	}
}

// ScanRequest identifies the candidate to screen.
type ScanRequest struct {
	CandidateName string
	State         string
	Office        string
}

// Scan runs a presence scan for the candidate.
func (p *Provider) Scan(ctx context.Context, req ScanRequest) (*provider.ScanResult, error) {
	body, err := json.Marshal(apiScanRequest{
		CandidateName: req.CandidateName,
		State:         req.State,
		Office:        req.Office,
	})
	if err != nil {
		return nil, fmt.Errorf("presencescan: marshal request: %w", err)
	}

	p.log.DebugContext(ctx, "presence scan request", slog.String("candidate", req.CandidateName))

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/v1/scans", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("presencescan: create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if p.apiKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+p.apiKey)
	}

	resp, err := p.doWithRetry(ctx, httpReq, req.CandidateName)
	if err != nil {
		p.log.ErrorContext(ctx, "presence scan request failed",
			slog.String("candidate", req.CandidateName),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("presencescan: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("presencescan: unexpected status %d", resp.StatusCode)
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("presencescan: read body: %w", err)
	}

	var apiResp apiScanResponse
	if err := json.Unmarshal(respBody, &apiResp); err != nil {
		return nil, fmt.Errorf("presencescan: decode json: %w", err)
	}

	result := mapAPIResponse(apiResp)

	p.log.DebugContext(ctx, "presence scan response",
		slog.String("candidate", req.CandidateName),
		slog.Int("findings", len(result.Findings)),
	)

	return result, nil
}

// doWithRetry executes the request with a single retry on 5xx or network errors.
func (p *Provider) doWithRetry(ctx context.Context, req *http.Request, candidate string) (*http.Response, error) {
	// The body must be replayable for the retry.
	retryReq := req.Clone(ctx)

	resp, err := p.httpClient.Do(req)

	shouldRetry := err != nil || (resp != nil && resp.StatusCode >= 500)
	if !shouldRetry {
		return resp, err
	}

	// Don't retry if context is already cancelled.
	if ctx.Err() != nil {
		return resp, err
	}

	reason := "network error"
	if err == nil && resp != nil {
		reason = fmt.Sprintf("status %d", resp.StatusCode)
	}
	p.log.WarnContext(ctx, "presence scan retry",
		slog.String("candidate", candidate),
		slog.String("reason", reason),
	)

	// Close body from the failed attempt before retrying.
	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}

	time.Sleep(500 * time.Millisecond)

	return p.httpClient.Do(retryReq)
}

// mapAPIResponse converts the API payload into a provider.ScanResult.
func mapAPIResponse(apiResp apiScanResponse) *provider.ScanResult {
	result := &provider.ScanResult{
		CandidateName: apiResp.Candidate,
		Findings:      []provider.Finding{},
	}

	for _, f := range apiResp.Findings {
		finding := provider.Finding{
			Source:   f.Source,
			Severity: f.Severity,
			Summary:  f.Summary,
		}
		if f.URL != "" {
			u := f.URL
			finding.URL = &u
		}
		result.Findings = append(result.Findings, finding)
	}

	return result
}
