package presencescan

import (
	"context"

	"github.com/ballotworks/advocacy-backend/internal/provider"
)

// Stub is a no-op scan provider for environments without API access.
// Returns an empty result (no findings).
type Stub struct{}

// NewStub creates a new no-op scan provider.
func NewStub() *Stub { return &Stub{} }

// Scan always returns an empty result.
func (s *Stub) Scan(ctx context.Context, req ScanRequest) (*provider.ScanResult, error) {
	return &provider.ScanResult{CandidateName: req.CandidateName, Findings: []provider.Finding{}}, nil
}
