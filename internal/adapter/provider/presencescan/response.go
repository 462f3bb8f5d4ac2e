package presencescan

// apiScanRequest is the request body sent to the scan API.
type apiScanRequest struct {
	CandidateName string `json:"candidate_name"`
	State         string `json:"state"`
	Office        string `json:"office"`
}

// apiScanResponse is the scan API's response envelope.
type apiScanResponse struct {
	Candidate string       `json:"candidate"`
	Findings  []apiFinding `json:"findings"`
}

// apiFinding is a single reported item.
type apiFinding struct {
	Source   string `json:"source"`
	URL      string `json:"url"`
	Severity string `json:"severity"`
	Summary  string `json:"summary"`
}
