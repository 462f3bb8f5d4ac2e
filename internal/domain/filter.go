package domain

// CaseFilter contains filtering/pagination parameters for case searches.
type CaseFilter struct {
	// Search performs a case-insensitive partial match on candidate_name.
	Search *string

	// Stage filters cases currently at the given pipeline stage.
	Stage *Stage

	// HasResult filters cases that have (true) or don't have (false) a
	// recorded endorsement result.
	HasResult *bool

	// SortBy: "candidate_name", "created_at", "updated_at". Default: "created_at".
	SortBy string

	// SortOrder: "ASC" or "DESC". Default: "DESC".
	SortOrder string

	// Limit is the maximum number of cases to return. Default: 50, max: 200.
	Limit int

	// Offset is the number of cases to skip.
	Offset int
}
