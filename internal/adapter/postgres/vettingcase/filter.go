package vettingcase

import (
	"github.com/ballotworks/advocacy-backend/internal/domain"
)

const (
	defaultLimit = 50
	maxLimit     = 200

	sortByName      = "candidate_name"
	sortByCreatedAt = "created_at"
	sortByUpdatedAt = "updated_at"

	sortOrderASC  = "ASC"
	sortOrderDESC = "DESC"
)

// normalizeFilter applies defaults and clamps values.
func normalizeFilter(f domain.CaseFilter) domain.CaseFilter {
	switch f.SortBy {
	case sortByName, sortByCreatedAt, sortByUpdatedAt:
		// valid
	default:
		f.SortBy = sortByCreatedAt
	}

	switch f.SortOrder {
	case sortOrderASC, sortOrderDESC:
		// valid
	default:
		f.SortOrder = sortOrderDESC
	}

	if f.Limit <= 0 {
		f.Limit = defaultLimit
	}
	if f.Limit > maxLimit {
		f.Limit = maxLimit
	}

	if f.Offset < 0 {
		f.Offset = 0
	}

	return f
}
