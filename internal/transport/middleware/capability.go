package middleware

import (
	"context"

	"github.com/ballotworks/advocacy-backend/internal/domain"
	"github.com/ballotworks/advocacy-backend/pkg/ctxutil"
)

// RequireVettingManager returns domain.ErrForbidden if the context user's
// role does not carry the vetting capability.
// Use in REST handlers, not as HTTP middleware.
func RequireVettingManager(ctx context.Context) error {
	role := domain.UserRole(ctxutil.UserRoleFromCtx(ctx))
	if !role.CanManageVetting() {
		return domain.ErrForbidden
	}
	return nil
}
