package usecase

import (
	"context"

	"ehr-vaccine-service/internal/delivery/http/middleware"

	"github.com/google/uuid"
)

// actorFromContext returns the authenticated user, or nil for system calls.
func actorFromContext(ctx context.Context) *uuid.UUID {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil
	}
	return &userID
}
