package usecase

import (
	"context"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
)

// ownerID extracts the authenticated user from the context. Every
// mutation forces ownership from here rather than trusting the payload
// (IDOR prevention).
// Works with both Gin context (c.Set) and standard context.WithValue:
// gin only resolves c.Set values for plain string keys, so the string
// form is tried first.
func ownerID(ctx context.Context) (string, error) {
	var userID string

	if id, ok := ctx.Value(string(domain.KeyUserID)).(string); ok {
		userID = id
	}
	if userID == "" {
		if id, ok := ctx.Value(domain.KeyUserID).(string); ok {
			userID = id
		}
	}

	if userID == "" {
		return "", apperror.Unauthorized("User not authenticated")
	}
	return userID, nil
}
