package api

import (
	"context"
)

type keyType string

const userIDKey keyType = "userID"

// ctxWithUserID adds the authenticated user's id to the context
func ctxWithUserID(ctx context.Context, userID uint) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// ctxUserID retrieves the authenticated user's id from the context;
// ok is false for anonymous requests.
func ctxUserID(ctx context.Context) (userID uint, ok bool) {
	userID, ok = ctx.Value(userIDKey).(uint)
	return userID, ok
}

// ctxViewerID returns the viewer id as a nullable reference for the
// projection services; nil for anonymous requests.
func ctxViewerID(ctx context.Context) *uint {
	if userID, ok := ctxUserID(ctx); ok {
		return &userID
	}
	return nil
}
