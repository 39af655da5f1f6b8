package api

import (
	"context"
	"errors"
)

type keyType string

const (
	userIDKey   keyType = "userID"
	userRoleKey keyType = "userRole"
)

// ctxWithUser adds the authenticated user's ID and role to the context
func ctxWithUser(ctx context.Context, userID, role string) context.Context {
	ctx = context.WithValue(ctx, userIDKey, userID)
	return context.WithValue(ctx, userRoleKey, role)
}

// ctxGetUserID retrieves the authenticated user's ID from the context
func ctxGetUserID(ctx context.Context) (string, error) {
	return ctxGetStringValue(ctx, userIDKey)
}

// ctxGetUserRole retrieves the authenticated user's role from the context
func ctxGetUserRole(ctx context.Context) (string, error) {
	return ctxGetStringValue(ctx, userRoleKey)
}

// ctxGetStringValue is a helper function to retrieve string values from the context by key
func ctxGetStringValue(ctx context.Context, key keyType) (string, error) {
	ctxValue := ctx.Value(key)
	if ctxValue == nil {
		return "", errors.New("key not found in context")
	}
	valueAsString, ok := ctxValue.(string)
	if !ok {
		return "", errors.New("value is not of type `string`")
	}
	return valueAsString, nil
}
