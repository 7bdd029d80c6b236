package utils

import (
	"context"
	"testing"
)

func TestGetUserIDFromContext_Present(t *testing.T) {
	ctx := context.WithValue(context.Background(), UserIDCtxKey, int64(42))

	userID, ok := GetUserIDFromContext(ctx)
	if !ok {
		t.Fatal("expected user id to be present")
	}
	if userID != 42 {
		t.Errorf("expected 42, got %d", userID)
	}
}

func TestGetUserIDFromContext_Missing(t *testing.T) {
	if _, ok := GetUserIDFromContext(context.Background()); ok {
		t.Error("expected ok=false for empty context")
	}
}

func TestGetUserIDFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), UserIDCtxKey, "42")

	if _, ok := GetUserIDFromContext(ctx); ok {
		t.Error("expected ok=false for non-int64 value")
	}
}
