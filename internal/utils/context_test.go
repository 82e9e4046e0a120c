// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"
)

func TestContextKeyString(t *testing.T) {
	key := contextKey("testKey")
	if key.String() != "testKey" {
		t.Errorf("expected 'testKey', got '%s'", key.String())
	}
}

func TestSessionIDCtxKey(t *testing.T) {
	if SessionIDCtxKey.String() != "sessionID" {
		t.Errorf("expected 'sessionID', got '%s'", SessionIDCtxKey.String())
	}
}

func TestGetSessionIDFromContext_Success(t *testing.T) {
	ctx := WithSessionID(context.Background(), "abc")

	id, ok := GetSessionIDFromContext(ctx)

	if !ok {
		t.Fatal("expected ok=true, got false")
	}
	if id != "abc" {
		t.Errorf("expected 'abc', got '%s'", id)
	}
}

func TestGetSessionIDFromContext_Missing(t *testing.T) {
	_, ok := GetSessionIDFromContext(context.Background())
	if ok {
		t.Error("expected ok=false for empty context")
	}
}

func TestGetSessionIDFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), SessionIDCtxKey, 42)

	_, ok := GetSessionIDFromContext(ctx)
	if ok {
		t.Error("expected ok=false for non-string value")
	}
}

func TestGetSessionIDFromContext_Empty(t *testing.T) {
	_, ok := GetSessionIDFromContext(WithSessionID(context.Background(), ""))
	if ok {
		t.Error("expected ok=false for empty identifier")
	}
}
