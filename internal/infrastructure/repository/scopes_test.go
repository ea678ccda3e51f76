package repository

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestWithTenantRoundTrip(t *testing.T) {
	tenantID := uuid.New()
	ctx := WithTenant(context.Background(), tenantID)

	got, ok := GetTenantID(ctx)
	assert.True(t, ok)
	assert.Equal(t, tenantID, got)
}

func TestGetTenantIDMissing(t *testing.T) {
	_, ok := GetTenantID(context.Background())
	assert.False(t, ok)
}

func TestGetTenantIDNilUUID(t *testing.T) {
	// A nil tenant ID must not count as a valid tenant context
	ctx := WithTenant(context.Background(), uuid.Nil)

	_, ok := GetTenantID(ctx)
	assert.False(t, ok)
}
