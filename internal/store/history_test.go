package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistory_LatestReturnsFalseWhenEmpty(t *testing.T) {
	h, err := Open(":memory:")
	require.NoError(t, err)
	defer h.Close()

	_, ok, err := h.Latest(context.Background(), "https://example.com", "ax")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestHistory_InsertThenLatestRoundTrips(t *testing.T) {
	h, err := Open(":memory:")
	require.NoError(t, err)
	defer h.Close()

	ctx := context.Background()
	now := time.Unix(1700000000, 0).UTC()
	require.NoError(t, h.Insert(ctx, "https://example.com", "ax", "deadbeef", "- WebArea", now))

	rec, ok, err := h.Latest(ctx, "https://example.com", "ax")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "deadbeef", rec.Digest)
	assert.Equal(t, "- WebArea", rec.Rendered)
}

func TestHistory_LatestPicksMostRecent(t *testing.T) {
	h, err := Open(":memory:")
	require.NoError(t, err)
	defer h.Close()

	ctx := context.Background()
	older := time.Unix(1700000000, 0).UTC()
	newer := time.Unix(1700000100, 0).UTC()
	require.NoError(t, h.Insert(ctx, "https://example.com", "ax", "old", "- A", older))
	require.NoError(t, h.Insert(ctx, "https://example.com", "ax", "new", "- B", newer))

	rec, ok, err := h.Latest(ctx, "https://example.com", "ax")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "new", rec.Digest)
}
