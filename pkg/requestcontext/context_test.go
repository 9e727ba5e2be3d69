package requestcontext

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionID(t *testing.T) {
	t.Run("empty when unset", func(t *testing.T) {
		assert.Equal(t, "", SessionID(context.Background()))
	})

	t.Run("round trips through context", func(t *testing.T) {
		ctx := WithSessionID(context.Background(), "session-1")
		assert.Equal(t, "session-1", SessionID(ctx))
	})

	t.Run("new ids are uuids and unique", func(t *testing.T) {
		a, b := NewSessionID(), NewSessionID()
		_, err := uuid.Parse(a)
		require.NoError(t, err)
		assert.NotEqual(t, a, b)
	})
}

func TestRequestID(t *testing.T) {
	assert.Equal(t, "", RequestID(context.Background()))

	ctx := WithRequestID(WithSessionID(context.Background(), "session-1"), "req-1")
	assert.Equal(t, "req-1", RequestID(ctx))
	assert.Equal(t, "session-1", SessionID(ctx))
}
