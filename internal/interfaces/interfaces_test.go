package interfaces

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserContext(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	assert.Equal(t, ctx, WithUserContext(ctx, nil), "nil values are not stored")
	assert.Nil(t, UserContext(ctx))

	ctx = WithUserContext(ctx, "testnet")
	assert.Equal(t, "testnet", UserContext(ctx))

	//nolint:staticcheck
	assert.Nil(t, UserContext(nil))
}
