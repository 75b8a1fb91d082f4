//go:build integration

package actions_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/quickroll-bot/internal/actions"
	qrerr "github.com/KirkDiggler/quickroll-bot/internal/errors"
	"github.com/KirkDiggler/quickroll-bot/internal/testutils"
)

func TestRedisRepository_Integration(t *testing.T) {
	ctx := context.Background()
	client := testutils.StartRedisContainer(t)
	repo := actions.NewRedis(client)

	require.NoError(t, actions.Seed(ctx, repo, nil))

	defs, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, defs, len(actions.BuiltinDefinitions()))

	shield, err := repo.Get(ctx, "raise-a-shield")
	require.NoError(t, err)
	assert.Equal(t, "Raise a Shield", shield.Name)

	require.NoError(t, repo.Delete(ctx, "raise-a-shield"))
	_, err = repo.Get(ctx, "raise-a-shield")
	assert.True(t, qrerr.IsNotFound(err))
	assert.True(t, qrerr.IsNotFound(repo.Delete(ctx, "raise-a-shield")))
}
