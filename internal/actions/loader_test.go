package actions_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/KirkDiggler/quickroll-bot/internal/actions"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const seedYAML = `
actions:
  - id: raise-a-shield
    name: Raise a Shield
    cost: 1
    traits: [shield]
    description: Raise your sturdy shield.
  - id: treat-wounds
    name: Treat Wounds
    cost: 0
`

func TestDecode(t *testing.T) {
	defs, err := actions.Decode(strings.NewReader(seedYAML))

	require.NoError(t, err)
	require.Len(t, defs, 2)
	assert.Equal(t, &actions.Definition{
		ID:          "raise-a-shield",
		Name:        "Raise a Shield",
		Cost:        1,
		Traits:      []string{"shield"},
		Description: "Raise your sturdy shield.",
	}, defs[0])
}

func TestDecode_Rejects(t *testing.T) {
	tests := map[string]string{
		"unknown action": "actions:\n  - id: fly\n    name: Fly\n    cost: 1\n",
		"duplicate":      "actions:\n  - {id: seek, name: Seek, cost: 1}\n  - {id: seek, name: Seek, cost: 1}\n",
		"unknown field":  "actions:\n  - {id: seek, name: Seek, cost: 1, range: 30}\n",
		"bad yaml":       "actions: [",
	}

	for name, input := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := actions.Decode(strings.NewReader(input))
			assert.Error(t, err)
		})
	}
}

func TestDecode_Empty(t *testing.T) {
	defs, err := actions.Decode(strings.NewReader(""))

	require.NoError(t, err)
	assert.Empty(t, defs)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "actions.yaml")
	require.NoError(t, os.WriteFile(path, []byte(seedYAML), 0o600))

	defs, err := actions.LoadFile(path)
	require.NoError(t, err)
	assert.Len(t, defs, 2)

	_, err = actions.LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestSeed_OverridesBuiltins(t *testing.T) {
	ctx := context.Background()
	repo := actions.NewInMemoryRepository()
	defs, err := actions.Decode(strings.NewReader(seedYAML))
	require.NoError(t, err)

	require.NoError(t, actions.Seed(ctx, repo, defs))

	shield, err := repo.Get(ctx, "raise-a-shield")
	require.NoError(t, err)
	assert.Equal(t, "Raise your sturdy shield.", shield.Description)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, len(actions.BuiltinDefinitions()))
}
