package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/KirkDiggler/quickroll-bot/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"DISCORD_TOKEN", "DISCORD_APP_ID", "DISCORD_GUILD_ID", "REDIS_URL",
		"QUICKROLL_DICE_ENGINE", "QUICKROLL_ACTIONS_FILE", "QUICKROLL_COMMAND",
	} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := config.Load()

	require.NoError(t, err)
	assert.True(t, cfg.QuickRoll.DiceEngine)
	assert.Equal(t, "qr", cfg.QuickRoll.Command)
	assert.Empty(t, cfg.Redis.URL)
	assert.Error(t, cfg.Validate(), "discord token is required")
}

func TestLoad_FromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("DISCORD_TOKEN", "abcdefgh-secret-wxyz")
	t.Setenv("DISCORD_APP_ID", "1234")
	t.Setenv("DISCORD_GUILD_ID", "5678")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")
	t.Setenv("QUICKROLL_DICE_ENGINE", "false")
	t.Setenv("QUICKROLL_ACTIONS_FILE", "actions.yaml")
	t.Setenv("QUICKROLL_COMMAND", "roll")

	cfg, err := config.Load()

	require.NoError(t, err)
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "1234", cfg.Discord.AppID)
	assert.Equal(t, "5678", cfg.Discord.GuildID)
	assert.Equal(t, "redis://localhost:6379/0", cfg.Redis.URL)
	assert.False(t, cfg.QuickRoll.DiceEngine)
	assert.Equal(t, "actions.yaml", cfg.QuickRoll.ActionsFile)
	assert.Equal(t, "roll", cfg.QuickRoll.Command)
	assert.Equal(t, "abcdefgh...wxyz", cfg.MaskedToken())
}

func TestLoad_InvalidBool(t *testing.T) {
	clearEnv(t)
	t.Setenv("QUICKROLL_DICE_ENGINE", "sometimes")

	_, err := config.Load()

	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.Config
		wantErr string
	}{
		{
			name:    "missing app id",
			cfg:     config.Config{Discord: config.DiscordConfig{Token: "t"}, QuickRoll: config.QuickRollConfig{Command: "qr"}},
			wantErr: "DISCORD_APP_ID is required",
		},
		{
			name:    "empty command",
			cfg:     config.Config{Discord: config.DiscordConfig{Token: "t", AppID: "a"}},
			wantErr: "QUICKROLL_COMMAND must not be empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadDotEnv(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("QUICKROLL_COMMAND=pf\n"), 0o600))
	t.Cleanup(func() { _ = os.Unsetenv("QUICKROLL_COMMAND") })

	config.LoadDotEnv(path)
	cfg, err := config.Load()

	require.NoError(t, err)
	assert.Equal(t, "pf", cfg.QuickRoll.Command)
	assert.Equal(t, "****", cfg.MaskedToken())
}
