// pkg/supabase/config_test.go

package supabase

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func clearEnv(t *testing.T) {
	t.Helper()
	// t.Setenv with an empty value both isolates the test from the real
	// environment and restores it afterwards. Empty counts as unset.
	for _, key := range []string{EnvPublicURL, EnvAnonKey, EnvPublishableKey, EnvAdminURL, EnvSecretKey} {
		t.Setenv(key, "")
	}
}

func TestResolvePublicConfigMissingValues(t *testing.T) {
	clearEnv(t)

	core, logs := observer.New(zap.WarnLevel)
	cfg := ResolvePublicConfig(zap.New(core))

	assert.False(t, cfg.Complete())
	require.Equal(t, 1, logs.Len(), "exactly one warning expected")
	entry := logs.All()[0]
	assert.Equal(t, zap.WarnLevel, entry.Level)
	assert.Contains(t, entry.Message, "Missing Supabase configuration")

	named := fmt.Sprint(entry.ContextMap()["missing"])
	assert.Contains(t, named, EnvPublicURL)
	assert.Contains(t, named, EnvAnonKey)
	assert.Contains(t, named, EnvPublishableKey, "the alias also satisfies the key")
}

func TestResolvePublicConfigComplete(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvPublicURL, "https://abc.supabase.co")
	t.Setenv(EnvAnonKey, "anon-key")

	core, logs := observer.New(zap.WarnLevel)
	cfg := ResolvePublicConfig(zap.New(core))

	assert.True(t, cfg.Complete())
	assert.Equal(t, "https://abc.supabase.co", cfg.URL)
	assert.Equal(t, "anon-key", cfg.AnonKey)
	assert.Zero(t, logs.Len(), "no warnings expected")
}

func TestResolvePublicConfigKeyAliasPreference(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvPublicURL, "https://abc.supabase.co")
	t.Setenv(EnvAnonKey, "A")
	t.Setenv(EnvPublishableKey, "B")

	cfg := ResolvePublicConfig(zap.NewNop())
	assert.Equal(t, "A", cfg.AnonKey, "anon key alias must win when both are set")
}

func TestResolvePublicConfigPublishableFallback(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvPublicURL, "https://abc.supabase.co")
	t.Setenv(EnvPublishableKey, "B")

	cfg := ResolvePublicConfig(zap.NewNop())
	assert.Equal(t, "B", cfg.AnonKey)
	assert.True(t, cfg.Complete())
}

func TestResolveAdminConfigMissingURL(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvSecretKey, "service-role-key")

	_, err := ResolveAdminConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), EnvAdminURL)
}

func TestResolveAdminConfigMissingSecret(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvAdminURL, "https://abc.supabase.co")

	_, err := ResolveAdminConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), EnvSecretKey)
}

func TestResolveAdminConfigInvalidURL(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvAdminURL, "not a url")
	t.Setenv(EnvSecretKey, "service-role-key")

	_, err := ResolveAdminConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a valid URL")
}

func TestResolveAdminConfigComplete(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvAdminURL, "https://abc.supabase.co")
	t.Setenv(EnvSecretKey, "service-role-key")

	cfg, err := ResolveAdminConfig()
	require.NoError(t, err)
	assert.Equal(t, "https://abc.supabase.co", cfg.URL)
	assert.Equal(t, "service-role-key", cfg.SecretKey)
}
