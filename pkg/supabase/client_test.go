// pkg/supabase/client_test.go

package supabase

import (
	"testing"

	"github.com/claimsiq/ciq/pkg/ciq_err"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPublicClientIncompleteConfig(t *testing.T) {
	client := NewPublicClient(PublicConfig{})

	require.NotNil(t, client, "handle must be returned even without config")
	assert.False(t, client.Ready())

	_, err := client.Auth()
	assert.ErrorIs(t, err, ciq_err.ErrNotConfigured)

	_, err = client.Database()
	assert.ErrorIs(t, err, ciq_err.ErrNotConfigured)
}

func TestNewPublicClientComplete(t *testing.T) {
	client := NewPublicClient(PublicConfig{
		URL:     "https://abc.supabase.co",
		AnonKey: "anon-key",
	})

	require.NotNil(t, client)
	assert.True(t, client.Ready())

	auth, err := client.Auth()
	require.NoError(t, err)
	assert.NotNil(t, auth)

	db, err := client.Database()
	require.NoError(t, err)
	assert.NotNil(t, db)
}

func TestNewAdminClient(t *testing.T) {
	client := NewAdminClient(AdminConfig{
		URL:       "http://localhost:54321",
		SecretKey: "service-role-key",
	})
	assert.NotNil(t, client)
}

func TestProjectRef(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{raw: "https://abc.supabase.co", want: "abc"},
		{raw: "http://localhost:54321", want: "localhost"},
		{raw: "https://supabase.claimsiq.internal", want: "supabase.claimsiq.internal"},
		{raw: "", want: "claimsiq"},
		{raw: "://bad", want: "claimsiq"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, projectRef(tt.raw), "projectRef(%q)", tt.raw)
	}
}

func TestAuthURL(t *testing.T) {
	assert.Equal(t, "https://abc.supabase.co/auth/v1", authURL("https://abc.supabase.co"))
	assert.Equal(t, "https://abc.supabase.co/auth/v1", authURL("https://abc.supabase.co/"))
}
