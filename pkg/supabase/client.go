// pkg/supabase/client.go

package supabase

import (
	"net/url"
	"strings"

	"github.com/claimsiq/ciq/pkg/ciq_err"
	"github.com/supabase-community/gotrue-go"
	"github.com/supabase-community/gotrue-go/types"
	sb "github.com/supabase-community/supabase-go"
)

// Client is the unprivileged handle to the ClaimsIQ Supabase project.
//
// Session management stays disabled on this handle: tokens are issued and
// validated by the ClaimsIQ backend through HTTP-only cookies, so the
// client never auto-refreshes tokens, persists a session locally, or picks
// one up from a URL. Construction is purely local; no network calls happen
// until a caller uses the handle.
type Client struct {
	cfg  PublicConfig
	db   *sb.Client
	auth gotrue.Client
}

// NewPublicClient builds the public handle. With incomplete configuration
// the handle is still returned; its accessors report ErrNotConfigured.
func NewPublicClient(cfg PublicConfig) *Client {
	c := &Client{cfg: cfg}
	if !cfg.Complete() {
		return c
	}

	if db, err := sb.NewClient(cfg.URL, cfg.AnonKey, &sb.ClientOptions{}); err == nil {
		c.db = db
	}
	c.auth = gotrue.New(projectRef(cfg.URL), cfg.AnonKey).
		WithCustomGoTrueURL(authURL(cfg.URL))

	return c
}

// Ready reports whether the handle was built from complete configuration.
func (c *Client) Ready() bool {
	return c.db != nil && c.auth != nil
}

// Database returns the PostgREST/storage surface of the project.
func (c *Client) Database() (*sb.Client, error) {
	if c.db == nil {
		return nil, ciq_err.ErrNotConfigured
	}
	return c.db, nil
}

// Auth returns the anonymous GoTrue client.
func (c *Client) Auth() (gotrue.Client, error) {
	if c.auth == nil {
		return nil, ciq_err.ErrNotConfigured
	}
	return c.auth, nil
}

// AdminAPI is the slice of the GoTrue admin surface the seeder needs.
type AdminAPI interface {
	AdminCreateUser(req types.AdminCreateUserRequest) (*types.AdminCreateUserResponse, error)
}

// NewAdminClient builds the privileged GoTrue client used by the seeder.
// The secret key doubles as the bearer token for the admin endpoints. The
// same no-session policy applies as for the public handle.
func NewAdminClient(cfg AdminConfig) gotrue.Client {
	return gotrue.New(projectRef(cfg.URL), cfg.SecretKey).
		WithCustomGoTrueURL(authURL(cfg.URL)).
		WithToken(cfg.SecretKey)
}

func authURL(base string) string {
	return strings.TrimRight(base, "/") + "/auth/v1"
}

// projectRef extracts the project reference from a hosted supabase.co URL,
// falling back to the host name for self-hosted deployments. The value is
// only used for client identification; the GoTrue URL is always overridden.
func projectRef(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Hostname() == "" {
		return "claimsiq"
	}
	if ref, ok := strings.CutSuffix(u.Hostname(), ".supabase.co"); ok {
		return ref
	}
	return u.Hostname()
}
